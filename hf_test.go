package hf

import (
	"context"
	"errors"
	"testing"

	"github.com/ncecere/hf-sdk/provider"
	"github.com/ncecere/hf-sdk/registry"
)

type fakeCompletionModel struct {
	lastReq *provider.CompletionRequest
	text    string
	err     error
}

func (f *fakeCompletionModel) Generate(ctx context.Context, req *provider.CompletionRequest) (*provider.CompletionResponse, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &provider.CompletionResponse{Text: f.text}, nil
}

func float64Ptr(v float64) *float64 { return &v }
func intPtr(v int) *int             { return &v }

func TestGenerateCompletion(t *testing.T) {
	ctx := context.Background()

	model := &fakeCompletionModel{text: "a completion"}
	res, err := GenerateCompletion(ctx, CompletionRequest{
		Model:      model,
		Prompt:     "hi",
		Stop:       []string{"\n"},
		Parameters: map[string]any{"max_new_tokens": 16},
	})
	if err != nil {
		t.Fatalf("GenerateCompletion error: %v", err)
	}
	if res.Text != "a completion" {
		t.Fatalf("unexpected text: %q", res.Text)
	}
	if model.lastReq.Prompt != "hi" {
		t.Fatalf("prompt not propagated: %q", model.lastReq.Prompt)
	}
	if len(model.lastReq.Stop) != 1 || model.lastReq.Stop[0] != "\n" {
		t.Fatalf("stop not propagated: %+v", model.lastReq.Stop)
	}
	if model.lastReq.Parameters["max_new_tokens"] != 16 {
		t.Fatalf("parameters not propagated: %+v", model.lastReq.Parameters)
	}
}

func TestGenerateCompletion_MissingModel(t *testing.T) {
	_, err := GenerateCompletion(context.Background(), CompletionRequest{Prompt: "hi"})
	if !errors.Is(err, ErrMissingModel) {
		t.Fatalf("expected ErrMissingModel, got %v", err)
	}
}

func TestGenerateCompletionWithRegistry(t *testing.T) {
	ctx := context.Background()

	model := &fakeCompletionModel{text: "from registry"}
	reg := registry.NewInMemoryRegistry()
	reg.RegisterCompletionModel("endpoint:falcon", model)

	res, err := GenerateCompletionWithRegistry(ctx, reg, "endpoint:falcon", CompletionRequest{Prompt: "hi"})
	if err != nil {
		t.Fatalf("GenerateCompletionWithRegistry error: %v", err)
	}
	if res.Text != "from registry" {
		t.Fatalf("unexpected text: %q", res.Text)
	}

	_, err = GenerateCompletionWithRegistry(ctx, reg, "missing", CompletionRequest{Prompt: "hi"})
	var nsErr *registry.NoSuchModelError
	if !errors.As(err, &nsErr) {
		t.Fatalf("expected *registry.NoSuchModelError, got %v", err)
	}

	_, err = GenerateCompletionWithRegistry(ctx, nil, "endpoint:falcon", CompletionRequest{Prompt: "hi"})
	var argErr *InvalidArgumentError
	if !errors.As(err, &argErr) {
		t.Fatalf("expected *InvalidArgumentError for nil registry, got %v", err)
	}
}

func TestParametersMapAndApplyTo(t *testing.T) {
	p := &Parameters{
		Temperature:  float64Ptr(0.7),
		MaxNewTokens: intPtr(64),
		TopK:         intPtr(50),
	}

	m := p.Map()
	if m["temperature"] != 0.7 || m["max_new_tokens"] != 64 || m["top_k"] != 50 {
		t.Fatalf("unexpected parameter map: %+v", m)
	}
	if _, ok := m["top_p"]; ok {
		t.Fatalf("unset parameter rendered: %+v", m)
	}

	req := CompletionRequest{
		Parameters: map[string]any{"temperature": 0.2},
	}
	p.ApplyTo(&req)
	// Existing request entries win over Parameters defaults.
	if req.Parameters["temperature"] != 0.2 {
		t.Fatalf("ApplyTo overwrote request parameter: %+v", req.Parameters)
	}
	if req.Parameters["max_new_tokens"] != 64 {
		t.Fatalf("ApplyTo did not merge parameter: %+v", req.Parameters)
	}
}

func TestNewParameters_Validation(t *testing.T) {
	tests := []struct {
		name        string
		temperature *float64
		topP        *float64
		topK        *int
		maxNew      *int
	}{
		{name: "temperature too high", temperature: float64Ptr(2.5)},
		{name: "temperature negative", temperature: float64Ptr(-0.1)},
		{name: "topP zero", topP: float64Ptr(0)},
		{name: "topK negative", topK: intPtr(-1)},
		{name: "maxNewTokens zero", maxNew: intPtr(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewParameters(tt.temperature, tt.topP, tt.topK, tt.maxNew)
			var argErr *InvalidArgumentError
			if !errors.As(err, &argErr) {
				t.Fatalf("expected *InvalidArgumentError, got %v", err)
			}
		})
	}

	p, err := NewParameters(float64Ptr(0.8), float64Ptr(0.95), intPtr(40), intPtr(128))
	if err != nil {
		t.Fatalf("NewParameters error: %v", err)
	}
	if *p.Temperature != 0.8 || *p.MaxNewTokens != 128 {
		t.Fatalf("unexpected parameters: %+v", p)
	}
}
