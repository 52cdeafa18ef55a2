package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/ncecere/hf-sdk/provider"
)

type stubCompletionModel struct{}

func (stubCompletionModel) Generate(ctx context.Context, req *provider.CompletionRequest) (*provider.CompletionResponse, error) {
	return &provider.CompletionResponse{}, nil
}

func TestInMemoryRegistry_RegisterAndLookup(t *testing.T) {
	reg := NewInMemoryRegistry()

	model := stubCompletionModel{}
	reg.RegisterCompletionModel("summarizer", model)

	got, err := reg.CompletionModel("summarizer")
	if err != nil {
		t.Fatalf("CompletionModel error: %v", err)
	}
	if got != model {
		t.Fatalf("unexpected model returned")
	}

	_, err = reg.CompletionModel("missing")
	var nsErr *NoSuchModelError
	if !errors.As(err, &nsErr) {
		t.Fatalf("expected *NoSuchModelError, got %v", err)
	}
	if nsErr.Name != "missing" || nsErr.Kind != "completion" {
		t.Fatalf("unexpected error fields: %+v", nsErr)
	}

	// Registering nil removes the entry.
	reg.RegisterCompletionModel("summarizer", nil)
	if _, err := reg.CompletionModel("summarizer"); err == nil {
		t.Fatalf("expected error after removing registration")
	}
}

func TestInMemoryRegistry_EmbeddingKindIsSeparate(t *testing.T) {
	reg := NewInMemoryRegistry()
	reg.RegisterCompletionModel("shared-name", stubCompletionModel{})

	_, err := reg.EmbeddingModel("shared-name")
	var nsErr *NoSuchModelError
	if !errors.As(err, &nsErr) {
		t.Fatalf("expected *NoSuchModelError, got %v", err)
	}
	if nsErr.Kind != "embedding" {
		t.Fatalf("unexpected kind: %q", nsErr.Kind)
	}
}
