package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/ncecere/hf-sdk/provider"
	"github.com/ncecere/hf-sdk/providerutil"
)

// Task identifies the generation mode of an inference endpoint. The
// task determines both request semantics and the field layout of the
// response, so it must match how the endpoint was deployed.
type Task string

// The set of supported endpoint tasks.
const (
	// TaskTextGeneration is causal text generation. The endpoint
	// echoes the prompt ahead of the continuation, and the echo is
	// stripped from the returned text.
	TaskTextGeneration Task = "text-generation"
	// TaskText2TextGeneration is sequence-to-sequence generation.
	TaskText2TextGeneration Task = "text2text-generation"
	// TaskSummarization produces a summary of the input.
	TaskSummarization Task = "summarization"
)

// ParseTask resolves a task name into a Task value. It returns an
// *UnsupportedTaskError for anything outside the supported set.
func ParseTask(s string) (Task, error) {
	switch t := Task(s); t {
	case TaskTextGeneration, TaskText2TextGeneration, TaskSummarization:
		return t, nil
	default:
		return "", &UnsupportedTaskError{Task: t}
	}
}

// Client is a Hugging Face inference endpoint client.
//
// A Client is bound to a single endpoint URL and API token and is safe
// for concurrent use; every call issues a fresh request and the client
// holds no mutable state.
type Client struct {
	endpointURL   string
	apiToken      string
	httpClient    provider.HTTPClient
	headers       http.Header
	defaultParams map[string]any
}

// NewClient creates a new inference endpoint client.
//
// ClientOptions.BaseURL must contain the full endpoint URL. The API
// token is taken from ClientOptions.APIKey or, if empty, from the
// HUGGINGFACEHUB_API_TOKEN environment variable.
//
// Errors:
//   - *ConfigurationError if the API token or endpoint URL is missing.
//
// NewClient performs no network I/O. Call ValidateToken to verify the
// token against the Hub before issuing inference requests.
func NewClient(opts provider.ClientOptions) (*Client, error) {
	apiToken := opts.APIKey
	if apiToken == "" {
		apiToken = os.Getenv("HUGGINGFACEHUB_API_TOKEN")
	}
	if apiToken == "" {
		return nil, &ConfigurationError{Message: "missing API token; set ClientOptions.APIKey or HUGGINGFACEHUB_API_TOKEN"}
	}

	if opts.BaseURL == "" {
		return nil, &ConfigurationError{Message: "missing endpoint URL; set ClientOptions.BaseURL"}
	}
	endpointURL := strings.TrimRight(opts.BaseURL, "/")

	hc := opts.HTTPClient
	if hc == nil {
		hc = providerutil.DefaultHTTPClient()
	}

	return &Client{
		endpointURL:   endpointURL,
		apiToken:      apiToken,
		httpClient:    hc,
		headers:       opts.Headers,
		defaultParams: opts.DefaultParameters,
	}, nil
}

// CompletionModel returns a CompletionModel that calls the endpoint
// with the given task.
func (c *Client) CompletionModel(task Task) provider.CompletionModel {
	return &completionModel{client: c, task: task}
}

type completionModel struct {
	client *Client
	task   Task
}

type inferenceRequest struct {
	Inputs     string         `json:"inputs"`
	Parameters map[string]any `json:"parameters"`
}

type inferenceOutput struct {
	GeneratedText string `json:"generated_text"`
	SummaryText   string `json:"summary_text"`
}

type inferenceError struct {
	Error any `json:"error"`
}

// Generate issues a single synchronous inference call.
//
// Client default parameters and req.Parameters are merged with the
// per-call entries winning, the endpoint is called once with no
// retries, and the response text is extracted according to the task.
// If req.Stop is non-empty the text is truncated at the earliest
// first occurrence of any stop sequence.
//
// Errors:
//   - *TransportError for network-level failures.
//   - *DecodeError when the response body is not the expected JSON.
//   - *InferenceError when the endpoint reports an error payload.
//   - *UnsupportedTaskError when the model's task is not supported.
func (m *completionModel) Generate(ctx context.Context, req *provider.CompletionRequest) (*provider.CompletionResponse, error) {
	params := make(map[string]any, len(m.client.defaultParams)+len(req.Parameters))
	for k, v := range m.client.defaultParams {
		params[k] = v
	}
	for k, v := range req.Parameters {
		params[k] = v
	}

	raw, err := m.client.postJSON(ctx, inferenceRequest{
		Inputs:     req.Prompt,
		Parameters: params,
	})
	if err != nil {
		return nil, err
	}

	text, err := extractText(m.task, req.Prompt, raw)
	if err != nil {
		return nil, err
	}

	if len(req.Stop) > 0 {
		text = truncateAtStop(text, req.Stop)
	}

	return &provider.CompletionResponse{Text: text}, nil
}

// postJSON marshals body, POSTs it to the endpoint with bearer auth,
// and returns the raw response bytes. The body is read regardless of
// status code because the API reports failures inside the JSON payload.
func (c *Client) postJSON(ctx context.Context, body any) ([]byte, error) {
	buf, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpointURL, bytes.NewReader(buf))
	if err != nil {
		return nil, err
	}
	// Attach any custom headers first, then enforce required headers.
	for k, vs := range c.headers {
		for _, v := range vs {
			if v == "" {
				continue
			}
			httpReq.Header.Add(k, v)
		}
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiToken)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	raw, err := providerutil.ReadBody(resp)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	return raw, nil
}

// apiError decodes an object-shaped response. It returns an
// *InferenceError when the object carries an "error" value, a
// *DecodeError otherwise. raw must start with '{'.
func apiError(raw []byte) error {
	var apiErr inferenceError
	if err := json.Unmarshal(raw, &apiErr); err != nil {
		return &DecodeError{Err: err}
	}
	if apiErr.Error != nil {
		return &InferenceError{Message: fmt.Sprintf("%v", apiErr.Error)}
	}
	return &DecodeError{Err: errors.New("unexpected object response without error field")}
}

func extractText(task Task, prompt string, raw []byte) (string, error) {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return "", apiError(trimmed)
	}

	var outputs []inferenceOutput
	if err := json.Unmarshal(trimmed, &outputs); err != nil {
		return "", &DecodeError{Err: err}
	}
	if len(outputs) == 0 {
		return "", &DecodeError{Err: errors.New("response contains no generations")}
	}

	switch task {
	case TaskTextGeneration:
		text := outputs[0].GeneratedText
		// The endpoint echoes the prompt ahead of the continuation.
		// An echo shorter than the prompt yields an empty result.
		if len(text) < len(prompt) {
			return "", nil
		}
		return text[len(prompt):], nil
	case TaskText2TextGeneration:
		return outputs[0].GeneratedText, nil
	case TaskSummarization:
		return outputs[0].SummaryText, nil
	default:
		return "", &UnsupportedTaskError{Task: task}
	}
}

// truncateAtStop cuts text at the earliest first occurrence of any
// stop sequence. The marker itself is dropped. Empty stop entries are
// skipped.
func truncateAtStop(text string, stop []string) string {
	cut := len(text)
	for _, s := range stop {
		if s == "" {
			continue
		}
		if i := strings.Index(text, s); i >= 0 && i < cut {
			cut = i
		}
	}
	return text[:cut]
}

// WithHTTPTimeout is a helper to wrap the default HTTP client with a timeout.
func WithHTTPTimeout(d time.Duration) provider.HTTPClient {
	return &http.Client{Timeout: d}
}
