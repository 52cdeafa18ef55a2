package provider

import "context"

// CompletionModel is the provider-level interface for completion-style
// text generation against hosted inference endpoints.
//
// Implementations map CompletionRequest values to the provider's
// inference API.
type CompletionModel interface {
	Generate(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error)
}

// CompletionRequest describes inputs for text completions.
type CompletionRequest struct {
	// Prompt is the input text. It may be empty.
	Prompt string
	// Stop contains stop sequences. Generated text is truncated at the
	// earliest first occurrence of any entry.
	Stop []string
	// Parameters contains per-call model parameters. Entries override
	// same-named defaults configured on the client.
	Parameters map[string]any
}

// CompletionResponse contains the resulting completion text.
type CompletionResponse struct {
	Text string
}
