package hf

import (
	"context"

	"github.com/ncecere/hf-sdk/provider"
	"github.com/ncecere/hf-sdk/registry"
)

// Aliases to provider-level types so users can work through the hf
// package while providers implement the shared interfaces.
type (
	// CompletionModel is a provider-agnostic completion-style model.
	CompletionModel = provider.CompletionModel
	// EmbeddingModel is a provider-agnostic embedding model.
	EmbeddingModel = provider.EmbeddingModel
)

// CompletionRequest is a high-level request for text completion
// against an inference endpoint.
type CompletionRequest struct {
	// Model is the completion model used to generate the response.
	Model CompletionModel
	// Prompt is the input text for the completion. It may be empty.
	Prompt string
	// Stop contains stop sequences that truncate the output at the
	// earliest first occurrence of any entry.
	Stop []string
	// Parameters contains per-call model parameters. Entries override
	// same-named defaults configured on the client.
	Parameters map[string]any
}

// CompletionResponse is the result of a completion call.
type CompletionResponse struct {
	// Text is the generated completion text.
	Text string
}

// GenerateCompletion calls the underlying CompletionModel.Generate and
// returns a simplified response structure.
//
// Errors:
//   - ErrMissingModel if req.Model is nil.
//   - Any error returned by the underlying provider implementation. For
//     the huggingface provider this is one of the typed errors in the
//     huggingface package (TransportError, DecodeError, InferenceError,
//     UnsupportedTaskError).
func GenerateCompletion(ctx context.Context, req CompletionRequest) (CompletionResponse, error) {
	if req.Model == nil {
		return CompletionResponse{}, ErrMissingModel
	}

	cReq := &provider.CompletionRequest{
		Prompt:     req.Prompt,
		Stop:       req.Stop,
		Parameters: req.Parameters,
	}

	cRes, err := req.Model.Generate(ctx, cReq)
	if err != nil {
		return CompletionResponse{}, err
	}

	return CompletionResponse{Text: cRes.Text}, nil
}

// GenerateSimpleCompletion is a convenience helper for the common case
// of a single prompt and plain text response with no stop sequences or
// extra parameters.
func GenerateSimpleCompletion(ctx context.Context, model CompletionModel, prompt string) (string, error) {
	res, err := GenerateCompletion(ctx, CompletionRequest{
		Model:  model,
		Prompt: prompt,
	})
	if err != nil {
		return "", err
	}
	return res.Text, nil
}

// GenerateCompletionWithRegistry is a convenience helper that looks up
// the completion model by name in the provided registry and then
// delegates to GenerateCompletion. Any Model value in req is ignored
// and replaced with the resolved model.
//
// Errors:
//   - InvalidArgumentError if reg is nil.
//   - Any error returned by reg.CompletionModel.
//   - Any error returned by GenerateCompletion.
func GenerateCompletionWithRegistry(ctx context.Context, reg registry.Registry, modelName string, req CompletionRequest) (CompletionResponse, error) {
	if reg == nil {
		return CompletionResponse{}, &InvalidArgumentError{Parameter: "reg", Value: nil, Message: "registry must not be nil"}
	}

	model, err := reg.CompletionModel(modelName)
	if err != nil {
		return CompletionResponse{}, err
	}

	req.Model = model
	return GenerateCompletion(ctx, req)
}

// EmbeddingRequest describes an embedding generation request.
type EmbeddingRequest struct {
	// Model is the embedding model used to generate vectors.
	Model EmbeddingModel
	// Input is the list of text inputs to embed.
	Input []string
}

// EmbeddingResponse contains embedding vectors.
type EmbeddingResponse struct {
	// Embeddings is a slice of embedding vectors, one per input.
	Embeddings [][]float32
}

// GenerateEmbeddings calls the underlying EmbeddingModel.Generate and
// returns the resulting vectors.
//
// Errors:
//   - ErrMissingEmbeddingModel if req.Model is nil.
//   - Any error returned by the underlying provider implementation.
func GenerateEmbeddings(ctx context.Context, req EmbeddingRequest) (EmbeddingResponse, error) {
	if req.Model == nil {
		return EmbeddingResponse{}, ErrMissingEmbeddingModel
	}

	embReq := &provider.EmbeddingRequest{
		Input: req.Input,
	}

	embRes, err := req.Model.Generate(ctx, embReq)
	if err != nil {
		return EmbeddingResponse{}, err
	}

	return EmbeddingResponse{Embeddings: embRes.Embeddings}, nil
}

// GenerateEmbeddingsWithRegistry is a convenience helper that looks up
// the embedding model by name in the provided registry and then
// delegates to GenerateEmbeddings. Any Model value in req is ignored
// and replaced with the resolved model.
//
// Errors:
//   - InvalidArgumentError if reg is nil.
//   - Any error returned by reg.EmbeddingModel.
//   - Any error returned by GenerateEmbeddings.
func GenerateEmbeddingsWithRegistry(ctx context.Context, reg registry.Registry, modelName string, req EmbeddingRequest) (EmbeddingResponse, error) {
	if reg == nil {
		return EmbeddingResponse{}, &InvalidArgumentError{Parameter: "reg", Value: nil, Message: "registry must not be nil"}
	}

	model, err := reg.EmbeddingModel(modelName)
	if err != nil {
		return EmbeddingResponse{}, err
	}

	req.Model = model
	return GenerateEmbeddings(ctx, req)
}
