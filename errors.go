package hf

import "errors"

// Package-level error values and types returned by the hf package.
var (
	// ErrMissingModel is returned when a GenerateCompletion request
	// does not specify a CompletionModel.
	ErrMissingModel = errors.New("hf: missing CompletionModel in request")

	// ErrMissingEmbeddingModel is returned when a GenerateEmbeddings
	// request does not specify an EmbeddingModel.
	ErrMissingEmbeddingModel = errors.New("hf: missing EmbeddingModel in request")

	// ErrNoEmbeddingGenerated is returned when an embedding request
	// completes successfully but does not return any vectors.
	ErrNoEmbeddingGenerated = errors.New("hf: no embedding generated")
)

// InvalidArgumentError indicates that a function argument is invalid.
// It is intended for validation of hf package helper arguments, such
// as generation parameter construction helpers.
type InvalidArgumentError struct {
	// Parameter is the name of the invalid parameter.
	Parameter string
	// Value is the offending value.
	Value any
	// Message describes why the value is considered invalid.
	Message string
}

func (e *InvalidArgumentError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return "hf: invalid argument for parameter " + e.Parameter + ": " + e.Message
}
