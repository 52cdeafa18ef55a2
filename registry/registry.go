package registry

import (
	"fmt"
	"sync"

	"github.com/ncecere/hf-sdk/provider"
)

// Registry is a simple, provider-agnostic registry for models.
//
// It maps string model identifiers (for example, "falcon-7b" or
// "endpoint:summarizer") to concrete provider implementations. This
// allows application code and higher-level helpers to look up models
// by name without depending directly on specific provider packages.
type Registry interface {
	// CompletionModel returns the registered completion model for the given name.
	// If no such model exists, a *NoSuchModelError is returned.
	CompletionModel(name string) (provider.CompletionModel, error)

	// EmbeddingModel returns the registered embedding model for the given name.
	// If no such model exists, a *NoSuchModelError is returned.
	EmbeddingModel(name string) (provider.EmbeddingModel, error)

	// RegisterCompletionModel registers or replaces a completion model under the given name.
	// Passing a nil model removes any existing registration for that name.
	RegisterCompletionModel(name string, model provider.CompletionModel)

	// RegisterEmbeddingModel registers or replaces an embedding model under the given name.
	// Passing a nil model removes any existing registration for that name.
	RegisterEmbeddingModel(name string, model provider.EmbeddingModel)
}

// NoSuchModelError indicates that a requested model name was not
// found in the registry.
type NoSuchModelError struct {
	// Name is the model name that was requested.
	Name string
	// Kind is the optional kind of model, such as "completion" or "embedding".
	Kind string
}

func (e *NoSuchModelError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Kind == "" {
		return fmt.Sprintf("registry: no such model %q", e.Name)
	}
	return fmt.Sprintf("registry: no such %s model %q", e.Kind, e.Name)
}

// InMemoryRegistry is a concurrency-safe in-memory implementation of Registry.
// It is suitable for typical application startup wiring where models are
// registered once and then used throughout the lifetime of the process.
type InMemoryRegistry struct {
	mu sync.RWMutex

	completionModels map[string]provider.CompletionModel
	embeddingModels  map[string]provider.EmbeddingModel
}

// Ensure InMemoryRegistry implements Registry.
var _ Registry = (*InMemoryRegistry)(nil)

// NewInMemoryRegistry creates a new empty in-memory registry.
func NewInMemoryRegistry() *InMemoryRegistry {
	return &InMemoryRegistry{
		completionModels: make(map[string]provider.CompletionModel),
		embeddingModels:  make(map[string]provider.EmbeddingModel),
	}
}

// CompletionModel implements Registry.CompletionModel.
func (r *InMemoryRegistry) CompletionModel(name string) (provider.CompletionModel, error) {
	r.mu.RLock()
	model, ok := r.completionModels[name]
	r.mu.RUnlock()
	if !ok || model == nil {
		return nil, &NoSuchModelError{Name: name, Kind: "completion"}
	}
	return model, nil
}

// EmbeddingModel implements Registry.EmbeddingModel.
func (r *InMemoryRegistry) EmbeddingModel(name string) (provider.EmbeddingModel, error) {
	r.mu.RLock()
	model, ok := r.embeddingModels[name]
	r.mu.RUnlock()
	if !ok || model == nil {
		return nil, &NoSuchModelError{Name: name, Kind: "embedding"}
	}
	return model, nil
}

// RegisterCompletionModel implements Registry.RegisterCompletionModel.
func (r *InMemoryRegistry) RegisterCompletionModel(name string, model provider.CompletionModel) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if model == nil {
		delete(r.completionModels, name)
		return
	}
	r.completionModels[name] = model
}

// RegisterEmbeddingModel implements Registry.RegisterEmbeddingModel.
func (r *InMemoryRegistry) RegisterEmbeddingModel(name string, model provider.EmbeddingModel) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if model == nil {
		delete(r.embeddingModels, name)
		return
	}
	r.embeddingModels[name] = model
}
