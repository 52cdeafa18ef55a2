package huggingface

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/ncecere/hf-sdk/provider"
)

// EmbeddingModel returns an EmbeddingModel backed by the endpoint's
// feature-extraction pipeline. The endpoint must be deployed with a
// model that returns one vector per input, such as a
// sentence-transformers model.
func (c *Client) EmbeddingModel() provider.EmbeddingModel {
	return &embeddingModel{client: c}
}

type embeddingModel struct {
	client *Client
}

type embeddingRequest struct {
	Inputs []string `json:"inputs"`
}

func (m *embeddingModel) Generate(ctx context.Context, req *provider.EmbeddingRequest) (*provider.EmbeddingResponse, error) {
	raw, err := m.client.postJSON(ctx, embeddingRequest{Inputs: req.Input})
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return nil, apiError(trimmed)
	}

	var vectors [][]float32
	if err := json.Unmarshal(trimmed, &vectors); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return &provider.EmbeddingResponse{Embeddings: vectors}, nil
}
