package inferenceapi

import (
	"fmt"
	"os"
	"strings"

	"github.com/ncecere/hf-sdk/huggingface"
	"github.com/ncecere/hf-sdk/provider"
)

// NewClient creates a huggingface client targeting the hosted
// serverless Inference API for the given model ID, for example
// "google/flan-t5-xl". Dedicated inference endpoints should use
// huggingface.NewClient directly with the endpoint URL.
//
// Environment variables:
//   - HUGGINGFACEHUB_API_TOKEN (used if opts.APIKey is empty)
//   - HF_API_BASE_URL (optional, defaults to https://api-inference.huggingface.co)
func NewClient(model string, opts provider.ClientOptions) (*huggingface.Client, error) {
	if model == "" {
		return nil, fmt.Errorf("inferenceapi: missing model ID")
	}

	if opts.BaseURL == "" {
		// Allow overriding the base URL via HF_API_BASE_URL, otherwise
		// default to the documented serverless Inference API host.
		baseURL := os.Getenv("HF_API_BASE_URL")
		if baseURL == "" {
			baseURL = "https://api-inference.huggingface.co"
		}
		opts.BaseURL = strings.TrimRight(baseURL, "/") + "/models/" + model
	}

	return huggingface.NewClient(opts)
}
