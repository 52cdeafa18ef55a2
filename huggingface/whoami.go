package huggingface

import (
	"context"
	"net/http"
	"os"
	"strings"

	"github.com/ncecere/hf-sdk/providerutil"
)

type whoamiResponse struct {
	Name string `json:"name"`
}

// ValidateToken verifies the configured API token against the Hub
// identity endpoint (GET <hub>/api/whoami-v2). The Hub base URL is
// taken from the HF_ENDPOINT environment variable, which allows
// pointing at a private Hub, and defaults to https://huggingface.co.
//
// Validation is an optional step that costs one network round trip; it
// is never performed implicitly by NewClient or by inference calls.
// Skipping it is fine in constrained or non-interactive environments.
//
// Errors:
//   - *AuthenticationError when the check cannot be completed or the
//     Hub rejects the token.
func (c *Client) ValidateToken(ctx context.Context) error {
	hub := os.Getenv("HF_ENDPOINT")
	if hub == "" {
		hub = "https://huggingface.co"
	}
	url := strings.TrimRight(hub, "/") + "/api/whoami-v2"

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &AuthenticationError{Err: err}
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiToken)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return &AuthenticationError{Err: err}
	}

	var who whoamiResponse
	if err := providerutil.ReadJSON(resp, &who); err != nil {
		return &AuthenticationError{Err: err}
	}
	return nil
}
