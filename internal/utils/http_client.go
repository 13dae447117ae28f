// Package utils holds small helpers shared by the server and the client:
// JSON response writing, the preconfigured REST client and id generation.
package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "go-business-card-client"

// HTTPClient embeds *resty.Client so all of its methods are available
// directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent JSON client rooted at baseURL. A zero
// timeout leaves requests unbounded.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent)

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
