package descriptor

import "net/http"

// NewLoaderWithClient creates a Loader using the given HTTP client.
func NewLoaderWithClient(client *http.Client) *Loader {
	return newLoader(client)
}
