// Package descriptor loads descriptor documents from embedded literals,
// local files and remote URLs.
package descriptor

import (
	"context"
	"io"
	"net/http"
	"os"
	"time"

	"go.trai.ch/lnms-install/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// FetchTimeout bounds the single HTTP request made for a remote descriptor.
	FetchTimeout = 30 * time.Second

	maxDescriptorSize = 1 << 20
)

// Loader implements ports.DescriptorLoader.
type Loader struct {
	client *http.Client
}

// NewLoader creates a Loader with its own HTTP client.
func NewLoader() *Loader {
	return newLoader(&http.Client{Timeout: FetchTimeout})
}

func newLoader(client *http.Client) *Loader {
	return &Loader{client: client}
}

// Load reads the descriptor identified by src and parses it into a Document.
// Remote sources are fetched with exactly one GET request and no retries.
func (l *Loader) Load(ctx context.Context, src domain.Source) (*domain.Document, error) {
	var (
		data []byte
		err  error
	)

	switch src.Kind {
	case domain.SourceBuiltin:
		var ok bool
		data, ok = readBuiltin(src.Location)
		if !ok {
			err = domain.Annotate(domain.ErrUnknownDescriptorSource, "source", src.String())
			err = zerr.With(err, "available", Builtins())
		}
	case domain.SourceURL:
		data, err = l.fetch(ctx, src.Location)
	default:
		data, err = readFile(src.Location)
	}
	if err != nil {
		return nil, err
	}

	return Parse(src.String(), data)
}

func (l *Loader) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, loadError(err, "invalid descriptor URL", url)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, loadError(err, "failed to fetch descriptor", url)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		statusErr := zerr.Wrap(domain.ErrDescriptorLoad, "unexpected response status")
		statusErr = zerr.With(statusErr, "source", url)
		return nil, zerr.With(statusErr, "status_code", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDescriptorSize+1))
	if err != nil {
		return nil, loadError(err, "failed to read descriptor response", url)
	}
	if len(data) > maxDescriptorSize {
		sizeErr := zerr.Wrap(domain.ErrDescriptorLoad, "descriptor too large")
		sizeErr = zerr.With(sizeErr, "source", url)
		return nil, zerr.With(sizeErr, "limit_bytes", maxDescriptorSize)
	}
	return data, nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, loadError(err, "failed to read descriptor file", path)
	}
	return data, nil
}

// loadError keeps ErrDescriptorLoad in the chain and records the underlying failure as metadata.
func loadError(cause error, msg, source string) error {
	err := zerr.Wrap(domain.ErrDescriptorLoad, msg)
	err = zerr.With(err, "source", source)
	return zerr.With(err, "cause", cause.Error())
}
