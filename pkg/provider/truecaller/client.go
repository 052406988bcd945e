// Package truecaller provides a provider.IdentityProvider backed by a
// Truecaller lookup proxy that answers GET <base>?q=<e164> with a JSON object.
package truecaller

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"numberbot/pkg/domain"
	"numberbot/pkg/provider"
	"numberbot/pkg/serrors"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// DefaultURL is the public lookup proxy endpoint.
const DefaultURL = "https://true-call-check.vercel.app/api/truecaller"

// Client queries the lookup proxy. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// New constructs a Client. An empty baseURL selects DefaultURL.
func New(httpClient *http.Client, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}
}

// Identity fetches the registered name for e164. Anything but a 200 response
// with a JSON object body is an error.
func (c *Client) Identity(ctx context.Context, e164 string) (*domain.IdentityData, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("could not parse identity url: %w", err)
	}
	q := u.Query()
	q.Set("q", e164)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, provider.TransportError(err, "could not send identity request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, provider.TransportError(err, "could not read identity response")
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, serrors.With(serrors.ErrRateLimited, "identity rate limited: %s", strings.TrimSpace(string(b)))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, serrors.With(serrors.ErrUnavailable, "identity lookup failed with status %d", resp.StatusCode)
	}

	identity, err := decodeIdentity(b)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not decode identity response")
	}

	return identity, nil
}

func decodeIdentity(b []byte) (*domain.IdentityData, error) {
	var out domain.IdentityData

	d := jx.DecodeBytes(b)
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		if key != "name" {
			return d.Skip()
		}

		name, err := provider.DecodeOptString(d)
		if err != nil {
			return errors.Wrap(err, "name")
		}
		out.Name = name

		return nil
	}); err != nil {
		return nil, errors.Wrap(err, "identity")
	}

	return &out, nil
}

// Ensure Client conforms to the provider.IdentityProvider interface at compile time.
var _ provider.IdentityProvider = (*Client)(nil)
