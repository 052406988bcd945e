// Package numverify provides a provider.ValidationProvider backed by the
// apilayer number validation API.
package numverify

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

// DefaultURL is the public validation endpoint.
const DefaultURL = "http://apilayer.net/api/validate"

// Client talks to the validation API. It is safe for concurrent use; the
// access key is supplied per call so credentials can rotate.
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

// Validate checks local (a national number) within countryCode (an ISO
// 3166-1 alpha-2 code such as "IN") using the given access key.
//
// HTTP 429 maps to serrors.ErrRateLimited, any other non-200 status and
// undecodable bodies to serrors.ErrUnavailable. A 200 response whose body
// carries "success": false is not an error; it is returned with
// ValidationResponse.Error set.
func (c *Client) Validate(ctx context.Context,
	key string,
	local domain.PhoneNumber,
	countryCode string) (provider.ValidationResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return provider.ValidationResponse{}, fmt.Errorf("could not parse validation url: %w", err)
	}
	q := u.Query()
	q.Set("access_key", key)
	q.Set("number", string(local))
	q.Set("country_code", countryCode)
	q.Set("format", "1")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return provider.ValidationResponse{}, fmt.Errorf("could not create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// url.Error embeds the full URL, access key included.
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}

		return provider.ValidationResponse{}, provider.TransportError(err, "could not send validation request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return provider.ValidationResponse{}, provider.TransportError(err, "could not read validation response")
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return provider.ValidationResponse{},
			serrors.With(serrors.ErrRateLimited, "validation rate limited: %s", strings.TrimSpace(string(b)))
	}
	if resp.StatusCode != http.StatusOK {
		return provider.ValidationResponse{},
			serrors.With(serrors.ErrUnavailable, "validation failed with status %d", resp.StatusCode)
	}

	out, err := decodeValidation(b)
	if err != nil {
		return provider.ValidationResponse{},
			serrors.Wrap(serrors.ErrUnavailable, err, "could not decode validation response")
	}

	return out, nil
}

func decodeValidation(b []byte) (provider.ValidationResponse, error) {
	var (
		out     provider.ValidationResponse
		success *bool
	)

	d := jx.DecodeBytes(b)
	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "success":
			success, err = provider.DecodeOptBool(d)
		case "error":
			out.Error, err = decodeAPIError(d)
		case "valid":
			out.Data.Valid, err = provider.DecodeOptBool(d)
		case "country_name":
			out.Data.Country, err = provider.DecodeOptString(d)
		case "location":
			out.Data.Location, err = provider.DecodeOptString(d)
		case "carrier":
			out.Data.Carrier, err = provider.DecodeOptString(d)
		case "line_type":
			out.Data.LineType, err = provider.DecodeOptString(d)
		case "timezone":
			out.Data.Timezone, err = decodeTimezone(d)
		default:
			return d.Skip()
		}
		if err != nil {
			return errors.Wrap(err, key)
		}

		return nil
	})
	if err != nil {
		return provider.ValidationResponse{}, errors.Wrap(err, "validation")
	}

	out.Success = success == nil || *success
	if out.Success {
		out.Error = nil
	} else if out.Error == nil {
		out.Error = &provider.APIError{Info: "request rejected without details"}
	}

	return out, nil
}

func decodeAPIError(d *jx.Decoder) (*provider.APIError, error) {
	if d.Next() != jx.Object {
		return nil, d.Skip()
	}

	var e provider.APIError
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "code":
			if d.Next() != jx.Number {
				return d.Skip()
			}
			code, err := d.Int()
			if err != nil {
				return errors.Wrap(err, "code")
			}
			e.Code = code
		case "type":
			s, err := provider.DecodeOptString(d)
			if err != nil {
				return errors.Wrap(err, "type")
			}
			if s != nil {
				e.Type = *s
			}
		case "info":
			s, err := provider.DecodeOptString(d)
			if err != nil {
				return errors.Wrap(err, "info")
			}
			if s != nil {
				e.Info = *s
			}
		default:
			return d.Skip()
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return &e, nil
}

// decodeTimezone accepts either a plain zone name or an object carrying one
// under "name".
func decodeTimezone(d *jx.Decoder) (*string, error) {
	if d.Next() != jx.Object {
		return provider.DecodeOptString(d)
	}

	var name *string
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		if key != "name" {
			return d.Skip()
		}

		var err error
		name, err = provider.DecodeOptString(d)

		return err
	}); err != nil {
		return nil, err
	}

	return name, nil
}

// Ensure Client conforms to the provider.ValidationProvider interface at compile time.
var _ provider.ValidationProvider = (*Client)(nil)
