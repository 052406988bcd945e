package provider

import (
	"strings"

	"github.com/go-faster/jx"
)

// DecodeOptString reads a JSON value that should be a string. Null, empty
// strings and values of any other type decode to nil.
func DecodeOptString(d *jx.Decoder) (*string, error) {
	if d.Next() != jx.String {
		return nil, d.Skip()
	}

	s, err := d.Str()
	if err != nil {
		return nil, err
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	return &s, nil
}

// DecodeOptBool reads a JSON value that should be a boolean. Null and values
// of any other type decode to nil.
func DecodeOptBool(d *jx.Decoder) (*bool, error) {
	if d.Next() != jx.Bool {
		return nil, d.Skip()
	}

	b, err := d.Bool()
	if err != nil {
		return nil, err
	}

	return &b, nil
}
