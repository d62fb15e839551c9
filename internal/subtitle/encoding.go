package subtitle

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
)

// DefaultEncoding is the code page assumed when none is given.
const DefaultEncoding = "cp1250"

var ErrUnknownEncoding = errors.New("unknown encoding")

// aliases covers common spellings that neither index knows
var aliases = map[string]string{
	"latin-1": "latin1",
	"latin-2": "latin2",
}

// LookupEncoding resolves an encoding name such as "cp1250", "utf-8" or
// "iso-8859-2". IANA names are tried before WHATWG labels so that "latin1"
// means ISO-8859-1 rather than windows-1252.
func LookupEncoding(name string) (encoding.Encoding, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, "_", "-")
	if key == "" {
		return nil, fmt.Errorf("%w: empty name", ErrUnknownEncoding)
	}
	if alias, ok := aliases[key]; ok {
		key = alias
	}

	if enc, err := ianaindex.IANA.Encoding(key); err == nil && enc != nil {
		return enc, nil
	}
	if enc, err := htmlindex.Get(key); err == nil && enc != nil {
		return enc, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
}
