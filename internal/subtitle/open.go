package subtitle

import (
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

// File is a subtitle file held as decoded lines. Line content is opaque here;
// terminators are not kept.
type File struct {
	Path     string
	Encoding string
	Lines    []string
}

// Open reads path and decodes it with the named encoding.
func Open(path, encodingName string) (*File, error) {
	enc, err := LookupEncoding(encodingName)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read subtitle file: %w", err)
	}

	text, err := decode(data, enc)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s as %s: %w", path, encodingName, err)
	}

	return &File{
		Path:     path,
		Encoding: encodingName,
		Lines:    SplitLines(text),
	}, nil
}

func decode(data []byte, enc encoding.Encoding) (string, error) {
	// the x/text UTF-8 decoder substitutes U+FFFD instead of failing
	if enc == unicode.UTF8 {
		if !utf8.Valid(data) {
			return "", fmt.Errorf("invalid UTF-8 input")
		}
		return string(data), nil
	}
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
