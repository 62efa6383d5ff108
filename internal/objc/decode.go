package objc

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// DecodeBytes interprets raw header bytes as UTF-8, falling back to
// Latin-1 for legacy files that fail UTF-8 validation.
func DecodeBytes(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("failed to decode header text: %w", err)
	}
	return string(decoded), nil
}
