package vectors

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fxamacker/cbor/v2"
)

// Encoding names a bundle serialization.
type Encoding string

const (
	JSON Encoding = "json"
	CBOR Encoding = "cbor"
)

// ParseEncoding parses an encoding name, case-insensitively.
func ParseEncoding(name string) (Encoding, error) {
	switch e := Encoding(strings.ToLower(strings.TrimSpace(name))); e {
	case JSON, CBOR:
		return e, nil
	default:
		return "", fmt.Errorf("vectors: unknown encoding %q", name)
	}
}

var cborEnc = func() cbor.EncMode {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return em
}()

// Marshal serializes b. JSON output is indented; CBOR output uses the
// canonical encoding so equal bundles produce equal bytes.
func (b *Bundle) Marshal(enc Encoding) ([]byte, error) {
	switch enc {
	case JSON:
		data, err := json.MarshalIndent(b, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case CBOR:
		return cborEnc.Marshal(b)
	default:
		return nil, fmt.Errorf("vectors: unknown encoding %q", enc)
	}
}

// Unmarshal parses a bundle. An empty enc selects JSON when the data
// starts with '{' and CBOR otherwise.
func Unmarshal(data []byte, enc Encoding) (*Bundle, error) {
	if enc == "" {
		enc = CBOR
		if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
			enc = JSON
		}
	}

	var b Bundle
	switch enc {
	case JSON:
		if err := json.Unmarshal(data, &b); err != nil {
			return nil, fmt.Errorf("decode json bundle: %w", err)
		}
	case CBOR:
		if err := cbor.Unmarshal(data, &b); err != nil {
			return nil, fmt.Errorf("decode cbor bundle: %w", err)
		}
	default:
		return nil, fmt.Errorf("vectors: unknown encoding %q", enc)
	}
	return &b, nil
}
