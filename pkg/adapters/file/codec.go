package file

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/stockroom/pkg/core"
)

// Codec defines how to read and write a ledger snapshot in a specific format.
type Codec interface {
	// Decode parses data into a raw mapping of item name to value. Value
	// validation (integers only) is left to the store so that per-entry
	// warnings are uniform across formats.
	Decode(data []byte) (map[string]any, error)
	// Encode converts the snapshot to bytes.
	Encode(snapshot map[string]int) ([]byte, error)
}

// DefaultCodecs returns the standard set of codecs, keyed by file extension.
func DefaultCodecs() map[string]Codec {
	return map[string]Codec{
		".json": &JSONCodec{},
		".yaml": &YAMLCodec{},
		".yml":  &YAMLCodec{},
	}
}

// --- JSON Codec ---

// JSONCodec handles reading and writing JSON snapshots.
type JSONCodec struct{}

func (c *JSONCodec) Decode(data []byte) (map[string]any, error) {
	var payload any
	decoder := json.NewDecoder(bytes.NewReader(data))
	// UseNumber keeps integers exact; "2.0" must not sneak through as 2.
	decoder.UseNumber()
	if err := decoder.Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: invalid json: %v", core.ErrBadFormat, err)
	}
	if decoder.More() {
		return nil, fmt.Errorf("%w: trailing data after json object", core.ErrBadFormat)
	}

	object, ok := payload.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: ledger file must contain an object mapping item->qty", core.ErrInvalidArgument)
	}
	return object, nil
}

func (c *JSONCodec) Encode(snapshot map[string]int) ([]byte, error) {
	return json.MarshalIndent(snapshot, "", "  ")
}

// --- YAML Codec ---

// YAMLCodec handles reading and writing YAML snapshots.
type YAMLCodec struct{}

func (c *YAMLCodec) Decode(data []byte) (map[string]any, error) {
	var payload any
	if err := yaml.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("%w: invalid yaml: %v", core.ErrBadFormat, err)
	}

	object, ok := payload.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: ledger file must contain a mapping item->qty", core.ErrInvalidArgument)
	}
	return object, nil
}

func (c *YAMLCodec) Encode(snapshot map[string]int) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(snapshot); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
