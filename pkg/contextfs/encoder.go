package contextfs

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Encoder serializes an entity record to text.
type Encoder interface {
	Encode(v any) ([]byte, error)
}

// EncoderFunc adapts a plain function to the Encoder interface.
type EncoderFunc func(v any) ([]byte, error)

// Encode implements Encoder
func (f EncoderFunc) Encode(v any) ([]byte, error) {
	return f(v)
}

// YAMLEncoder encodes records as YAML documents.
type YAMLEncoder struct {
	// Indent is the number of spaces per nesting level; 0 means 2.
	Indent int
}

// Encode implements Encoder. Values yaml.v3 cannot represent, such as
// funcs and channels, are reported as errors instead of panics.
func (e YAMLEncoder) Encode(v any) (data []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			data, err = nil, fmt.Errorf("cannot encode entity: %v", r)
		}
	}()

	indent := e.Indent
	if indent <= 0 {
		indent = 2
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(indent)
	if err = enc.Encode(v); err != nil {
		return nil, err
	}
	if err = enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
