package value

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
)

// JSON builds a Json value from any encodable Go value. The document is
// stored in canonical form (sorted keys, no insignificant whitespace) so
// equality is canonical-string equality.
func JSON(v any) (Value, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return Value{}, fmt.Errorf("encode json value: %w", err)
	}
	return JSONRaw(raw)
}

// MustJSON is like JSON but panics on encoding failure.
func MustJSON(v any) Value {
	out, err := JSON(v)
	if err != nil {
		panic(err)
	}
	return out
}

// JSONRaw builds a Json value from an encoded document.
func JSONRaw(raw []byte) (Value, error) {
	var tree any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&tree); err != nil {
		return Value{}, fmt.Errorf("decode json value: %w", err)
	}
	canonical, err := json.Marshal(tree)
	if err != nil {
		return Value{}, fmt.Errorf("canonicalize json value: %w", err)
	}
	return Value{kind: KindJSON, str: string(canonical)}, nil
}

// JSONText returns the canonical encoding of a Json value.
func (v Value) JSONText() (string, error) {
	if err := v.expect(KindJSON); err != nil {
		return "", err
	}
	return v.str, nil
}

// DecodeJSON decodes a Json value into out.
func (v Value) DecodeJSON(out any) error {
	if err := v.expect(KindJSON); err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(v.str), out); err != nil {
		return fmt.Errorf("decode json value: %w", err)
	}
	return nil
}
