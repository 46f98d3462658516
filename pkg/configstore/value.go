package configstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
)

// Type discriminates the Value union.
type Type string

const (
	TypeString Type = "string"
	TypeNumber Type = "number"
	TypeBool   Type = "boolean"
	TypeObject Type = "object"
	TypeList   Type = "list"
)

// Value is a tagged union holding one configuration value. The zero Value
// is "absent" and is what Get substitutes defaults for. Values are treated
// as immutable; accessors and Clone return deep copies where it matters.
type Value struct {
	typ  Type
	str  string
	num  float64
	bln  bool
	obj  map[string]any
	list []any
}

// String returns a string Value.
func String(s string) Value { return Value{typ: TypeString, str: s} }

// Number returns a numeric Value.
func Number(n float64) Value { return Value{typ: TypeNumber, num: n} }

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{typ: TypeBool, bln: b} }

// Object returns a structured Value. The map is deep-copied.
func Object(m map[string]any) Value {
	return Value{typ: TypeObject, obj: cloneMap(m)}
}

// List returns an ordered list Value. The slice is deep-copied.
func List(items []any) Value {
	return Value{typ: TypeList, list: cloneSlice(items)}
}

// FromAny coerces an untyped value (as produced by encoding/json or
// yaml.v3 decoding) into a Value.
func FromAny(v any) (Value, error) {
	switch t := v.(type) {
	case nil:
		return Value{}, ErrUnsupportedValue
	case string:
		return String(t), nil
	case bool:
		return Bool(t), nil
	case float64:
		return Number(t), nil
	case float32:
		return Number(float64(t)), nil
	case int:
		return Number(float64(t)), nil
	case int32:
		return Number(float64(t)), nil
	case int64:
		return Number(float64(t)), nil
	case uint:
		return Number(float64(t)), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return Value{}, errors.Join(ErrUnsupportedValue, err)
		}
		return Number(f), nil
	case map[string]any:
		return Object(t), nil
	case []any:
		return List(t), nil
	case Value:
		return t.Clone(), nil
	default:
		return Value{}, errors.Join(ErrUnsupportedValue, fmt.Errorf("unsupported type %T", v))
	}
}

// Type returns the discriminator; empty for the zero (absent) Value.
func (v Value) Type() Type { return v.typ }

// IsZero reports whether v is the absent value.
func (v Value) IsZero() bool { return v.typ == "" }

// AsString returns the string payload and true when v is a string.
func (v Value) AsString() (string, bool) {
	if v.typ != TypeString {
		return "", false
	}
	return v.str, true
}

// AsNumber returns the numeric payload and true when v is a number.
func (v Value) AsNumber() (float64, bool) {
	if v.typ != TypeNumber {
		return 0, false
	}
	return v.num, true
}

// AsBool returns the boolean payload and true when v is a boolean.
func (v Value) AsBool() (bool, bool) {
	if v.typ != TypeBool {
		return false, false
	}
	return v.bln, true
}

// AsObject returns a deep copy of the object payload.
func (v Value) AsObject() (map[string]any, bool) {
	if v.typ != TypeObject {
		return nil, false
	}
	return cloneMap(v.obj), true
}

// AsList returns a deep copy of the list payload.
func (v Value) AsList() ([]any, bool) {
	if v.typ != TypeList {
		return nil, false
	}
	return cloneSlice(v.list), true
}

// Any returns the payload as an untyped value (deep-copied for containers).
func (v Value) Any() any {
	switch v.typ {
	case TypeString:
		return v.str
	case TypeNumber:
		return v.num
	case TypeBool:
		return v.bln
	case TypeObject:
		return cloneMap(v.obj)
	case TypeList:
		return cloneSlice(v.list)
	default:
		return nil
	}
}

// Clone returns an independent copy of v.
func (v Value) Clone() Value {
	out := v
	out.obj = cloneMap(v.obj)
	out.list = cloneSlice(v.list)
	return out
}

// Equal reports deep equality of type and payload.
func (v Value) Equal(other Value) bool {
	if v.typ != other.typ {
		return false
	}
	switch v.typ {
	case TypeString:
		return v.str == other.str
	case TypeNumber:
		return v.num == other.num
	case TypeBool:
		return v.bln == other.bln
	case TypeObject:
		return reflect.DeepEqual(v.obj, other.obj)
	case TypeList:
		return reflect.DeepEqual(v.list, other.list)
	default:
		return true
	}
}

func (v Value) String() string {
	if v.IsZero() {
		return "<absent>"
	}
	return fmt.Sprintf("%v", v.Any())
}

type valueJSON struct {
	Type  Type `json:"type"`
	Value any  `json:"value"`
}

// MarshalJSON encodes the value with an explicit type discriminator, so
// that 1.0 and true survive a round trip unambiguously.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(valueJSON{Type: v.typ, Value: v.Any()})
}

func (v *Value) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = Value{}
		return nil
	}

	var raw valueJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Join(ErrUnsupportedValue, err)
	}

	decoded, err := FromAny(raw.Value)
	if err != nil {
		return err
	}
	if raw.Type != "" && raw.Type != decoded.Type() {
		return errors.Join(ErrUnsupportedValue,
			fmt.Errorf("declared type %q does not match payload type %q", raw.Type, decoded.Type()))
	}

	*v = decoded
	return nil
}

func cloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneAny(v)
	}
	return out
}

func cloneSlice(s []any) []any {
	if s == nil {
		return nil
	}
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = cloneAny(v)
	}
	return out
}

func cloneAny(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneMap(t)
	case []any:
		return cloneSlice(t)
	default:
		return t
	}
}
