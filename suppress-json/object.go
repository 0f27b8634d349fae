// Package suppress_json is a small byte-scanning JSON reader for request
// bodies. Unlike encoding/json it reads field-by-field on demand, so callers
// decide which fields are required and get a precise FieldError (with the
// nested path) for whatever is missing or mistyped.
package suppress_json

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

type JsonObject struct {
	fields map[string][]byte
}

func NewJsonObject() *JsonObject {
	return &JsonObject{
		fields: make(map[string][]byte),
	}
}

// Parse scans a JSON object and stores the raw bytes of each top-level
// field. Values are only converted when a typed getter asks for them.
func (obj *JsonObject) Parse(data *[]byte) error {
	items, err := splitItems(*data, '{', '}')
	if err != nil {
		return CouldNotParseError("")
	}
	for _, item := range items {
		key, value, err := splitPair(item)
		if err != nil {
			return CouldNotParseError(key)
		}
		obj.fields[key] = value
	}
	return nil
}

// Has reports whether a top-level field is present.
func (obj *JsonObject) Has(key string) bool {
	_, ok := obj.fields[key]
	return ok
}

func (obj *JsonObject) GetString(key string) (*string, *FieldError) {
	val, ok := obj.fields[key]
	if !ok {
		return nil, NoFieldError(key)
	}
	inner, ok := unquote(val)
	if !ok {
		return nil, InvalidFieldError(key, "string")
	}
	str := string(inner)
	return &str, nil
}

func (obj *JsonObject) GetInt32(key string) (*int32, *FieldError) {
	val, ok := obj.fields[key]
	if !ok {
		return nil, NoFieldError(key)
	}
	i, err := strconv.ParseInt(string(val), 10, 32)
	if err != nil {
		return nil, InvalidFieldError(key, "int32")
	}
	sized := int32(i)
	return &sized, nil
}

func (obj *JsonObject) GetInt64(key string) (*int64, *FieldError) {
	val, ok := obj.fields[key]
	if !ok {
		return nil, NoFieldError(key)
	}
	i, err := strconv.ParseInt(string(val), 10, 64)
	if err != nil {
		return nil, InvalidFieldError(key, "int64")
	}
	return &i, nil
}

func (obj *JsonObject) GetFloat64(key string) (*float64, *FieldError) {
	val, ok := obj.fields[key]
	if !ok {
		return nil, NoFieldError(key)
	}
	f, err := strconv.ParseFloat(string(val), 64)
	if err != nil {
		return nil, InvalidFieldError(key, "float64")
	}
	return &f, nil
}

func (obj *JsonObject) GetBool(key string) (*bool, *FieldError) {
	val, ok := obj.fields[key]
	if !ok {
		return nil, NoFieldError(key)
	}
	b, err := strconv.ParseBool(string(val))
	if err != nil {
		return nil, InvalidFieldError(key, "bool")
	}
	return &b, nil
}

// GetTime reads an RFC 3339 timestamp field.
func (obj *JsonObject) GetTime(key string) (*time.Time, *FieldError) {
	val, ok := obj.fields[key]
	if !ok {
		return nil, NoFieldError(key)
	}
	inner, ok := unquote(val)
	if !ok {
		return nil, InvalidFieldError(key, "time")
	}
	ts, err := time.Parse(time.RFC3339, string(inner))
	if err != nil {
		return nil, InvalidFieldError(key, "time")
	}
	return &ts, nil
}

func (obj *JsonObject) GetUuid(key string) (*uuid.UUID, *FieldError) {
	val, ok := obj.fields[key]
	if !ok {
		return nil, NoFieldError(key)
	}
	inner, ok := unquote(val)
	if !ok {
		return nil, InvalidFieldError(key, "uuid")
	}
	id, err := uuid.ParseBytes(inner)
	if err != nil {
		return nil, InvalidFieldError(key, "uuid")
	}
	return &id, nil
}

func (obj *JsonObject) GetObject(key string) (*JsonObject, *FieldError) {
	val, ok := obj.fields[key]
	if !ok {
		return nil, NoFieldError(key)
	}
	nested := NewJsonObject()
	if err := nested.Parse(&val); err != nil {
		return nil, InvalidFieldError(key, "object")
	}
	return nested, nil
}

func (obj *JsonObject) GetArray(key string) (*JsonArray, *FieldError) {
	val, ok := obj.fields[key]
	if !ok {
		return nil, NoFieldError(key)
	}
	nested := NewJsonArray()
	if err := nested.Parse(&val); err != nil {
		return nil, InvalidFieldError(key, "array")
	}
	return nested, nil
}
