package suppress_json

import (
	"strconv"

	"github.com/google/uuid"
)

type JsonArray struct {
	items [][]byte
}

func NewJsonArray() *JsonArray {
	return &JsonArray{
		items: [][]byte{},
	}
}

// Parse scans a JSON array and stores the raw bytes of each element.
func (arr *JsonArray) Parse(data *[]byte) error {
	items, err := splitItems(*data, '[', ']')
	if err != nil {
		return CouldNotParseError("")
	}
	arr.items = items
	return nil
}

func (arr *JsonArray) Length() int {
	return len(arr.items)
}

func (arr *JsonArray) GetString(index int) (*string, *FieldError) {
	if index < 0 || index >= len(arr.items) {
		return nil, NoFieldError(strconv.Itoa(index))
	}
	inner, ok := unquote(arr.items[index])
	if !ok {
		return nil, InvalidFieldError(strconv.Itoa(index), "string")
	}
	str := string(inner)
	return &str, nil
}

func (arr *JsonArray) GetInt32(index int) (*int32, *FieldError) {
	if index < 0 || index >= len(arr.items) {
		return nil, NoFieldError(strconv.Itoa(index))
	}
	i, err := strconv.ParseInt(string(arr.items[index]), 10, 32)
	if err != nil {
		return nil, InvalidFieldError(strconv.Itoa(index), "int32")
	}
	sized := int32(i)
	return &sized, nil
}

func (arr *JsonArray) GetInt64(index int) (*int64, *FieldError) {
	if index < 0 || index >= len(arr.items) {
		return nil, NoFieldError(strconv.Itoa(index))
	}
	i, err := strconv.ParseInt(string(arr.items[index]), 10, 64)
	if err != nil {
		return nil, InvalidFieldError(strconv.Itoa(index), "int64")
	}
	return &i, nil
}

func (arr *JsonArray) GetUuid(index int) (*uuid.UUID, *FieldError) {
	if index < 0 || index >= len(arr.items) {
		return nil, NoFieldError(strconv.Itoa(index))
	}
	inner, ok := unquote(arr.items[index])
	if !ok {
		return nil, InvalidFieldError(strconv.Itoa(index), "uuid")
	}
	id, err := uuid.ParseBytes(inner)
	if err != nil {
		return nil, InvalidFieldError(strconv.Itoa(index), "uuid")
	}
	return &id, nil
}

func (arr *JsonArray) GetObject(index int) (*JsonObject, *FieldError) {
	if index < 0 || index >= len(arr.items) {
		return nil, NoFieldError(strconv.Itoa(index))
	}
	nested := NewJsonObject()
	if err := nested.Parse(&arr.items[index]); err != nil {
		return nil, InvalidFieldError(strconv.Itoa(index), "object")
	}
	return nested, nil
}

func (arr *JsonArray) GetArray(index int) (*JsonArray, *FieldError) {
	if index < 0 || index >= len(arr.items) {
		return nil, NoFieldError(strconv.Itoa(index))
	}
	nested := NewJsonArray()
	if err := nested.Parse(&arr.items[index]); err != nil {
		return nil, InvalidFieldError(strconv.Itoa(index), "array")
	}
	return nested, nil
}
