package suppress_json

// FieldError describes why a field could not be read: the field was missing,
// the field held a value of the wrong type, or the surrounding document
// could not be parsed at all.
type FieldError struct {
	field     string
	valueType string
	found     bool
	parsed    bool
}

func NoFieldError(field string) *FieldError {
	return &FieldError{field, "", false, true}
}

func InvalidFieldError(field string, valueType string) *FieldError {
	return &FieldError{field, valueType, true, true}
}

func CouldNotParseError(field string) *FieldError {
	return &FieldError{field, "", false, false}
}

// AddPath prepends a parent field name, so errors surfaced from nested
// objects carry their full path.
func (e *FieldError) AddPath(field string) {
	e.field = field + "." + e.field
}

func (e *FieldError) Error() string {
	if e.found {
		return "Field " + e.field + " is invalid. Expected " + e.valueType
	}
	return "Invalid JSON received."
}
