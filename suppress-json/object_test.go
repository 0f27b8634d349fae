package suppress_json

import "testing"

func TestJsonObject(t *testing.T) {
	json := []byte(`{"name":"John","age":30,"friends":[{"name":"Bob","age":20},{"name":"Alice","age":21}]}`)
	obj := NewJsonObject()
	err := obj.Parse(&json)
	if err != nil {
		t.Fatal(err)
	}
	name, ferr := obj.GetString("name")
	if ferr != nil {
		t.Fatal(ferr)
	}
	if *name != "John" {
		t.Error("Name is not John")
	}
	age, ferr := obj.GetInt32("age")
	if ferr != nil {
		t.Fatal(ferr)
	}
	if *age != 30 {
		t.Error("Age is not 30")
	}
	friends, ferr := obj.GetArray("friends")
	if ferr != nil {
		t.Fatal(ferr)
	}
	if friends.Length() != 2 {
		t.Errorf("expected 2 friends, got %d", friends.Length())
	}
	friend0, ferr := friends.GetObject(0)
	if ferr != nil {
		t.Fatal(ferr)
	}
	name, ferr = friend0.GetString("name")
	if ferr != nil {
		t.Fatal(ferr)
	}
	if *name != "Bob" {
		t.Error("Name is not Bob")
	}
}

func TestJsonObjectMissingField(t *testing.T) {
	json := []byte(`{"name":"John"}`)
	obj := NewJsonObject()
	if err := obj.Parse(&json); err != nil {
		t.Fatal(err)
	}
	if _, err := obj.GetString("email"); err == nil {
		t.Error("expected error for missing field")
	}
	if obj.Has("email") {
		t.Error("Has reported a missing field as present")
	}
}

func TestJsonObjectWrongType(t *testing.T) {
	json := []byte(`{"age":"thirty"}`)
	obj := NewJsonObject()
	if err := obj.Parse(&json); err != nil {
		t.Fatal(err)
	}
	_, err := obj.GetInt32("age")
	if err == nil {
		t.Fatal("expected error for mistyped field")
	}
	err.AddPath("user")
	if err.Error() != "Field user.age is invalid. Expected int32" {
		t.Errorf("error = %v", err.Error())
	}
}

func TestJsonObjectMalformed(t *testing.T) {
	for _, raw := range []string{`[1,2]`, `{"name":"John"`, `{"name}`, ``} {
		json := []byte(raw)
		obj := NewJsonObject()
		if err := obj.Parse(&json); err == nil {
			t.Errorf("expected parse error for %q", raw)
		}
	}
}

func TestJsonObjectQuotedDelimiters(t *testing.T) {
	json := []byte(`{"text":"a,b}c","n":1}`)
	obj := NewJsonObject()
	if err := obj.Parse(&json); err != nil {
		t.Fatal(err)
	}
	text, ferr := obj.GetString("text")
	if ferr != nil {
		t.Fatal(ferr)
	}
	if *text != "a,b}c" {
		t.Errorf("text = %v", *text)
	}
	n, ferr := obj.GetInt64("n")
	if ferr != nil {
		t.Fatal(ferr)
	}
	if *n != 1 {
		t.Errorf("n = %v", *n)
	}
}
