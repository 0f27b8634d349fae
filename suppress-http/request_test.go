package suppress_http

import (
	"testing"
)

func TestQueryMap(t *testing.T) {
	req := HttpRequest{QueryString: "a=1&b=hello%20world&empty=&flag"}
	got := req.QueryMap()
	if got["a"] != "1" {
		t.Errorf("a = %v", got["a"])
	}
	if got["b"] != "hello world" {
		t.Errorf("b = %v", got["b"])
	}
	if val, ok := got["empty"]; !ok || val != "" {
		t.Errorf("empty = %v (present %v)", val, ok)
	}
	if _, ok := got["flag"]; ok {
		t.Error("valueless pair should be skipped")
	}
}

func TestQueryGetters(t *testing.T) {
	req := HttpRequest{QueryString: "count=42&big=9000000000&name=go&id=936da01f-9abd-4d9d-80c7-02af85c822a8&bad=xyz"}

	if v := req.QueryGetInt32("count"); v == nil || *v != 42 {
		t.Errorf("count = %v", v)
	}
	if v := req.QueryGetInt64("big"); v == nil || *v != 9000000000 {
		t.Errorf("big = %v", v)
	}
	if v := req.QueryGetString("name"); v == nil || *v != "go" {
		t.Errorf("name = %v", v)
	}
	if v := req.QueryGetUUID("id"); v == nil {
		t.Error("id did not parse as UUID")
	}
	if v := req.QueryGetUUID("bad"); v != nil {
		t.Errorf("bad parsed as UUID: %v", v)
	}
	if v := req.QueryGetInt32("bad"); v != nil {
		t.Errorf("bad parsed as int32: %v", v)
	}
	if v := req.QueryGetString("missing"); v != nil {
		t.Errorf("missing = %v", v)
	}
}
