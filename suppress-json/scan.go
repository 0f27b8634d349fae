package suppress_json

import (
	"bytes"
	"errors"
)

// splitItems splits the top-level comma-separated items of a JSON composite
// that is delimited by open and close. Nested objects, arrays and quoted
// strings are kept intact inside each item.
func splitItems(data []byte, opener byte, closer byte) ([][]byte, error) {
	data = bytes.TrimSpace(data)
	if len(data) < 2 || data[0] != opener || data[len(data)-1] != closer {
		return nil, errors.New("malformed composite")
	}
	body := data[1 : len(data)-1]

	items := [][]byte{}
	start := 0
	curly := 0
	square := 0
	quote := false
	for i := 0; i < len(body); i++ {
		c := body[i]
		if quote {
			if c == '\\' {
				i++
			} else if c == '"' {
				quote = false
			}
			continue
		}
		switch c {
		case '"':
			quote = true
		case '{':
			curly++
		case '}':
			curly--
		case '[':
			square++
		case ']':
			square--
		case ',':
			if curly == 0 && square == 0 {
				items = append(items, bytes.TrimSpace(body[start:i]))
				start = i + 1
			}
		}
	}
	if curly != 0 || square != 0 || quote {
		return nil, errors.New("unbalanced delimiters")
	}
	last := bytes.TrimSpace(body[start:])
	if len(last) > 0 {
		items = append(items, last)
	}
	return items, nil
}

// splitPair splits a single object item into its quoted key and raw value.
func splitPair(item []byte) (string, []byte, error) {
	if len(item) == 0 || item[0] != '"' {
		return "", nil, errors.New("expected quoted key")
	}
	keyEnd := 1
	for keyEnd < len(item) && item[keyEnd] != '"' {
		if item[keyEnd] == '\\' {
			keyEnd++
		}
		keyEnd++
	}
	if keyEnd >= len(item) {
		return "", nil, errors.New("unterminated key")
	}
	rest := bytes.TrimSpace(item[keyEnd+1:])
	if len(rest) == 0 || rest[0] != ':' {
		return "", nil, errors.New("expected ':' after key")
	}
	return string(item[1:keyEnd]), bytes.TrimSpace(rest[1:]), nil
}

// unquote strips the surrounding quotes from a raw string value.
func unquote(raw []byte) ([]byte, bool) {
	if len(raw) < 2 || raw[0] != '"' || raw[len(raw)-1] != '"' {
		return nil, false
	}
	return raw[1 : len(raw)-1], true
}
