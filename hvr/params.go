package hvr

import (
	"net/http"
	"net/url"
	"reflect"
	"strconv"
)

// Booleans are sent as the strings "true" and "false" in query strings and
// request bodies alike; the hub server does not accept JSON booleans.

func pathEscape(segment string) string {
	return url.PathEscape(segment)
}

func setQuery(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

func setQueryList(q url.Values, key string, values []string) {
	for _, v := range values {
		q.Add(key, v)
	}
}

func setQueryInt(q url.Values, key string, value *int) {
	if value != nil {
		q.Set(key, strconv.Itoa(*value))
	}
}

func setQueryBool(q url.Values, key string, value *bool) {
	if value != nil {
		q.Set(key, strconv.FormatBool(*value))
	}
}

func setHeader(h http.Header, key, value string) {
	if value != "" {
		h.Set(key, value)
	}
}

// payload is a JSON request body under construction.
type payload map[string]any

// set adds a required field; it is sent even when zero.
func (p payload) set(key string, value any) {
	p[key] = value
}

// setOptional adds a field only when it was provided.
func (p payload) setOptional(key string, value any) {
	if !isNil(value) {
		p[key] = value
	}
}

func (p payload) setBool(key string, value bool) {
	p[key] = strconv.FormatBool(value)
}

func (p payload) setOptionalBool(key string, value *bool) {
	if value != nil {
		p[key] = strconv.FormatBool(*value)
	}
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// Bool returns a pointer to b, for optional boolean parameters.
func Bool(b bool) *bool {
	return &b
}

// Int returns a pointer to i, for optional integer parameters.
func Int(i int) *int {
	return &i
}
