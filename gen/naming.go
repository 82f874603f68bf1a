package gen

import (
	"go/token"
	"strings"

	"github.com/iancoleman/strcase"
)

// reservedArgs are identifiers the method template declares itself.
var reservedArgs = map[string]bool{
	"c":       true,
	"ctx":     true,
	"params":  true,
	"body":    true,
	"query":   true,
	"header":  true,
	"context": true,
	"http":    true,
	"url":     true,
}

// reservedMethods are hand-written Client methods generated names must not shadow.
var reservedMethods = map[string]bool{
	"Do":          true,
	"Login":       true,
	"Token":       true,
	"TokenSource": true,
	"BaseURL":     true,
	"SetupMode":   true,
}

// stripVersion drops the leading /api/<version> segments of a path.
func stripVersion(path string) string {
	parts := strings.Split(path, "/")
	if len(parts) <= 3 {
		return "/"
	}
	return "/" + strings.Join(parts[3:], "/")
}

// defaultName derives a snake_case method name: the verb followed by the
// literal path segments, identifier segments left out.
func defaultName(verb, uri string) string {
	var segs []string
	for _, seg := range strings.Split(uri, "/") {
		if isPlaceholder(seg) {
			continue
		}
		segs = append(segs, seg)
	}
	name := strings.ReplaceAll(verb+strings.Join(segs, "/"), "/", "_")
	for strings.Contains(name, "__") {
		name = strings.ReplaceAll(name, "__", "_")
	}
	return strings.TrimRight(name, "_")
}

func isPlaceholder(seg string) bool {
	return strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}")
}

// placeholders returns the identifiers embedded in a path template, in order.
func placeholders(path string) []string {
	var names []string
	for _, seg := range strings.Split(path, "/") {
		if isPlaceholder(seg) {
			names = append(names, seg[1:len(seg)-1])
		}
	}
	return names
}

func goName(name string) string {
	return strcase.ToCamel(name)
}

func argName(name string) string {
	n := strcase.ToLowerCamel(name)
	if token.IsKeyword(n) || reservedArgs[n] {
		n += "Name"
	}
	return n
}

// groupOf picks the file an operation is written to: its first tag, or the
// first literal segment of its path.
func groupOf(op *Operation, uri string) string {
	if len(op.Tags) > 0 && op.Tags[0] != "" {
		return strcase.ToSnake(op.Tags[0])
	}
	for _, seg := range strings.Split(uri, "/") {
		if seg != "" {
			return seg
		}
	}
	return "api"
}
