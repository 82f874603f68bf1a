package gen

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Endpoint is one generated client method.
type Endpoint struct {
	Name        string
	GoName      string
	Verb        string
	Path        string
	Group       string
	PathArgs    []string
	Fields      []Field
	Passthrough bool
	HasBody     bool
	ExpectJSON  bool
}

// FieldKind says where a Params field travels and how it is encoded.
type FieldKind int

const (
	QueryString FieldKind = iota
	QueryList
	QueryInt
	QueryBool
	HeaderString
	BodyRequired
	BodyOptional
	BodyRequiredBool
	BodyOptionalBool
)

// Field is one member of an endpoint's Params struct.
type Field struct {
	Wire   string
	GoName string
	GoType string
	Kind   FieldKind
}

// Setter is the helper the generated code calls for the field.
func (f Field) Setter() string {
	switch f.Kind {
	case QueryList:
		return "setQueryList"
	case QueryInt:
		return "setQueryInt"
	case QueryBool:
		return "setQueryBool"
	case HeaderString:
		return "setHeader"
	case BodyRequired:
		return "set"
	case BodyOptional:
		return "setOptional"
	case BodyRequiredBool:
		return "setBool"
	case BodyOptionalBool:
		return "setOptionalBool"
	default:
		return "setQuery"
	}
}

func (f Field) isQuery() bool  { return f.Kind <= QueryBool }
func (f Field) isHeader() bool { return f.Kind == HeaderString }
func (f Field) isBody() bool   { return f.Kind >= BodyRequired }

// ParamsType names the endpoint's Params struct.
func (e *Endpoint) ParamsType() string {
	return e.GoName + "Params"
}

// MethodConst is the net/http constant for the verb.
func (e *Endpoint) MethodConst() string {
	switch e.Verb {
	case http.MethodGet:
		return "http.MethodGet"
	case http.MethodPost:
		return "http.MethodPost"
	case http.MethodPut:
		return "http.MethodPut"
	case http.MethodPatch:
		return "http.MethodPatch"
	case http.MethodDelete:
		return "http.MethodDelete"
	}
	return fmt.Sprintf("%q", e.Verb)
}

// Signature renders the method's parameter list.
func (e *Endpoint) Signature() string {
	args := []string{"ctx context.Context"}
	if len(e.PathArgs) > 0 {
		names := make([]string, len(e.PathArgs))
		for i, p := range e.PathArgs {
			names[i] = argName(p)
		}
		args = append(args, strings.Join(names, ", ")+" string")
	}
	if e.Passthrough {
		args = append(args, "body map[string]any")
	}
	if len(e.Fields) > 0 {
		args = append(args, "params *"+e.ParamsType())
	}
	return strings.Join(args, ", ")
}

// PathExpr renders the path template as a Go string expression with
// escaped identifiers.
func (e *Endpoint) PathExpr() string {
	var parts []string
	literal := ""
	for _, seg := range strings.SplitAfter(e.Path, "/") {
		name := strings.TrimSuffix(seg, "/")
		if !isPlaceholder(name) {
			literal += seg
			continue
		}
		if literal != "" {
			parts = append(parts, fmt.Sprintf("%q", literal))
		}
		parts = append(parts, "pathEscape("+argName(name[1:len(name)-1])+")")
		literal = strings.TrimPrefix(seg, name)
	}
	if literal != "" {
		parts = append(parts, fmt.Sprintf("%q", literal))
	}
	return strings.Join(parts, " + ")
}

// Required lists the Go names of body fields sent even when zero.
func (e *Endpoint) Required() []string {
	var names []string
	for _, f := range e.Fields {
		if f.Kind == BodyRequired || f.Kind == BodyRequiredBool {
			names = append(names, f.GoName)
		}
	}
	return names
}

func (e *Endpoint) QueryFields() []Field  { return e.filter(Field.isQuery) }
func (e *Endpoint) HeaderFields() []Field { return e.filter(Field.isHeader) }
func (e *Endpoint) BodyFields() []Field   { return e.filter(Field.isBody) }

func (e *Endpoint) HasQuery() bool  { return len(e.QueryFields()) > 0 }
func (e *Endpoint) HasHeader() bool { return len(e.HeaderFields()) > 0 }

func (e *Endpoint) filter(keep func(Field) bool) []Field {
	var out []Field
	for _, f := range e.Fields {
		if keep(f) {
			out = append(out, f)
		}
	}
	return out
}

// Build turns the operations of spec into endpoints, applying mapping.
// All problems found are reported together.
func Build(spec *Spec, mapping Mapping) ([]*Endpoint, error) {
	var result *multierror.Error
	var endpoints []*Endpoint
	seen := map[string]string{}

	paths := make([]string, 0, len(spec.Paths))
	for p := range spec.Paths {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	for _, path := range paths {
		item := spec.Paths[path]
		uri := stripVersion(path)
		ops := item.operations()
		for _, verb := range verbs {
			op, ok := ops[verb]
			if !ok {
				continue
			}
			name := mapping.lookup(uri, verb)
			if name == skipName {
				continue
			}
			if name == "" {
				name = defaultName(verb, uri)
			}

			ep, err := buildEndpoint(spec, path, verb, name, item.Parameters, op)
			if err != nil {
				result = multierror.Append(result, fmt.Errorf("%s %s: %w", strings.ToUpper(verb), path, err))
				continue
			}
			if prev, dup := seen[ep.GoName]; dup {
				result = multierror.Append(result, fmt.Errorf("%s %s: duplicate method %s (also %s)", strings.ToUpper(verb), path, ep.GoName, prev))
				continue
			}
			if reservedMethods[ep.GoName] {
				result = multierror.Append(result, fmt.Errorf("%s %s: method name %s is reserved", strings.ToUpper(verb), path, ep.GoName))
				continue
			}
			seen[ep.GoName] = strings.ToUpper(verb) + " " + path
			endpoints = append(endpoints, ep)
		}
	}

	sort.Slice(endpoints, func(i, j int) bool {
		return endpoints[i].GoName < endpoints[j].GoName
	})

	return endpoints, result.ErrorOrNil()
}

func buildEndpoint(spec *Spec, path, verb, name string, shared []Parameter, op *Operation) (*Endpoint, error) {
	ep := &Endpoint{
		Name:       name,
		GoName:     goName(name),
		Verb:       strings.ToUpper(verb),
		Path:       path,
		Group:      groupOf(op, stripVersion(path)),
		PathArgs:   placeholders(path),
		ExpectJSON: expectsJSON(op),
	}

	var result *multierror.Error
	for _, p := range mergeParameters(shared, op.Parameters) {
		switch p.In {
		case "path":
			// positional, taken from the template
		case "query":
			ep.Fields = append(ep.Fields, queryField(p))
		case "header":
			ep.Fields = append(ep.Fields, Field{
				Wire:   p.Name,
				GoName: goName(p.Name),
				GoType: "string",
				Kind:   HeaderString,
			})
		default:
			result = multierror.Append(result, fmt.Errorf("unsupported parameter location %q for %s", p.In, p.Name))
		}
	}

	if op.RequestBody != nil {
		ep.HasBody = true
		fields, passthrough, err := bodyFields(spec, op.RequestBody)
		if err != nil {
			result = multierror.Append(result, err)
		}
		ep.Passthrough = passthrough
		ep.Fields = append(ep.Fields, fields...)
	}

	seen := map[string]bool{}
	for _, f := range ep.Fields {
		if seen[f.GoName] {
			result = multierror.Append(result, fmt.Errorf("parameter %s declared twice", f.GoName))
		}
		seen[f.GoName] = true
	}

	return ep, result.ErrorOrNil()
}

// mergeParameters lets operation parameters override path-level ones.
func mergeParameters(shared, own []Parameter) []Parameter {
	if len(shared) == 0 {
		return own
	}
	overridden := map[string]bool{}
	for _, p := range own {
		overridden[p.In+":"+p.Name] = true
	}
	var out []Parameter
	for _, p := range shared {
		if !overridden[p.In+":"+p.Name] {
			out = append(out, p)
		}
	}
	return append(out, own...)
}

func queryField(p Parameter) Field {
	f := Field{Wire: p.Name, GoName: goName(p.Name)}
	switch p.Schema.Type {
	case "boolean":
		f.GoType, f.Kind = "*bool", QueryBool
	case "array":
		f.GoType, f.Kind = "[]string", QueryList
	case "integer":
		f.GoType, f.Kind = "*int", QueryInt
	default:
		f.GoType, f.Kind = "string", QueryString
	}
	return f
}

// bodyFields maps the JSON body schema to fields. A schema without
// properties is passed through as a map.
func bodyFields(spec *Spec, body *RequestBody) ([]Field, bool, error) {
	media, ok := body.Content["application/json"]
	if !ok {
		return nil, false, fmt.Errorf("request body has no application/json content")
	}

	schema := &media.Schema
	if schema.Ref != "" {
		resolved, err := spec.resolve(schema.Ref)
		if err != nil {
			return nil, false, err
		}
		schema = resolved
	}
	if len(schema.Properties) == 0 {
		pattern, ok := schema.PatternProperties["(*)"]
		if !ok || pattern == nil || pattern.Ref == "" {
			return nil, true, nil
		}
		resolved, err := spec.resolve(pattern.Ref)
		if err != nil {
			return nil, false, err
		}
		schema = resolved
	}

	required := map[string]bool{}
	for _, r := range schema.Required {
		required[r] = true
	}

	names := make([]string, 0, len(schema.Properties))
	for n := range schema.Properties {
		names = append(names, n)
	}
	sort.Strings(names)

	fields := make([]Field, 0, len(names))
	for _, n := range names {
		prop := schema.Properties[n]
		f := Field{Wire: n, GoName: goName(n)}
		typ := prop.typeName()
		switch {
		case typ == "boolean" && required[n]:
			f.GoType, f.Kind = "bool", BodyRequiredBool
		case typ == "boolean":
			f.GoType, f.Kind = "*bool", BodyOptionalBool
		case typ == "string" && required[n]:
			f.GoType, f.Kind = "string", BodyRequired
		case typ == "string":
			f.GoType, f.Kind = "*string", BodyOptional
		case required[n]:
			f.GoType, f.Kind = "any", BodyRequired
		default:
			f.GoType, f.Kind = "any", BodyOptional
		}
		fields = append(fields, f)
	}
	return fields, false, nil
}

// expectsJSON is false only when the success response is declared as
// text/plain.
func expectsJSON(op *Operation) bool {
	for _, code := range []string{"200", "201", "202", "204"} {
		resp, ok := op.Responses[code]
		if !ok {
			continue
		}
		_, hasJSON := resp.Content["application/json"]
		for ct := range resp.Content {
			if strings.Contains(ct, "text/plain") && !hasJSON {
				return false
			}
		}
		return true
	}
	return true
}
