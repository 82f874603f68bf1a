package gen

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Spec is the subset of an OpenAPI 3 document the generator reads.
type Spec struct {
	OpenAPI    string              `yaml:"openapi"`
	Info       Info                `yaml:"info"`
	Paths      map[string]PathItem `yaml:"paths"`
	Components Components          `yaml:"components"`
}

// Info carries the API title and version.
type Info struct {
	Title   string `yaml:"title"`
	Version string `yaml:"version"`
}

// PathItem holds the operations declared for one path.
type PathItem struct {
	Get        *Operation  `yaml:"get"`
	Put        *Operation  `yaml:"put"`
	Post       *Operation  `yaml:"post"`
	Delete     *Operation  `yaml:"delete"`
	Patch      *Operation  `yaml:"patch"`
	Parameters []Parameter `yaml:"parameters"`
}

var verbs = []string{"get", "put", "post", "delete", "patch"}

// operations returns the declared operations keyed by lower-case verb.
func (p PathItem) operations() map[string]*Operation {
	ops := map[string]*Operation{}
	for verb, op := range map[string]*Operation{
		"get":    p.Get,
		"put":    p.Put,
		"post":   p.Post,
		"delete": p.Delete,
		"patch":  p.Patch,
	} {
		if op != nil {
			ops[verb] = op
		}
	}
	return ops
}

// Operation is one verb on one path.
type Operation struct {
	OperationID string              `yaml:"operationId"`
	Summary     string              `yaml:"summary"`
	Tags        []string            `yaml:"tags"`
	Parameters  []Parameter         `yaml:"parameters"`
	RequestBody *RequestBody        `yaml:"requestBody"`
	Responses   map[string]Response `yaml:"responses"`
}

// Parameter is a path, query or header parameter.
type Parameter struct {
	Name     string `yaml:"name"`
	In       string `yaml:"in"`
	Required bool   `yaml:"required"`
	Schema   Schema `yaml:"schema"`
}

// RequestBody maps content types to schemas.
type RequestBody struct {
	Required bool                 `yaml:"required"`
	Content  map[string]MediaType `yaml:"content"`
}

// Response maps content types to schemas.
type Response struct {
	Description string               `yaml:"description"`
	Content     map[string]MediaType `yaml:"content"`
}

// MediaType wraps the schema of one content type.
type MediaType struct {
	Schema Schema `yaml:"schema"`
}

// Schema is the part of a JSON schema that decides Go field types.
type Schema struct {
	Ref                  string             `yaml:"$ref"`
	Type                 string             `yaml:"type"`
	Items                *Schema            `yaml:"items"`
	Properties           map[string]*Schema `yaml:"properties"`
	Required             []string           `yaml:"required"`
	AdditionalProperties any                `yaml:"additionalProperties"`
	PatternProperties    map[string]*Schema `yaml:"x-patternProperties"`
	// Schema is the nested form some body properties use for their type.
	Schema *Schema `yaml:"schema"`
}

// typeName returns the declared type, looking through a nested schema.
func (s *Schema) typeName() string {
	switch {
	case s == nil:
		return ""
	case s.Type != "":
		return s.Type
	case s.Schema != nil:
		return s.Schema.Type
	}
	return ""
}

// Components holds reusable schemas referenced by $ref.
type Components struct {
	Schemas map[string]*Schema `yaml:"schemas"`
}

// resolve follows a local "#/components/schemas/Name" reference.
func (s *Spec) resolve(ref string) (*Schema, error) {
	const prefix = "#/components/schemas/"
	if !strings.HasPrefix(ref, prefix) {
		return nil, fmt.Errorf("unsupported schema reference %q", ref)
	}
	schema, ok := s.Components.Schemas[strings.TrimPrefix(ref, prefix)]
	if !ok || schema == nil {
		return nil, fmt.Errorf("unresolved schema reference %q", ref)
	}
	return schema, nil
}

// LoadSpec reads an OpenAPI document in YAML (or JSON) form.
func LoadSpec(fs afero.Fs, path string) (*Spec, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read spec: %w", err)
	}
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to parse spec %s: %w", path, err)
	}
	if len(spec.Paths) == 0 {
		return nil, fmt.Errorf("spec %s declares no paths", path)
	}
	return &spec, nil
}

// Mapping overrides generated method names, keyed by path (without the
// /api/<version> prefix) and then verb. The name "skip" drops the operation.
type Mapping map[string]map[string]string

const skipName = "skip"

// LoadMapping reads a name mapping file. An empty path yields no overrides.
func LoadMapping(fs afero.Fs, path string) (Mapping, error) {
	if path == "" {
		return Mapping{}, nil
	}
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping: %w", err)
	}
	m := Mapping{}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse mapping %s: %w", path, err)
	}
	return m, nil
}

func (m Mapping) lookup(uri, verb string) string {
	return m[uri][verb]
}
