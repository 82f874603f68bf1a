// Package gen generates the hvr client's endpoint methods from an OpenAPI
// description of the hub server REST API.
package gen

import (
	"bytes"
	_ "embed"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"golang.org/x/tools/imports"
)

//go:embed client.go.tmpl
var clientTemplate string

var tmpl = template.Must(template.New("client").Funcs(template.FuncMap{
	"join": strings.Join,
}).Parse(clientTemplate))

const genSuffix = ".gen.go"

// Options selects the inputs and output of a generator run.
type Options struct {
	SpecPath    string
	MappingPath string
	OutDir      string
	Package     string
}

// Generator writes one Go file per endpoint group.
type Generator struct {
	fs     afero.Fs
	logger zerolog.Logger
}

// NewGenerator creates a generator reading and writing through fs.
func NewGenerator(fs afero.Fs, logger zerolog.Logger) *Generator {
	return &Generator{fs: fs, logger: logger}
}

// Result summarises a generator run.
type Result struct {
	Files     []string
	Endpoints int
	Removed   []string
}

// Run loads the API description and mapping, renders every group and
// replaces the generated files in opts.OutDir. Nothing is written when any
// operation cannot be mapped.
func (g *Generator) Run(opts Options) (*Result, error) {
	if opts.Package == "" {
		opts.Package = "hvr"
	}

	spec, err := LoadSpec(g.fs, opts.SpecPath)
	if err != nil {
		return nil, err
	}
	mapping, err := LoadMapping(g.fs, opts.MappingPath)
	if err != nil {
		return nil, err
	}

	endpoints, err := Build(spec, mapping)
	if err != nil {
		return nil, fmt.Errorf("invalid API description: %w", err)
	}

	g.logger.Debug().
		Str("title", spec.Info.Title).
		Str("version", spec.Info.Version).
		Int("endpoints", len(endpoints)).
		Msg("Loaded API description")

	files, err := g.render(endpoints, filepath.Base(opts.SpecPath), opts.Package)
	if err != nil {
		return nil, err
	}

	if err := g.fs.MkdirAll(opts.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	removed, err := g.removeStale(opts.OutDir, files)
	if err != nil {
		return nil, err
	}

	result := &Result{Endpoints: len(endpoints), Removed: removed}
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		path := filepath.Join(opts.OutDir, name)
		if err := afero.WriteFile(g.fs, path, files[name], 0o644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", path, err)
		}
		g.logger.Debug().Str("file", path).Msg("Wrote generated file")
		result.Files = append(result.Files, path)
	}

	return result, nil
}

type fileData struct {
	Source    string
	Package   string
	Imports   []string
	Endpoints []*Endpoint
}

// render returns the formatted source of each group keyed by file name.
func (g *Generator) render(endpoints []*Endpoint, source, pkg string) (map[string][]byte, error) {
	groups := map[string][]*Endpoint{}
	for _, ep := range endpoints {
		groups[ep.Group] = append(groups[ep.Group], ep)
	}

	files := make(map[string][]byte, len(groups))
	for group, eps := range groups {
		data := fileData{
			Source:    source,
			Package:   pkg,
			Imports:   importsFor(eps),
			Endpoints: eps,
		}

		var buf bytes.Buffer
		if err := tmpl.ExecuteTemplate(&buf, "file", data); err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", group, err)
		}

		name := group + genSuffix
		src, err := imports.Process(name, buf.Bytes(), &imports.Options{
			Comments:   true,
			TabIndent:  true,
			TabWidth:   8,
			FormatOnly: true,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to format %s: %w", name, err)
		}
		files[name] = src
	}
	return files, nil
}

func importsFor(eps []*Endpoint) []string {
	pkgs := []string{"context", "net/http"}
	for _, ep := range eps {
		if ep.HasQuery() {
			return append(pkgs, "net/url")
		}
	}
	return pkgs
}

// removeStale deletes generated files left over from groups that no
// longer exist.
func (g *Generator) removeStale(dir string, keep map[string][]byte) ([]string, error) {
	existing, err := afero.Glob(g.fs, filepath.Join(dir, "*"+genSuffix))
	if err != nil {
		return nil, fmt.Errorf("failed to list generated files: %w", err)
	}

	var removed []string
	for _, path := range existing {
		if _, ok := keep[filepath.Base(path)]; ok {
			continue
		}
		if err := g.fs.Remove(path); err != nil {
			return nil, fmt.Errorf("failed to remove %s: %w", path, err)
		}
		g.logger.Info().Str("file", path).Msg("Removed stale generated file")
		removed = append(removed, path)
	}
	return removed, nil
}
