package gen

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureSpec = `openapi: 3.0.3
info:
  title: HVR REST API
  version: 6.1.0.3
paths:
  /api/v6.1.0.3:
    get:
      responses:
        "200":
          description: OK
          content:
            application/json: {}
  /api/v6.1.0.3/hubs/{hub}/channels:
    get:
      tags: [hubs_channels]
      parameters:
      - name: hub
        in: path
        required: true
        schema:
          type: string
      - name: channel
        in: query
        schema:
          type: array
          items:
            type: string
      - name: fetch_all
        in: query
        schema:
          type: boolean
      - name: max_lines
        in: query
        schema:
          type: integer
      responses:
        "200":
          description: OK
          content:
            application/json: {}
    post:
      tags: [hubs_channels]
      parameters:
      - name: hub
        in: path
        required: true
        schema:
          type: string
      requestBody:
        content:
          application/json:
            schema:
              type: object
              required:
              - channel
              properties:
                channel: {}
                description: {}
                enabled:
                  type: boolean
      responses:
        "200":
          description: OK
          content:
            application/json: {}
  /api/v6.1.0.3/hubs/{hub}/jobs/{job}/env_vars/{var}:
    delete:
      tags: [hubs_jobs]
      responses:
        "200":
          description: OK
          content:
            application/json: {}
  /api/v6.1.0.3/hubs/{hub}/props:
    put:
      parameters:
      - name: X-Hvr-Classified-Access
        in: header
        schema:
          type: string
      requestBody:
        content:
          application/json:
            schema:
              type: object
              additionalProperties: true
      responses:
        "200":
          description: OK
          content:
            application/json: {}
  /api/v6.1.0.3/hubs/{hub}/logs/{log}:
    get:
      tags: [hubs_logs]
      responses:
        "200":
          description: OK
          content:
            text/plain: {}
  /api/v6.1.0.3/licenses/{license}:
    put:
      requestBody:
        content:
          application/json:
            schema:
              $ref: "#/components/schemas/Licenses"
      responses:
        "200":
          description: OK
          content:
            application/json: {}
components:
  schemas:
    Licenses:
      type: object
      x-patternProperties:
        (*):
          $ref: "#/components/schemas/License"
    License:
      type: object
      required:
      - raw
      properties:
        raw:
          type: string
        comment:
          type: string
`

const fixtureMapping = `"/":
  get: get_api
`

func newFixtureFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "api/openapi.yaml", []byte(fixtureSpec), 0o644))
	require.NoError(t, afero.WriteFile(fs, "api/function_mapping.yaml", []byte(fixtureMapping), 0o644))
	return fs
}

func loadFixture(t *testing.T) []*Endpoint {
	t.Helper()
	fs := newFixtureFs(t)
	spec, err := LoadSpec(fs, "api/openapi.yaml")
	require.NoError(t, err)
	mapping, err := LoadMapping(fs, "api/function_mapping.yaml")
	require.NoError(t, err)
	endpoints, err := Build(spec, mapping)
	require.NoError(t, err)
	return endpoints
}

func findEndpoint(t *testing.T, endpoints []*Endpoint, name string) *Endpoint {
	t.Helper()
	for _, ep := range endpoints {
		if ep.GoName == name {
			return ep
		}
	}
	t.Fatalf("endpoint %s not generated", name)
	return nil
}

func TestBuild(t *testing.T) {
	endpoints := loadFixture(t)

	var names []string
	for _, ep := range endpoints {
		names = append(names, ep.GoName)
	}
	assert.Equal(t, []string{
		"DeleteHubsJobsEnvVars",
		"GetApi",
		"GetHubsChannels",
		"GetHubsLogs",
		"PostHubsChannels",
		"PutHubsProps",
		"PutLicenses",
	}, names)

	t.Run("query parameters", func(t *testing.T) {
		ep := findEndpoint(t, endpoints, "GetHubsChannels")
		assert.Equal(t, "hubs_channels", ep.Group)
		assert.Equal(t, []string{"hub"}, ep.PathArgs)
		require.Len(t, ep.Fields, 3)
		assert.Equal(t, Field{Wire: "channel", GoName: "Channel", GoType: "[]string", Kind: QueryList}, ep.Fields[0])
		assert.Equal(t, Field{Wire: "fetch_all", GoName: "FetchAll", GoType: "*bool", Kind: QueryBool}, ep.Fields[1])
		assert.Equal(t, Field{Wire: "max_lines", GoName: "MaxLines", GoType: "*int", Kind: QueryInt}, ep.Fields[2])
		assert.True(t, ep.ExpectJSON)
		assert.False(t, ep.HasBody)
	})

	t.Run("body properties", func(t *testing.T) {
		ep := findEndpoint(t, endpoints, "PostHubsChannels")
		require.Len(t, ep.Fields, 3)
		assert.Equal(t, BodyRequired, ep.Fields[0].Kind)
		assert.Equal(t, "any", ep.Fields[0].GoType)
		assert.Equal(t, BodyOptional, ep.Fields[1].Kind)
		assert.Equal(t, BodyOptionalBool, ep.Fields[2].Kind)
		assert.Equal(t, []string{"Channel"}, ep.Required())
		assert.False(t, ep.Passthrough)
	})

	t.Run("passthrough body", func(t *testing.T) {
		ep := findEndpoint(t, endpoints, "PutHubsProps")
		assert.True(t, ep.Passthrough)
		assert.Equal(t, "hubs", ep.Group)
		assert.Equal(t, "ctx context.Context, hub string, body map[string]any, params *PutHubsPropsParams", ep.Signature())
		require.Len(t, ep.HeaderFields(), 1)
		assert.Equal(t, "XHvrClassifiedAccess", ep.HeaderFields()[0].GoName)
	})

	t.Run("pattern properties", func(t *testing.T) {
		ep := findEndpoint(t, endpoints, "PutLicenses")
		require.Len(t, ep.Fields, 2)
		assert.Equal(t, Field{Wire: "comment", GoName: "Comment", GoType: "*string", Kind: BodyOptional}, ep.Fields[0])
		assert.Equal(t, Field{Wire: "raw", GoName: "Raw", GoType: "string", Kind: BodyRequired}, ep.Fields[1])
	})

	t.Run("text response", func(t *testing.T) {
		ep := findEndpoint(t, endpoints, "GetHubsLogs")
		assert.False(t, ep.ExpectJSON)
		assert.Equal(t, "ctx context.Context, hub, log string", ep.Signature())
	})

	t.Run("keyword identifiers", func(t *testing.T) {
		ep := findEndpoint(t, endpoints, "DeleteHubsJobsEnvVars")
		assert.Equal(t, "ctx context.Context, hub, job, varName string", ep.Signature())
		assert.Equal(t, `"/api/v6.1.0.3/hubs/" + pathEscape(hub) + "/jobs/" + pathEscape(job) + "/env_vars/" + pathEscape(varName)`, ep.PathExpr())
		assert.Equal(t, "http.MethodDelete", ep.MethodConst())
	})

	t.Run("root path", func(t *testing.T) {
		ep := findEndpoint(t, endpoints, "GetApi")
		assert.Equal(t, `"/api/v6.1.0.3"`, ep.PathExpr())
		assert.Equal(t, "api", ep.Group)
		assert.Empty(t, ep.Fields)
	})
}

func TestBuildErrors(t *testing.T) {
	spec := &Spec{
		Paths: map[string]PathItem{
			"/api/v6.1.0.3/hubs": {
				Get: &Operation{},
			},
			"/api/v6.1.0.3/hubs/{hub}": {
				Get: &Operation{},
			},
			"/api/v6.1.0.3/login": {
				Post: &Operation{},
			},
			"/api/v6.1.0.3/cookies": {
				Get: &Operation{Parameters: []Parameter{{Name: "session", In: "cookie"}}},
			},
			"/api/v6.1.0.3/broken": {
				Put: &Operation{RequestBody: &RequestBody{Content: map[string]MediaType{
					"application/json": {Schema: Schema{Ref: "#/components/schemas/Missing"}},
				}}},
			},
		},
	}
	mapping := Mapping{"/login": {"post": "login"}}

	_, err := Build(spec, mapping)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate method GetHubs")
	assert.Contains(t, err.Error(), "method name Login is reserved")
	assert.Contains(t, err.Error(), `unsupported parameter location "cookie"`)
	assert.Contains(t, err.Error(), `unresolved schema reference "#/components/schemas/Missing"`)
}

func TestBuildNestedBodyTypes(t *testing.T) {
	spec := &Spec{
		Paths: map[string]PathItem{
			"/api/v6.1.0.3/hubs/{hub}/channels/{channel}/locs/{loc}/slicing_suggest": {
				Post: &Operation{RequestBody: &RequestBody{Content: map[string]MediaType{
					"application/json": {Schema: Schema{
						Type:     "object",
						Required: []string{"tables"},
						Properties: map[string]*Schema{
							"repeat_last_compare_slicing": {Schema: &Schema{Type: "boolean"}},
							"suggest_from_db_stats":       {Type: "boolean"},
							"tables":                      {Schema: &Schema{Type: "string"}},
							"rows_per_slice":              {},
						},
					}},
				}}},
			},
		},
	}

	endpoints, err := Build(spec, Mapping{})
	require.NoError(t, err)
	require.Len(t, endpoints, 1)

	ep := endpoints[0]
	assert.Equal(t, "PostHubsChannelsLocsSlicingSuggest", ep.GoName)
	assert.Equal(t, []Field{
		{Wire: "repeat_last_compare_slicing", GoName: "RepeatLastCompareSlicing", GoType: "*bool", Kind: BodyOptionalBool},
		{Wire: "rows_per_slice", GoName: "RowsPerSlice", GoType: "any", Kind: BodyOptional},
		{Wire: "suggest_from_db_stats", GoName: "SuggestFromDbStats", GoType: "*bool", Kind: BodyOptionalBool},
		{Wire: "tables", GoName: "Tables", GoType: "string", Kind: BodyRequired},
	}, ep.Fields)
}

func TestLoadSpecNestedSchema(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "openapi.yaml", []byte(`openapi: 3.0.3
paths:
  /api/v6.1.0.3/hubs/{hub}/channels/{channel}/locs/{loc}/adapt/check:
    post:
      requestBody:
        content:
          application/json:
            schema:
              type: object
              properties:
                mapspec_table_not_in_db_error:
                  schema:
                    type: boolean
`), 0o644))

	spec, err := LoadSpec(fs, "openapi.yaml")
	require.NoError(t, err)
	endpoints, err := Build(spec, Mapping{})
	require.NoError(t, err)
	require.Len(t, endpoints, 1)
	require.Len(t, endpoints[0].Fields, 1)
	assert.Equal(t, BodyOptionalBool, endpoints[0].Fields[0].Kind)
	assert.Equal(t, "*bool", endpoints[0].Fields[0].GoType)
}

func TestBuildSkip(t *testing.T) {
	spec := &Spec{
		Paths: map[string]PathItem{
			"/api/v6.1.0.3/hubs":       {Get: &Operation{}},
			"/api/v6.1.0.3/hubs/{hub}": {Get: &Operation{}},
		},
	}
	endpoints, err := Build(spec, Mapping{"/hubs/{hub}": {"get": "skip"}})
	require.NoError(t, err)
	require.Len(t, endpoints, 1)
	assert.Equal(t, "GetHubs", endpoints[0].GoName)
}

func TestNaming(t *testing.T) {
	tests := []struct {
		verb string
		uri  string
		want string
	}{
		{"get", "/", "get"},
		{"get", "/hubs", "get_hubs"},
		{"get", "/hubs/{hub}/channels", "get_hubs_channels"},
		{"post", "/hubs/{hub}/channels/{channel}/refresh", "post_hubs_channels_refresh"},
		{"delete", "/hubs/{hub}/jobs/{job}/env_vars/{var}", "delete_hubs_jobs_env_vars"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, defaultName(tt.verb, tt.uri))
		})
	}

	assert.Equal(t, "/", stripVersion("/api/v6.1.0.3"))
	assert.Equal(t, "/hubs/{hub}", stripVersion("/api/v6.1.0.3/hubs/{hub}"))
	assert.Equal(t, "ctrlId", argName("ctrl_id"))
	assert.Equal(t, "typeName", argName("type"))
	assert.Equal(t, "urlName", argName("url"))
	assert.Equal(t, "XHvrClassifiedAccess", goName("X-Hvr-Classified-Access"))
}

func TestGeneratorRun(t *testing.T) {
	fs := newFixtureFs(t)
	require.NoError(t, afero.WriteFile(fs, "hvr/stale.gen.go", []byte("package hvr\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "hvr/client.go", []byte("package hvr\n"), 0o644))

	g := NewGenerator(fs, zerolog.Nop())
	result, err := g.Run(Options{
		SpecPath:    "api/openapi.yaml",
		MappingPath: "api/function_mapping.yaml",
		OutDir:      "hvr",
	})
	require.NoError(t, err)
	assert.Equal(t, 7, result.Endpoints)
	assert.Equal(t, []string{"hvr/stale.gen.go"}, result.Removed)
	assert.ElementsMatch(t, []string{
		"hvr/api.gen.go",
		"hvr/hubs.gen.go",
		"hvr/hubs_channels.gen.go",
		"hvr/hubs_jobs.gen.go",
		"hvr/hubs_logs.gen.go",
		"hvr/licenses.gen.go",
	}, result.Files)

	exists, err := afero.Exists(fs, "hvr/client.go")
	require.NoError(t, err)
	assert.True(t, exists)

	src, err := afero.ReadFile(fs, "hvr/hubs_channels.gen.go")
	require.NoError(t, err)
	out := string(src)

	assert.Contains(t, out, "// Code generated by hvrctl generate from openapi.yaml; DO NOT EDIT.\n\npackage hvr\n")
	assert.Contains(t, out, "\t\"net/url\"\n")
	assert.Contains(t, out, "// PostHubsChannelsParams carries the parameters of PostHubsChannels.\n//\n// Always sent: Channel.\n")
	assert.Contains(t, out, "func (c *Client) GetHubsChannels(ctx context.Context, hub string, params *GetHubsChannelsParams) (any, error) {")
	assert.Contains(t, out, "\tsetQueryList(query, \"channel\", params.Channel)\n")
	assert.Contains(t, out, "\tsetQueryBool(query, \"fetch_all\", params.FetchAll)\n")
	assert.Contains(t, out, "\tbody.set(\"channel\", params.Channel)\n")
	assert.Contains(t, out, "\tbody.setOptionalBool(\"enabled\", params.Enabled)\n")
	assert.Contains(t, out, "\t\tMethod:     http.MethodPost,\n")
	assert.Contains(t, out, "\t\tExpectJSON: true,\n")

	logs, err := afero.ReadFile(fs, "hvr/hubs_logs.gen.go")
	require.NoError(t, err)
	assert.NotContains(t, string(logs), "net/url")
	assert.Contains(t, string(logs), "\t\tExpectJSON: false,\n")

	props, err := afero.ReadFile(fs, "hvr/hubs.gen.go")
	require.NoError(t, err)
	assert.Contains(t, string(props), "\tif body == nil {\n\t\tbody = map[string]any{}\n\t}\n")
	assert.Contains(t, string(props), "\tsetHeader(header, \"X-Hvr-Classified-Access\", params.XHvrClassifiedAccess)\n")
}

func TestGeneratorRunInvalidSpec(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "openapi.yaml", []byte("openapi: 3.0.3\npaths: {}\n"), 0o644))

	g := NewGenerator(fs, zerolog.Nop())
	_, err := g.Run(Options{SpecPath: "openapi.yaml", OutDir: "out"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "declares no paths")

	_, err = g.Run(Options{SpecPath: "missing.yaml", OutDir: "out"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read spec")
}
