package hvr

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder captures the last API request a fakeHub received.
type recorder struct {
	mu     sync.Mutex
	method string
	path   string
	query  url.Values
	header http.Header
	body   map[string]any
	raw    []byte
}

func (rec *recorder) handler(response string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		rec.mu.Lock()
		rec.method = r.Method
		rec.path = r.URL.EscapedPath()
		rec.query = r.URL.Query()
		rec.header = r.Header.Clone()
		rec.raw = raw
		rec.body = nil
		if len(raw) > 0 {
			_ = json.Unmarshal(raw, &rec.body)
		}
		rec.mu.Unlock()
		w.Write([]byte(response))
	}
}

func TestGeneratedQueryParameters(t *testing.T) {
	rec := &recorder{}
	hub := newFakeHub(t, rec.handler(`[]`))
	client := newTestClient(t, hub)

	_, err := client.GetHubsEvents(t.Context(), "hvrhub", &GetHubsEventsParams{
		Channel:          []string{"ch1", "ch2"},
		CurrentOnly:      Bool(false),
		FetchReposEvents: Bool(true),
		MaxEvents:        Int(50),
		BodyPattern:      "",
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, rec.method)
	assert.Equal(t, "/api/v6.1.0.3/hubs/hvrhub/events", rec.path)
	assert.Equal(t, []string{"ch1", "ch2"}, rec.query["channel"])
	assert.Equal(t, "false", rec.query.Get("current_only"))
	assert.Equal(t, "true", rec.query.Get("fetch_repos_events"))
	assert.Equal(t, "50", rec.query.Get("max_events"))
	assert.NotContains(t, rec.query, "body_pattern")
	assert.NotContains(t, rec.query, "fetch_results")
	assert.Empty(t, rec.raw)
}

func TestGeneratedNilParams(t *testing.T) {
	rec := &recorder{}
	hub := newFakeHub(t, rec.handler(`[]`))
	client := newTestClient(t, hub)

	_, err := client.GetHubsDefinitionChannels(t.Context(), "hvrhub", nil)
	require.NoError(t, err)
	assert.Empty(t, rec.query)
	assert.Equal(t, "/api/v6.1.0.3/hubs/hvrhub/definition/channels", rec.path)
}

func TestGeneratedPathEscaping(t *testing.T) {
	rec := &recorder{}
	hub := newFakeHub(t, rec.handler(`{}`))
	client := newTestClient(t, hub)

	_, err := client.GetHubsHub(t.Context(), "my hub/1")
	require.NoError(t, err)
	assert.Equal(t, "/api/v6.1.0.3/hubs/my%20hub%2F1", rec.path)
}

func TestGeneratedBody(t *testing.T) {
	rec := &recorder{}
	hub := newFakeHub(t, rec.handler(`{"jobs":["ch1-cap-src"]}`))
	client := newTestClient(t, hub)

	result, err := client.PostHubsJobsStart(t.Context(), "hvrhub", &PostHubsJobsStartParams{
		Jobs:      []string{"ch1-cap-src"},
		Unsuspend: Bool(false),
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"jobs": []any{"ch1-cap-src"}}, result)

	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/api/v6.1.0.3/hubs/hvrhub/jobs_start", rec.path)
	assert.Equal(t, map[string]any{
		"jobs":      []any{"ch1-cap-src"},
		"unsuspend": "false",
	}, rec.body)
}

func TestGeneratedBodyBooleansAreStrings(t *testing.T) {
	rec := &recorder{}
	hub := newFakeHub(t, rec.handler(`{}`))
	client := newTestClient(t, hub)

	_, err := client.PostHubsChannelsLocsSlicingSuggest(t.Context(), "hvrhub", "ch1", "src", &PostHubsChannelsLocsSlicingSuggestParams{
		RepeatLastCompareSlicing:   Bool(true),
		RepeatLastRefreshSlicing:   Bool(false),
		SuggestFromLastCompareRows: Bool(true),
		SuggestFromLastRefreshRows: Bool(false),
		RowsPerSlice:               1000,
	})
	require.NoError(t, err)
	assert.Equal(t, "/api/v6.1.0.3/hubs/hvrhub/channels/ch1/locs/src/slicing_suggest", rec.path)
	assert.Equal(t, map[string]any{
		"repeat_last_compare_slicing":    "true",
		"repeat_last_refresh_slicing":    "false",
		"suggest_from_last_compare_rows": "true",
		"suggest_from_last_refresh_rows": "false",
		"rows_per_slice":                 float64(1000),
	}, rec.body)

	_, err = client.PostHubsChannelsLocsAdaptCheck(t.Context(), "hvrhub", "ch1", "src", &PostHubsChannelsLocsAdaptCheckParams{
		MapspecTableNotInDbError: Bool(false),
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"mapspec_table_not_in_db_error": "false"}, rec.body)
}

func TestGeneratedRequiredFieldAlwaysSent(t *testing.T) {
	rec := &recorder{}
	hub := newFakeHub(t, rec.handler(`{}`))
	client := newTestClient(t, hub)

	_, err := client.PostHubsJobsStart(t.Context(), "hvrhub", nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"jobs":null}`, string(rec.raw))
}

func TestGeneratedPassthroughBody(t *testing.T) {
	rec := &recorder{}
	hub := newFakeHub(t, rec.handler(``))
	client := newTestClient(t, hub)

	result, err := client.PutHubsProps(t.Context(), "hvrhub", map[string]any{
		"Description": "Production hub",
	})
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Equal(t, http.MethodPut, rec.method)
	assert.Equal(t, map[string]any{"Description": "Production hub"}, rec.body)

	_, err = client.PutHubsProps(t.Context(), "hvrhub", nil)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(rec.raw))
}

func TestGeneratedHeaders(t *testing.T) {
	rec := &recorder{}
	hub := newFakeHub(t, rec.handler(`{}`))
	client := newTestClient(t, hub)

	_, err := client.PatchHubserverProps(t.Context(), map[string]any{"Hub_Server_Port": "4340"}, &PatchHubserverPropsParams{
		XHvrClassifiedTransportKey: "transport-key",
	})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, rec.method)
	assert.Equal(t, "transport-key", rec.header.Get("X-Hvr-Classified-Transport-Key"))
	assert.Equal(t, "bearer token-1", rec.header.Get("Authorization"))

	_, err = client.PatchHubserverProps(t.Context(), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, rec.header.Get("X-Hvr-Classified-Transport-Key"))
}

func TestGeneratedTextResponse(t *testing.T) {
	rec := &recorder{}
	hub := newFakeHub(t, rec.handler("line 1\nline 2\n"))
	client := newTestClient(t, hub)

	result, err := client.GetHubsLogs(t.Context(), "hvrhub", "hvr.out", &GetHubsLogsParams{
		MaxLines:  Int(2),
		SearchEof: Bool(true),
	})
	require.NoError(t, err)
	assert.Equal(t, "line 1\nline 2\n", result)
	assert.Equal(t, "/api/v6.1.0.3/hubs/hvrhub/logs/hvr.out", rec.path)
	assert.Equal(t, "2", rec.query.Get("max_lines"))
	assert.Equal(t, "true", rec.query.Get("search_eof"))
}

func TestGeneratedAPIRoot(t *testing.T) {
	rec := &recorder{}
	hub := newFakeHub(t, rec.handler(`{"version":"6.1.0.3"}`))
	client := newTestClient(t, hub)

	result, err := client.GetApi(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "/api", rec.path)
	assert.Equal(t, map[string]any{"version": "6.1.0.3"}, result)
}
