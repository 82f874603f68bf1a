package hvr

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryHelpers(t *testing.T) {
	q := url.Values{}
	setQuery(q, "channel", "ch1")
	setQuery(q, "empty", "")
	setQueryList(q, "loc", []string{"src", "tgt"})
	setQueryList(q, "none", nil)
	setQueryInt(q, "max_lines", Int(0))
	setQueryInt(q, "offset_end", nil)
	setQueryBool(q, "fetch_results", Bool(true))
	setQueryBool(q, "current_only", Bool(false))
	setQueryBool(q, "local", nil)

	assert.Equal(t, url.Values{
		"channel":       {"ch1"},
		"loc":           {"src", "tgt"},
		"max_lines":     {"0"},
		"fetch_results": {"true"},
		"current_only":  {"false"},
	}, q)
}

func TestSetHeader(t *testing.T) {
	h := http.Header{}
	setHeader(h, "X-Hvr-Classified-Access", "key")
	setHeader(h, "X-Hvr-Classified-Transport-Key", "")

	assert.Equal(t, "key", h.Get("X-Hvr-Classified-Access"))
	assert.NotContains(t, h, "X-Hvr-Classified-Transport-Key")
}

func TestPayload(t *testing.T) {
	var missing map[string]any
	var nilPtr *string

	p := payload{}
	p.set("jobs", nil)
	p.set("channel", "ch1")
	p.setOptional("description", nil)
	p.setOptional("tables", missing)
	p.setOptional("comment", nilPtr)
	p.setOptional("loc_groups", []any{"SOURCE"})
	p.setOptional("priority", 0)
	p.setBool("enabled", false)
	p.setOptionalBool("unsuspend", Bool(false))
	p.setOptionalBool("trigger_failed", nil)

	assert.Equal(t, payload{
		"jobs":       nil,
		"channel":    "ch1",
		"loc_groups": []any{"SOURCE"},
		"priority":   0,
		"enabled":    "false",
		"unsuspend":  "false",
	}, p)
}

func TestPathEscape(t *testing.T) {
	assert.Equal(t, "my%20hub", pathEscape("my hub"))
	assert.Equal(t, "a%2Fb", pathEscape("a/b"))
	assert.Equal(t, "hvrhub", pathEscape("hvrhub"))
}
