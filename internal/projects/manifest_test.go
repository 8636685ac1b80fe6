package projects

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseManifestFieldAliases(t *testing.T) {
	body := []byte(`{
		"projects": [
			{"title": "One", "repo": "https://github.com/u/one", "desc": "short form keys"},
			{"title": "Two", "github": "https://github.com/u/two", "description": "long form keys", "stack": ["Go", "chi"]},
			{"note": "no title, no url"}
		]
	}`)

	out, err := ParseManifest(body)
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, "https://github.com/u/one", out[0].GitHub)
	assert.Equal(t, "short form keys", out[0].Description)
	assert.Equal(t, "https://github.com/u/two", out[1].GitHub)
	assert.Equal(t, "long form keys", out[1].Description)
	assert.Equal(t, []string{"Go", "chi"}, out[1].Stack)
}

func TestParseManifestMalformed(t *testing.T) {
	for name, body := range map[string]string{
		"not json":    "{{{{",
		"no projects": `{"items": []}`,
		"not array":   `{"projects": {"title": "x"}}`,
	} {
		_, err := ParseManifest([]byte(body))
		assert.Error(t, err, name)
	}
}

func TestFetchManifest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"projects": [{"title": "Remote", "repo": "https://github.com/u/r"}]}`))
	}))
	defer srv.Close()

	out, err := FetchManifest(context.Background(), srv.Client(), srv.URL)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Remote", out[0].Title)
}

func TestFetchManifestNonSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := FetchManifest(context.Background(), srv.Client(), srv.URL)
	assert.Error(t, err)
}
