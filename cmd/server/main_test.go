package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ngramcorrector/internal/corpus"
	sc "ngramcorrector/internal/corrector"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	docs := []corpus.Document{corpus.NewDocument("1", "", "The big dog ran home. The big dog sat.")}
	bigrams, _ := sc.BuildBigramIndex(docs)
	trigrams, _ := sc.BuildTrigramTable(docs)
	srv := httptest.NewServer(newMux(sc.NewSpellCorrector(bigrams, trigrams)))
	t.Cleanup(srv.Close)
	return srv
}

func TestCorrectEndpoint(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Post(srv.URL+"/api/v1/correct", "application/json", strings.NewReader(`{"text":"The big doq"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var res sc.CorrectionResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal(t, "The big dog", res.Corrected)
	assert.Len(t, res.Replacements, 1)
}

func TestCorrectEndpoint_BadRequest(t *testing.T) {
	srv := testServer(t)

	for _, body := range []string{`{"text":"  "}`, `not json`} {
		resp, err := http.Post(srv.URL+"/api/v1/correct", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, body)
	}

	resp, err := http.Get(srv.URL + "/api/v1/correct")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCandidatesEndpoint(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Post(srv.URL+"/api/v1/candidates", "application/json", strings.NewReader(`{"text":"doq"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	var res struct {
		Candidates map[string][]string `json:"candidates"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal(t, []string{"dog"}, res.Candidates["doq"])
}

func TestHealthAndMetrics(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
