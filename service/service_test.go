package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum-optimism/infra/op-teststats/reporting"
	"github.com/ethereum-optimism/infra/op-teststats/types"
	"github.com/ethereum/go-ethereum/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReports struct {
	reports map[string]string
	err     error
	records []reporting.Record
}

func (f *fakeReports) Generate(name string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.reports[name], nil
}

func (f *fakeReports) Records() []reporting.Record {
	return f.records
}

func newTestServer(src ReportSource) *Server {
	return NewServer("127.0.0.1:0", src, log.NewLogger(log.DiscardHandler()))
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Origin", "http://dashboard.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	rec := get(t, newTestServer(&fakeReports{}).Handler(), "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestTextReports(t *testing.T) {
	src := &fakeReports{reports: map[string]string{
		reporting.ReportFailures: "SUMMARY OF FAILURES",
		reporting.ReportRetry:    "",
	}}
	h := newTestServer(src).Handler()

	rec := get(t, h, "/reports/failures")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "SUMMARY OF FAILURES", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")

	rec = get(t, h, "/reports/retry")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = get(t, h, "/reports/unknown")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReportError(t *testing.T) {
	h := newTestServer(&fakeReports{err: errors.New("no such run: 3")}).Handler()
	rec := get(t, h, "/reports/failure_stats")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "no such run: 3")
}

func TestJSONReport(t *testing.T) {
	src := &fakeReports{records: []reporting.Record{
		reporting.NewRecord(&types.TaskRecord{Check: types.Check{Name: "a"}}, 0),
	}}
	rec := get(t, newTestServer(src).Handler(), "/reports/json")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "a", decoded[0]["testname"])
	assert.Nil(t, decoded[0]["system"])
}

func TestStartAndShutdown(t *testing.T) {
	s := newTestServer(&fakeReports{})
	require.NoError(t, s.Start())
	defer func() {
		require.NoError(t, s.Shutdown(context.Background()))
	}()

	resp, err := http.Get("http://" + s.Addr() + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "OK", string(body))

	resp, err = http.Get("http://" + s.Addr() + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestShutdownWithoutStart(t *testing.T) {
	assert.NoError(t, newTestServer(&fakeReports{}).Shutdown(context.Background()))
}
