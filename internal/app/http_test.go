package app

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ykvlv/coach-bot/internal/scheduler"
)

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

type fakeRunner struct{ ran []string }

func (f *fakeRunner) RunNow(_ context.Context, name string) ([]scheduler.Outcome, error) {
	f.ran = append(f.ran, name)
	if name != scheduler.JobMorning && name != scheduler.JobEvening {
		return nil, scheduler.ErrUnknownJob
	}
	return []scheduler.Outcome{{ChatID: 1}, {ChatID: 2, DeliveryErr: errors.New("blocked")}}, nil
}

func do(t *testing.T, h http.Handler, method, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthAndReadiness(t *testing.T) {
	h := newHTTPHandler(fakePinger{}, &fakeRunner{}, "", zap.NewNop())
	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/healthz", "").Code)
	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/readyz", "").Code)

	h = newHTTPHandler(fakePinger{err: errors.New("closed")}, &fakeRunner{}, "", zap.NewNop())
	assert.Equal(t, http.StatusServiceUnavailable, do(t, h, http.MethodGet, "/readyz", "").Code)
}

func TestJobsEndpoint_DisabledWithoutToken(t *testing.T) {
	runner := &fakeRunner{}
	h := newHTTPHandler(fakePinger{}, runner, "", zap.NewNop())

	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodPost, "/jobs/morning", "").Code)
	assert.Empty(t, runner.ran)
}

func TestJobsEndpoint(t *testing.T) {
	runner := &fakeRunner{}
	h := newHTTPHandler(fakePinger{}, runner, "s3cret", zap.NewNop())

	assert.Equal(t, http.StatusUnauthorized, do(t, h, http.MethodPost, "/jobs/morning", "wrong").Code)
	assert.Empty(t, runner.ran)

	rec := do(t, h, http.MethodPost, "/jobs/evening", "s3cret")
	require.Equal(t, http.StatusOK, rec.Code)
	var res jobResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.Equal(t, jobResult{Job: "evening", Users: 2, Failed: 1}, res)

	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodPost, "/jobs/noon", "s3cret").Code)
}
