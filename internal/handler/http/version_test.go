package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkms-go/diary-keeper/internal/service"
	"github.com/pkms-go/diary-keeper/models"
)

func newVersionHandler(build models.AppBuildInfo) *Handler {
	return newTestHandler(&service.Services{AppInfoService: &fakeAppInfoService{build: build}})
}

func TestGetServerVersion_WritesVersion(t *testing.T) {
	h := newVersionHandler(models.NewAppBuildInfo("1.2.3", "", ""))

	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	rec := httptest.NewRecorder()

	h.getServerVersion(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1.2.3", rec.Body.String())
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
}

func TestGetBuildInfo(t *testing.T) {
	h := newVersionHandler(models.NewAppBuildInfo("v2.0.0-beta+build.42", "2026-03-14", "deadbeef"))

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/version/build", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body buildInfoResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, buildInfoResponse{Version: "v2.0.0-beta+build.42", Date: "2026-03-14", Commit: "deadbeef"}, body)
}
