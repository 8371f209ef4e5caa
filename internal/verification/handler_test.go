package verification

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) chi.Router {
	t.Helper()
	svc := seedService(t, nil)
	handler := NewHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), svc)
	r := chi.NewRouter()
	handler.MountRoutes(r)
	return r
}

func postJSON(t *testing.T, r http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandleVerifyAuthentic(t *testing.T) {
	r := newTestRouter(t)

	rec := postJSON(t, r, "/verify", `{"query":"BIO123456"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var verdict Verdict
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &verdict))
	require.Equal(t, OutcomeAuthentic, verdict.Outcome)
	require.Equal(t, "BIO123456", verdict.Result.ProductID)
}

func TestHandleVerifyNotFoundIsAnOutcomeNotAnError(t *testing.T) {
	r := newTestRouter(t)

	rec := postJSON(t, r, "/verify", `{"query":"XYZ000000"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"outcome":"not_found"`)
	require.Contains(t, rec.Body.String(), `"query":"XYZ000000"`)
}

func TestHandleVerifyEmptyQuery(t *testing.T) {
	r := newTestRouter(t)

	rec := postJSON(t, r, "/verify", `{"query":"   "}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "Empty Query")
}

func TestRegistryEndpoints(t *testing.T) {
	r := newTestRouter(t)

	rec := postJSON(t, r, "/registry/", `{
		"productId": "ALA345678",
		"batchNumber": "BTH2024003",
		"name": "Alaxan",
		"manufacturer": "Unilab",
		"manufacturingDate": "2024-03-01",
		"expiryDate": "2026-03-01",
		"isAuthentic": true
	}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, r, "/registry/", `{"productId": "ALA345678"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Contains(t, rec.Body.String(), "BatchNumber")

	req := httptest.NewRequest(http.MethodGet, "/registry/", nil)
	list := httptest.NewRecorder()
	r.ServeHTTP(list, req)
	require.Equal(t, http.StatusOK, list.Code)
	require.Contains(t, list.Body.String(), "ALA345678")
}
