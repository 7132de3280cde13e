package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/andrasnagy-data/campsite/internal/shared/config"
)

func newTestRouter(t *testing.T) (http.Handler, *Service) {
	t.Helper()
	svc := NewService(newFakeRepo(), &config.Config{
		SecretKey:      "test-secret",
		AccessTokenTTL: time.Hour,
	})
	return NewRouter(svc), svc
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func doForm(t *testing.T, h http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRegisterEndpoint(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/register", `{"username":"alice","password":"pw123"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "User registered successfully", resp["message"])
}

func TestRegisterEndpoint_DuplicateUsername(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/register", `{"username":"alice","password":"pw123"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/register", `{"username":"alice","password":"other"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "Username already exists")
}

func TestRegisterEndpoint_MissingFields(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/register", `{"username":"alice"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginEndpoint(t *testing.T) {
	t.Parallel()

	router, svc := newTestRouter(t)
	require.NoError(t, svc.Register(context.Background(), "alice", "pw123"))

	rec := doForm(t, router, "/token", url.Values{
		"username": {"alice"},
		"password": {"pw123"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "bearer", resp.TokenType)
	require.NotEmpty(t, resp.AccessToken)

	subject, err := svc.VerifyToken(context.Background(), resp.AccessToken)
	require.NoError(t, err)
	require.Equal(t, "alice", subject)
}

func TestLoginEndpoint_NoCredentialLeak(t *testing.T) {
	t.Parallel()

	router, svc := newTestRouter(t)
	require.NoError(t, svc.Register(context.Background(), "alice", "pw123"))

	wrongPw := doForm(t, router, "/token", url.Values{
		"username": {"alice"},
		"password": {"nope"},
	})
	unknownUser := doForm(t, router, "/token", url.Values{
		"username": {"bob"},
		"password": {"pw123"},
	})

	require.Equal(t, http.StatusUnauthorized, wrongPw.Code)
	require.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	require.Equal(t, wrongPw.Body.String(), unknownUser.Body.String())
}
