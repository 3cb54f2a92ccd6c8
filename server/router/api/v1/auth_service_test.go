package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/hamzemohamed32/codementor/internal/profile"
	storetest "github.com/hamzemohamed32/codementor/store/test"
)

func newTestService(t *testing.T) (*APIV1Service, *echo.Echo) {
	t.Helper()
	ctx := context.Background()
	ts := storetest.NewTestingStore(ctx, t)
	service := NewAPIV1Service("test-secret", &profile.Profile{Mode: "dev"}, ts, nil)
	e := echo.New()
	service.RegisterRoutes(e)
	return service, e
}

func doJSON(e *echo.Echo, method, target, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestSignupAndLogin(t *testing.T) {
	_, e := newTestService(t)

	rec := doJSON(e, http.MethodPost, "/api/v1/auth/signup", "", `{"username":"amel","password":"hunter22"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var signup authResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &signup))
	require.NotEmpty(t, signup.AccessToken)
	require.Equal(t, "amel", signup.User.Username)

	// Duplicate username is rejected.
	rec = doJSON(e, http.MethodPost, "/api/v1/auth/signup", "", `{"username":"amel","password":"hunter22"}`)
	require.Equal(t, http.StatusConflict, rec.Code)

	// Short password is rejected.
	rec = doJSON(e, http.MethodPost, "/api/v1/auth/signup", "", `{"username":"brook","password":"abc"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/v1/auth/login", "", `{"username":"amel","password":"hunter22"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/v1/auth/login", "", `{"username":"amel","password":"wrong"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware(t *testing.T) {
	service, e := newTestService(t)

	rec := doJSON(e, http.MethodGet, "/api/v1/projects", "", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/v1/projects", "not-a-token", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/v1/auth/signup", "", `{"username":"carol","password":"hunter22"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var signup authResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &signup))

	rec = doJSON(e, http.MethodGet, "/api/v1/projects", signup.AccessToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, "[]", rec.Body.String())

	// A token signed with a different secret never validates.
	userID, err := service.parseToken(signup.AccessToken)
	require.NoError(t, err)
	require.Positive(t, userID)

	other := &APIV1Service{Secret: "other-secret"}
	_, err = other.parseToken(signup.AccessToken)
	require.Error(t, err)
}
