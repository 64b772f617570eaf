package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felipesilva4/desafio-aiqfome/internal/user/domain"
	"github.com/felipesilva4/desafio-aiqfome/internal/user/repository"
	"github.com/felipesilva4/desafio-aiqfome/pkg/auth"
)

func setupUserRouter(t *testing.T) *mux.Router {
	t.Helper()
	auth.Configure("test-secret", time.Hour)

	router := mux.NewRouter()
	NewUserHandler(repository.NewInMemoryUserRepository()).RegisterRoutes(router)
	return router
}

func doJSON(router *mux.Router, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRegisterAndLogin(t *testing.T) {
	router := setupUserRouter(t)

	rec := doJSON(router, "POST", "/auth/register",
		`{"name": "Ana", "email": "ana@example.com", "password": "s3cr3t-pass"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var user domain.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, "ana@example.com", user.Email)
	// The password hash must never appear in responses
	assert.NotContains(t, rec.Body.String(), "password")

	// Duplicate email conflicts
	rec = doJSON(router, "POST", "/auth/register",
		`{"name": "Other", "email": "ana@example.com", "password": "another-pass"}`, "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Login with the right password
	rec = doJSON(router, "POST", "/auth/login",
		`{"email": "Ana@Example.com", "password": "s3cr3t-pass"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var loginResp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &loginResp))
	require.NotEmpty(t, loginResp.Token)

	// Wrong password is unauthorized
	rec = doJSON(router, "POST", "/auth/login",
		`{"email": "ana@example.com", "password": "wrong"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Unknown email gets the same answer as a wrong password
	rec = doJSON(router, "POST", "/auth/login",
		`{"email": "ghost@example.com", "password": "whatever"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegisterValidation(t *testing.T) {
	router := setupUserRouter(t)

	rec := doJSON(router, "POST", "/auth/register",
		`{"name": "Ana", "email": "ana@example.com", "password": "short"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(router, "POST", "/auth/register",
		`{"name": "", "email": "ana@example.com", "password": "s3cr3t-pass"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMeEndpoints(t *testing.T) {
	router := setupUserRouter(t)

	doJSON(router, "POST", "/auth/register",
		`{"name": "Ana", "email": "ana@example.com", "password": "s3cr3t-pass"}`, "")
	rec := doJSON(router, "POST", "/auth/login",
		`{"email": "ana@example.com", "password": "s3cr3t-pass"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var loginResp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &loginResp))
	token := loginResp.Token

	rec = doJSON(router, "GET", "/users/me", "{}", token)
	require.Equal(t, http.StatusOK, rec.Code)

	var me domain.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &me))
	assert.Equal(t, "ana@example.com", me.Email)

	rec = doJSON(router, "PUT", "/users/me", `{"name": "Ana Paula"}`, token)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &me))
	assert.Equal(t, "Ana Paula", me.Name)

	rec = doJSON(router, "DELETE", "/users/me", "{}", token)
	require.Equal(t, http.StatusOK, rec.Code)

	// The profile is gone even though the token is still formally valid
	rec = doJSON(router, "GET", "/users/me", "{}", token)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// No token at all is rejected
	rec = doJSON(router, "GET", "/users/me", "{}", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
