package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loginRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestLoginIssuesUsableToken(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(loginRequest(`{"email": "attorney@firm.example", "password": "s3cret"}`))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp TokenResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "bearer", resp.TokenType)
	require.NotEmpty(t, resp.AccessToken)

	// The token from login must open a protected endpoint.
	list := httptest.NewRequest(http.MethodGet, "/api/v1/leads", nil)
	list.Header.Set("Authorization", "Bearer "+resp.AccessToken)
	rec = env.do(list)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoginFailuresShareOneShape(t *testing.T) {
	env := newTestEnv(t)

	wrongPassword := env.do(loginRequest(`{"email": "attorney@firm.example", "password": "nope"}`))
	unknownEmail := env.do(loginRequest(`{"email": "nobody@firm.example", "password": "s3cret"}`))

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.JSONEq(t, wrongPassword.Body.String(), unknownEmail.Body.String(),
		"wrong password and unknown email must be indistinguishable")
}

func TestLoginRejectsMalformedBody(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(loginRequest(`{"email": `))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
