package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/register", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Alice", body["name"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"user":{"id":"u-1","name":"Alice","email":"a@example.com"},"token":"tok"}`))
	}))
	defer srv.Close()

	c := New(srv.URL + "/api")
	res, err := c.Register(context.Background(), "Alice", "a@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "u-1", res.User.ID)
	assert.Equal(t, "tok", res.Token)
}

func TestLogin_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"invalid email or password"}`))
	}))
	defer srv.Close()

	c := New(srv.URL + "/api")
	_, err := c.Login(context.Background(), "a@example.com", "wrong")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "invalid email or password", apiErr.Message)
}

func TestListQRs_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"qr-1","content":"hello","image":"img"}]`))
	}))
	defer srv.Close()

	c := New(srv.URL + "/api")
	list, err := c.ListQRs(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "qr-1", list[0].ID)
}

func TestDeleteQR_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/qr/qr-404", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"not found"}`))
	}))
	defer srv.Close()

	c := New(srv.URL + "/api")
	err := c.DeleteQR(context.Background(), "tok", "qr-404")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestForgotPassword_Message(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"check your email"}`))
	}))
	defer srv.Close()

	c := New(srv.URL + "/api")
	msg, err := c.ForgotPassword(context.Background(), "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, "check your email", msg)
}
