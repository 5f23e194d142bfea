package app

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/bissquit/campus-registry/internal/config"
	"github.com/bissquit/campus-registry/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const openAPISpecPath = "../../api/openapi/openapi.yaml"

func newTestApp(t *testing.T) *testutil.Client {
	t.Helper()

	cfg := config.Default()
	cfg.Storage.Driver = config.StorageMemory
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = "0"
	cfg.Server.MetricsPort = "0"
	cfg.Log.Level = "error"
	cfg.Log.Format = "text"
	cfg.Auth.BcryptCost = 4
	require.NoError(t, cfg.Validate())

	application, err := New(&cfg)
	require.NoError(t, err)

	server := httptest.NewServer(application.Router())
	t.Cleanup(server.Close)

	validator, err := testutil.LoadOpenAPIValidator(openAPISpecPath)
	require.NoError(t, err)

	return testutil.NewClientWithValidator(t, server.URL, validator)
}

func TestApp_RegisterFlow(t *testing.T) {
	client := newTestApp(t)
	email := testutil.RandomEmail()
	payload := map[string]string{
		"first_name": "Abhinash",
		"last_name":  "Sharma",
		"email":      email,
		"password":   "longenough",
		"role":       "student",
	}

	resp, err := client.POST("/api/v1/auth/register", payload)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var result struct {
		Data struct {
			ID    string `json:"id"`
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"data"`
	}
	testutil.DecodeJSON(t, resp, &result)
	assert.NotEmpty(t, result.Data.ID)
	assert.Equal(t, email, result.Data.Email)
	assert.Equal(t, "student", result.Data.Role)

	resp, err = client.POST("/api/v1/auth/register", payload)
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestApp_RegisterValidation(t *testing.T) {
	client := newTestApp(t)

	resp, err := client.POST("/api/v1/auth/register", map[string]string{
		"email": "not-an-email",
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := testutil.ReadBody(t, resp)
	assert.Contains(t, body, "Invalid email address")
}

func TestApp_FormSubmission(t *testing.T) {
	client := newTestApp(t)

	resp, err := client.PostForm("/api/v1/auth/register", url.Values{
		"first_name": {"Abhinash"},
		"last_name":  {"Sharma"},
		"email":      {testutil.RandomEmail()},
		"password":   {"longenough"},
		"role":       {"alumni"},
	})
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))

	resp, err = client.GET("/auth/error?error=account_exists")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, testutil.ReadBody(t, resp), "already exists")
}

func TestApp_OperationalEndpoints(t *testing.T) {
	client := newTestApp(t)

	for _, path := range []string{"/healthz", "/readyz"} {
		resp, err := client.GET(path)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
		assert.Equal(t, "OK", testutil.ReadBody(t, resp))
	}

	resp, err := client.GET("/version")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var info map[string]string
	testutil.DecodeJSON(t, resp, &info)
	assert.Contains(t, info, "version")
}
