package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadClientDefaults(t *testing.T) {
	for _, k := range []string{"API_PROTOCOL", "API_HOST", "API_PORT", "API_BASE"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	c, err := LoadClient()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/api/users", c.UsersURL())
}

func TestLoadClientFromEnv(t *testing.T) {
	t.Setenv("API_PROTOCOL", "https")
	t.Setenv("API_HOST", "users.example.com")
	t.Setenv("API_PORT", "8443")
	t.Setenv("API_BASE", "/v1/")

	c, err := LoadClient()
	require.NoError(t, err)
	assert.Equal(t, "https://users.example.com:8443/v1/users", c.UsersURL())
}

func TestLoadClientFromDotEnv(t *testing.T) {
	for _, k := range []string{"API_PROTOCOL", "API_HOST", "API_PORT", "API_BASE"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	// godotenv writes straight into the process environment.
	t.Cleanup(func() {
		os.Unsetenv("API_HOST")
		os.Unsetenv("API_PORT")
	})

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("API_HOST=10.0.0.7\nAPI_PORT=9090\n"), 0644))

	c, err := LoadClient(path, filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "http://10.0.0.7:9090/api/users", c.UsersURL())
}

func TestClientValidate(t *testing.T) {
	ok := Client{Protocol: "http", Host: "localhost", Port: "8080", BasePath: "/api"}
	assert.NoError(t, ok.Validate())

	bad := ok
	bad.Protocol = "ftp"
	assert.Error(t, bad.Validate())

	bad = ok
	bad.Port = "http"
	assert.Error(t, bad.Validate())

	bad = ok
	bad.BasePath = "api"
	assert.Error(t, bad.Validate())
}

func TestLoadServerRejectsUnknownStore(t *testing.T) {
	t.Setenv("USER_STORE", "mongo")
	_, err := LoadServer()
	assert.Error(t, err)
}

func TestLoadServerPort(t *testing.T) {
	for _, k := range []string{"PORT", "API_PORT", "USER_STORE"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	s, err := LoadServer()
	require.NoError(t, err)
	assert.Equal(t, "8080", s.Port)

	t.Setenv("API_PORT", "9090")
	s, err = LoadServer()
	require.NoError(t, err)
	assert.Equal(t, "9090", s.Port)

	t.Setenv("PORT", "7070")
	s, err = LoadServer()
	require.NoError(t, err)
	assert.Equal(t, "7070", s.Port)
}

func TestDSN(t *testing.T) {
	d := DB{User: "sgu", Password: "secret", Host: "db", Port: "5432", Name: "users"}
	assert.Equal(t, "postgres://sgu:secret@db:5432/users", d.DSN())
}
