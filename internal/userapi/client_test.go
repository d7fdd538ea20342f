package userapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sudo-init-do/sgu/internal/user"
)

func newAPI(t *testing.T, store user.Store) *httptest.Server {
	t.Helper()
	logger, _ := test.NewNullLogger()
	e := echo.New()
	e.Validator = user.RequestValidator{}
	user.NewHandler(store, logger).Register(e.Group("/api"))
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return srv
}

func TestClientRoundTrip(t *testing.T) {
	srv := newAPI(t, user.NewMemoryStore())
	c := New(srv.URL + "/api/users")
	ctx := context.Background()

	users, err := c.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)

	created, err := c.Create(ctx, user.Fields{Name: "Ana", Email: "a@x.com", Phone: "123"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	updated, err := c.Update(ctx, created.ID, user.Fields{Name: "Ana", Email: "ana@x.com", Phone: "123"})
	require.NoError(t, err)
	assert.Equal(t, "ana@x.com", updated.Email)

	users, err = c.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []user.User{updated}, users)

	require.NoError(t, c.Delete(ctx, created.ID))

	users, err = c.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestClientStatusError(t *testing.T) {
	srv := newAPI(t, user.NewMemoryStore())
	c := New(srv.URL + "/api/users")

	err := c.Delete(context.Background(), "missing")

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusNotFound, se.Code)
	assert.Equal(t, http.MethodDelete, se.Method)
}

func TestClientNullBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("null"))
	}))
	defer srv.Close()

	users, err := New(srv.URL).List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []user.User{}, users)
}

func TestClientMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>oops</html>"))
	}))
	defer srv.Close()

	_, err := New(srv.URL).List(context.Background())
	assert.Error(t, err)
}

func TestClientEscapesID(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	require.NoError(t, New(srv.URL+"/users/").Delete(context.Background(), "a/b"))
	assert.Equal(t, "/users/a%2Fb", gotPath)
}
