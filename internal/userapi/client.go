// Package userapi talks to the users REST API.
package userapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/sudo-init-do/sgu/internal/user"
)

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Method string
	URL    string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.URL, e.Code)
}

type Client struct {
	usersURL string
	http     *http.Client
	log      logrus.FieldLogger
}

type Option func(*Client)

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// New returns a client for the collection at usersURL, e.g.
// http://localhost:8080/api/users.
func New(usersURL string, opts ...Option) *Client {
	c := &Client{
		usersURL: strings.TrimSuffix(usersURL, "/"),
		http:     http.DefaultClient,
		log:      logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) List(ctx context.Context) ([]user.User, error) {
	var users []user.User
	if err := c.do(ctx, http.MethodGet, c.usersURL, nil, &users); err != nil {
		return nil, err
	}
	if users == nil {
		users = []user.User{}
	}
	return users, nil
}

func (c *Client) Create(ctx context.Context, f user.Fields) (user.User, error) {
	var u user.User
	err := c.do(ctx, http.MethodPost, c.usersURL, f, &u)
	return u, err
}

func (c *Client) Update(ctx context.Context, id string, f user.Fields) (user.User, error) {
	var u user.User
	err := c.do(ctx, http.MethodPut, c.itemURL(id), f, &u)
	return u, err
}

func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, c.itemURL(id), nil, nil)
}

func (c *Client) itemURL(id string) string {
	return c.usersURL + "/" + url.PathEscape(id)
}

// do sends body as JSON and decodes a non-empty response into out.
func (c *Client) do(ctx context.Context, method, target string, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	log := c.log.WithFields(logrus.Fields{"method": method, "url": target})
	log.Debug("sending request")

	resp, err := c.http.Do(req)
	if err != nil {
		log.WithError(err).Debug("request failed")
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	log.WithField("status", resp.StatusCode).Debug("received response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Method: method, URL: target, Code: resp.StatusCode, Body: string(data)}
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, target, err)
	}
	return nil
}
