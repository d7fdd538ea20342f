package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Client locates the users API.
type Client struct {
	Protocol string `envconfig:"API_PROTOCOL" default:"http"`
	Host     string `envconfig:"API_HOST" default:"localhost"`
	Port     string `envconfig:"API_PORT" default:"8080"`
	BasePath string `envconfig:"API_BASE" default:"/api"`
}

// Server configures the users API server. When PORT is unset the server
// listens on API_PORT, the port clients are configured with.
type Server struct {
	Port        string   `envconfig:"PORT" default:"8080"`
	BasePath    string   `envconfig:"API_BASE" default:"/api"`
	Store       string   `envconfig:"USER_STORE" default:"postgres"`
	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"*"`
	LogLevel    string   `envconfig:"LOG_LEVEL" default:"info"`
	LogFile     string   `envconfig:"LOG_FILE"`
	DB
}

type DB struct {
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	Name     string `envconfig:"DB_NAME"`
}

// LoadEnvFiles seeds the environment from the given .env files. Missing files
// are skipped; variables already set are never overridden.
func LoadEnvFiles(files ...string) error {
	for _, f := range files {
		if f == "" {
			continue
		}
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

func LoadClient(envFiles ...string) (Client, error) {
	var c Client
	if err := LoadEnvFiles(envFiles...); err != nil {
		return c, err
	}
	if err := envconfig.Process("", &c); err != nil {
		return c, err
	}
	return c, c.Validate()
}

func LoadServer(envFiles ...string) (Server, error) {
	var s Server
	if err := LoadEnvFiles(envFiles...); err != nil {
		return s, err
	}
	if err := envconfig.Process("", &s); err != nil {
		return s, err
	}
	if _, ok := os.LookupEnv("PORT"); !ok {
		if p := os.Getenv("API_PORT"); p != "" {
			s.Port = p
		}
	}
	if _, err := strconv.ParseUint(s.Port, 10, 16); err != nil {
		return s, fmt.Errorf("PORT %q is not a port number", s.Port)
	}
	switch s.Store {
	case "postgres", "memory":
	default:
		return s, fmt.Errorf("USER_STORE must be postgres or memory, got %q", s.Store)
	}
	return s, nil
}

func LoadDB(envFiles ...string) (DB, error) {
	var d DB
	if err := LoadEnvFiles(envFiles...); err != nil {
		return d, err
	}
	err := envconfig.Process("", &d)
	return d, err
}

func (c Client) Validate() error {
	switch c.Protocol {
	case "http", "https":
	default:
		return fmt.Errorf("API_PROTOCOL must be http or https, got %q", c.Protocol)
	}
	if c.Host == "" {
		return errors.New("API_HOST is empty")
	}
	if _, err := strconv.ParseUint(c.Port, 10, 16); err != nil {
		return fmt.Errorf("API_PORT %q is not a port number", c.Port)
	}
	if c.BasePath != "" && !strings.HasPrefix(c.BasePath, "/") {
		return fmt.Errorf("API_BASE %q must start with /", c.BasePath)
	}
	return nil
}

// UsersURL is the collection endpoint: {protocol}://{host}:{port}{base}/users.
func (c Client) UsersURL() string {
	return fmt.Sprintf("%s://%s:%s%s/users", c.Protocol, c.Host, c.Port, strings.TrimSuffix(c.BasePath, "/"))
}

// DSN builds the Postgres connection string.
func (d DB) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Name,
	)
}
