// Package config loads jiratrack settings from the environment and optional files.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Jira holds the connection settings for the Jira server.
type Jira struct {
	// ServerURL is the base URL of the Jira instance.
	ServerURL string `env:"JIRA_SERVER,notEmpty"`
	// Auth is the basic-auth credential pair in user:secret form.
	Auth string `env:"JIRA_AUTH,notEmpty"`
	// CertPath optionally points at a PEM CA bundle used to verify the
	// server certificate. Empty means the system trust store.
	CertPath string `env:"JIRA_CERT"`
	// Insecure disables TLS certificate verification entirely.
	Insecure bool `env:"JIRA_INSECURE" envDefault:"false"`
	// Timeout bounds every HTTP request to the server.
	Timeout time.Duration `env:"JIRA_TIMEOUT" envDefault:"30s"`
}

// Load reads the optional .env file, parses the Jira settings from the
// process environment and validates them. Variables already present in the
// environment take precedence over the file.
func Load(envFile string) (*Jira, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("load env file %q: %w", envFile, err)
		}
	}

	var cfg Jira
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Jira) validate() error {
	u, err := url.Parse(c.ServerURL)
	if err != nil || !u.IsAbs() || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("JIRA_SERVER %q is not an absolute http(s) URL", c.ServerURL)
	}
	if !strings.Contains(c.Auth, ":") {
		return fmt.Errorf("JIRA_AUTH must be a user:secret pair")
	}
	return nil
}

// Credentials splits Auth into its username and secret parts at the first colon.
func (c *Jira) Credentials() (user, secret string) {
	user, secret, _ = strings.Cut(c.Auth, ":")
	return user, secret
}
