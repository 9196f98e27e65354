package jiraapi

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"

	jira "github.com/andygrunwald/go-jira"

	"github.com/codex-k8s/jiratrack/internal/config"
	"github.com/codex-k8s/jiratrack/internal/logging"
)

// Client is an authenticated session against one Jira server.
type Client struct {
	logger *slog.Logger
	jira   *jira.Client
}

// NewClient builds an HTTP transport from cfg, wraps it with basic auth and
// verifies the session with a current-user lookup. An unreachable server and
// rejected credentials both surface as ErrAuthentication.
func NewClient(ctx context.Context, logger *slog.Logger, cfg *config.Jira) (*Client, error) {
	tlsCfg := &tls.Config{}
	if cfg.CertPath != "" {
		pem, err := os.ReadFile(cfg.CertPath)
		if err != nil {
			return nil, fmt.Errorf("read JIRA_CERT: %w", err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("JIRA_CERT %q contains no usable certificates", cfg.CertPath)
		}
		tlsCfg.RootCAs = pool
	}
	if cfg.Insecure {
		tlsCfg.InsecureSkipVerify = true
		logger.Warn("TLS certificate verification disabled (JIRA_INSECURE)")
	}

	var rt http.RoundTripper = &http.Transport{TLSClientConfig: tlsCfg}
	if logger.Enabled(ctx, slog.LevelDebug) {
		rt = &traceTransport{next: rt, w: logging.NewWriter(logger)}
	}

	user, secret := cfg.Credentials()
	auth := &jira.BasicAuthTransport{
		Username:  user,
		Password:  secret,
		Transport: rt,
	}
	httpClient := auth.Client()
	httpClient.Timeout = cfg.Timeout

	jc, err := jira.NewClient(httpClient, cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthentication, err)
	}

	self, resp, err := jc.User.GetSelfWithContext(ctx)
	if err != nil {
		return nil, classifyResponse(ErrAuthentication, resp, err)
	}
	logger.Debug("jira session established", "server", cfg.ServerURL, "user", self.Name)

	return &Client{logger: logger, jira: jc}, nil
}

// SearchAssigned returns the tickets assigned to user and updated within the
// last days days, capped at max results. Zero matches is a valid result.
func (c *Client) SearchAssigned(ctx context.Context, user string, days, max int) ([]Ticket, error) {
	jql := fmt.Sprintf("assignee = %q AND updated >= -%dd ORDER BY key", user, days)
	c.logger.Debug("searching tickets", "jql", jql, "max", max)

	issues, resp, err := c.jira.Issue.SearchWithContext(ctx, jql, &jira.SearchOptions{
		MaxResults: max,
		Fields:     []string{"summary", "status"},
	})
	if err != nil {
		return nil, classifyResponse(ErrQuery, resp, err)
	}

	tickets := make([]Ticket, 0, len(issues))
	for _, issue := range issues {
		t := Ticket{Key: issue.Key}
		if issue.Fields != nil {
			t.Summary = issue.Fields.Summary
			if issue.Fields.Status != nil {
				t.Status = issue.Fields.Status.Name
			}
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}

// Comments fetches the full comment sequence of the ticket with the given key.
func (c *Client) Comments(ctx context.Context, key string) ([]Comment, error) {
	issue, resp, err := c.jira.Issue.GetWithContext(ctx, key, &jira.GetQueryOptions{Fields: "comment"})
	if err != nil {
		return nil, fmt.Errorf("ticket %s: %w", key, classifyResponse(ErrFetch, resp, err))
	}
	if issue.Fields == nil || issue.Fields.Comments == nil {
		return nil, nil
	}

	out := make([]Comment, 0, len(issue.Fields.Comments.Comments))
	for _, cm := range issue.Fields.Comments.Comments {
		author := cm.Author.Name
		if author == "" {
			author = cm.Author.AccountID
		}
		out = append(out, Comment{Author: author, Body: cm.Body})
	}
	return out, nil
}

// classifyResponse maps a failed request onto one of the package error
// classes. HTTP status wins over the transport error; timeouts always map to
// ErrTimeout so the caller can tell a slow server from a broken query.
func classifyResponse(class error, resp *jira.Response, err error) error {
	if resp != nil {
		switch resp.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: server returned %s", ErrAuthentication, resp.Status)
		case http.StatusBadRequest:
			return fmt.Errorf("%w: server returned %s: %v", ErrQuery, resp.Status, err)
		}
	}
	var nerr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &nerr) && nerr.Timeout()) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return fmt.Errorf("%w: %v", class, err)
}
