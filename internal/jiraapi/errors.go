package jiraapi

import "errors"

// Error classes for failures against the Jira server. Callers distinguish
// them with errors.Is; none of them is retried anywhere in the pipeline.
var (
	// ErrAuthentication covers rejected credentials and unreachable servers.
	ErrAuthentication = errors.New("jira: authentication failed")
	// ErrQuery covers malformed JQL and other search failures.
	ErrQuery = errors.New("jira: search failed")
	// ErrTimeout covers requests the server did not answer in time.
	ErrTimeout = errors.New("jira: request timed out")
	// ErrFetch covers comment retrieval failures.
	ErrFetch = errors.New("jira: comment fetch failed")
)
