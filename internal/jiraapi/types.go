// Package jiraapi provides minimal Jira models decoupled from the client library.
package jiraapi

// Ticket is one issue returned by an assignee search.
type Ticket struct {
	// Key is the issue key, e.g. "PROJ-123".
	Key string
	// Summary is the one-line issue title.
	Summary string
	// Status is the workflow status name, e.g. "In Progress".
	Status string
}

// Comment is a single comment attached to a ticket.
type Comment struct {
	// Author identifies the comment author: the Jira username on
	// Server/Data Center instances, the account ID on Cloud.
	Author string
	// Body is the raw comment text.
	Body string
}
