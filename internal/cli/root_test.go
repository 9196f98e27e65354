package cli

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codex-k8s/jiratrack/internal/logging"
	"github.com/codex-k8s/jiratrack/internal/report"
)

func TestExecute_UnknownSortField(t *testing.T) {
	// Sort parsing happens before config or network, so no JIRA_* setup needed.
	err := Execute([]string{"-u", "alice", "-s", "priority"}, logging.NewLogger(io.Discard, logging.LevelError))
	require.Error(t, err)
	assert.ErrorIs(t, err, report.ErrUnknownSortField)
}

func TestExecute_RequiresUser(t *testing.T) {
	err := Execute([]string{}, logging.NewLogger(io.Discard, logging.LevelError))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--user")
}

func TestExecute_RejectsNonPositiveDays(t *testing.T) {
	err := Execute([]string{"-u", "alice", "-d", "0"}, logging.NewLogger(io.Discard, logging.LevelError))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--days")
}

func TestExecute_RejectsNonPositiveMaxResults(t *testing.T) {
	err := Execute([]string{"-u", "alice", "--max-results=0"}, logging.NewLogger(io.Discard, logging.LevelError))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--max-results")
}

// newJiraStub serves the three endpoints the pipeline touches: session check,
// assignee search and per-ticket comments.
func newJiraStub(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/rest/api/2/myself", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"name":"alice"}`)
	})
	mux.HandleFunc("/rest/api/2/search", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{
			"startAt": 0, "maxResults": 100, "total": 2,
			"issues": [
				{"key": "A-1", "fields": {"summary": "Fix bug", "status": {"name": "To Do"}}},
				{"key": "A-2", "fields": {"summary": "Add feature", "status": {"name": "Done"}}}
			]
		}`)
	})
	mux.HandleFunc("/rest/api/2/issue/A-1", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"key": "A-1", "fields": {"comment": {"comments": []}}}`)
	})
	mux.HandleFunc("/rest/api/2/issue/A-2", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"key": "A-2", "fields": {"comment": {"comments": [{"author": {"name": "alice"}, "body": "shipped"}]}}}`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func setJiraEnv(t *testing.T, serverURL string) {
	t.Helper()
	t.Setenv("JIRA_SERVER", serverURL)
	t.Setenv("JIRA_AUTH", "alice:t0ken")
	for _, key := range []string{"JIRA_CERT", "JIRA_INSECURE", "JIRA_TIMEOUT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestRootCommand_EndToEnd(t *testing.T) {
	srv := newJiraStub(t)
	setJiraEnv(t, srv.URL)

	opts := &Options{
		Days:        defaultDays,
		MaxResults:  defaultMaxResults,
		SortBy:      "ticket",
		Concurrency: defaultConcurrency,
	}
	cmd := newRootCommand(opts, logging.NewLogger(io.Discard, logging.LevelError))
	cmd.SetArgs([]string{"-u", "alice", "-d", "7", "-s", "status", "--no-color"})

	var buf strings.Builder
	cmd.SetOut(&buf)
	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "Ticket  Summary      Status  Interacted")
	assert.Contains(t, out, "A-2     Add feature  Done    Yes")
	assert.Contains(t, out, "A-1     Fix bug      To Do   No")
	assert.Contains(t, out, "User alice worked on 2 tickets in the last 7 days.")

	// Sorted by status: "Done" sorts before "To Do".
	assert.Less(t, strings.Index(out, "A-2"), strings.Index(out, "A-1"))
}

func TestRootCommand_EmptyReport(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/rest/api/2/myself", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"name":"alice"}`)
	})
	mux.HandleFunc("/rest/api/2/search", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"startAt": 0, "maxResults": 100, "total": 0, "issues": []}`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	setJiraEnv(t, srv.URL)

	opts := &Options{
		Days:        defaultDays,
		MaxResults:  defaultMaxResults,
		SortBy:      "ticket",
		Concurrency: defaultConcurrency,
	}
	cmd := newRootCommand(opts, logging.NewLogger(io.Discard, logging.LevelError))
	cmd.SetArgs([]string{"-u", "alice", "--no-color"})

	var buf strings.Builder
	cmd.SetOut(&buf)
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), "User alice worked on 0 tickets in the last 7 days.")
}
