// Package report turns fetched tickets into the rendered activity table.
package report

import (
	"context"
	"sync"

	"github.com/codex-k8s/jiratrack/internal/jiraapi"
)

// CommentLister fetches the comments attached to a ticket.
type CommentLister interface {
	Comments(ctx context.Context, key string) ([]jiraapi.Comment, error)
}

// Row is one line of the activity table. The first three fields carry the
// ticket's key, summary and status verbatim; Interacted is exactly "Yes" or
// "No". Color is applied at render time, never here.
type Row struct {
	Ticket     string
	Summary    string
	Status     string
	Interacted string
}

// BuildRows maps every ticket to a Row, marking whether user authored any of
// its comments. Comment fetches run on a pool of workers goroutines; results
// land by index, so row order always matches ticket order regardless of pool
// scheduling. Any fetch error fails the whole build.
func BuildRows(ctx context.Context, lister CommentLister, tickets []jiraapi.Ticket, user string, workers int) ([]Row, error) {
	if workers < 1 {
		workers = 1
	}

	rows := make([]Row, len(tickets))
	errs := make([]error, len(tickets))

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i, t := range tickets {
		i, t := i, t
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			comments, err := lister.Comments(ctx, t.Key)
			if err != nil {
				errs[i] = err
				return
			}
			rows[i] = Row{
				Ticket:     t.Key,
				Summary:    t.Summary,
				Status:     t.Status,
				Interacted: interacted(comments, user),
			}
		}()
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return rows, nil
}

// interacted reports "Yes" when user authored at least one comment. Authors
// are matched by exact, case-sensitive identifier equality.
func interacted(comments []jiraapi.Comment, user string) string {
	for _, c := range comments {
		if c.Author == user {
			return "Yes"
		}
	}
	return "No"
}
