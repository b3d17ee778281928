package report

import (
	"context"
	"io"

	"github.com/listdomains/internal/panel"
	"github.com/sirupsen/logrus"
)

// Reporter drives the fetcher over a target list and streams rows to the
// table as they arrive, so partial results survive a failure or an
// interrupt late in a long run.
type Reporter struct {
	fetcher       *Fetcher
	table         *TableWriter
	headerEmitted bool
}

// NewReporter creates a reporter writing its table to out
func NewReporter(provider panel.InventoryProvider, out io.Writer) *Reporter {
	return &Reporter{
		fetcher: NewFetcher(provider),
		table:   NewTableWriter(out),
	}
}

// Run fetches each target in order and renders every account that yields a
// record. A failed account is skipped silently and the run continues; the
// report must still cover every other account. Run returns the number of
// rows rendered, and the context error if the run was cut short.
func (r *Reporter) Run(ctx context.Context, targets []string) (int, error) {
	rendered := 0

	for _, account := range targets {
		if err := ctx.Err(); err != nil {
			return rendered, err
		}

		record, err := r.fetcher.Fetch(ctx, account)
		if err != nil {
			logrus.Debugf("Skipping account %s: %v", account, err)
			continue
		}

		if !r.headerEmitted {
			r.table.WriteHeader()
			r.headerEmitted = true
		}
		r.table.WriteRow(record)
		rendered++
	}

	return rendered, nil
}
