package report

import (
	"fmt"
	"io"
	"strings"
)

// Column widths are fixed. Long values overflow the visual grid rather
// than truncating or resizing the columns.
const (
	accountWidth = 25
	parkedWidth  = 40
	addonWidth   = 40
	subWidth     = 45
)

// TableWriter renders domain records as a fixed-width table
type TableWriter struct {
	w io.Writer
}

// NewTableWriter creates a table writer on the given output
func NewTableWriter(w io.Writer) *TableWriter {
	return &TableWriter{w: w}
}

// WriteHeader emits the column labels and separator line. The caller emits
// the header at most once, before the first row.
func (t *TableWriter) WriteHeader() {
	fmt.Fprintf(t.w, "| %*s | %*s | %*s | %*s |\n",
		accountWidth, "Username",
		parkedWidth, "Parked Domains",
		addonWidth, "Addon Domains",
		subWidth, "Sub-Domains")
	fmt.Fprintf(t.w, "|-%s-|-%s-|-%s-|-%s-|\n",
		strings.Repeat("-", accountWidth),
		strings.Repeat("-", parkedWidth),
		strings.Repeat("-", addonWidth),
		strings.Repeat("-", subWidth))
}

// WriteRow emits one record, left-justified into the fixed columns
func (t *TableWriter) WriteRow(record *DomainRecord) {
	fmt.Fprintf(t.w, "| %-*s | %-*s | %-*s | %-*s |\n",
		accountWidth, record.Account,
		parkedWidth, record.ParkedDomains,
		addonWidth, record.AddonDomains,
		subWidth, record.SubDomains)
}
