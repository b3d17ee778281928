package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableWriter_WriteHeader(t *testing.T) {
	var buf bytes.Buffer
	w := NewTableWriter(&buf)
	w.WriteHeader()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)

	header, separator := lines[0], lines[1]

	// Labels are right-justified into the fixed widths
	wantHeader := "| " + pad("Username", accountWidth) +
		" | " + pad("Parked Domains", parkedWidth) +
		" | " + pad("Addon Domains", addonWidth) +
		" | " + pad("Sub-Domains", subWidth) + " |"
	assert.Equal(t, wantHeader, header)

	wantSeparator := "|-" + strings.Repeat("-", accountWidth) +
		"-|-" + strings.Repeat("-", parkedWidth) +
		"-|-" + strings.Repeat("-", addonWidth) +
		"-|-" + strings.Repeat("-", subWidth) + "-|"
	assert.Equal(t, wantSeparator, separator)

	assert.Equal(t, len(header), len(separator))
}

func TestTableWriter_WriteRow(t *testing.T) {
	var buf bytes.Buffer
	w := NewTableWriter(&buf)
	w.WriteRow(&DomainRecord{
		Account:       "alice",
		ParkedDomains: "a.com",
		AddonDomains:  "N/A",
		SubDomains:    "sub1.alice.com,sub2.alice.com",
	})

	// Values are left-justified into the fixed widths
	want := "| alice" + strings.Repeat(" ", 20) +
		" | a.com" + strings.Repeat(" ", 35) +
		" | N/A" + strings.Repeat(" ", 37) +
		" | sub1.alice.com,sub2.alice.com" + strings.Repeat(" ", 16) +
		" |\n"
	assert.Equal(t, want, buf.String())
}

func TestTableWriter_LongValuesOverflow(t *testing.T) {
	var buf bytes.Buffer
	w := NewTableWriter(&buf)

	long := strings.Repeat("x", parkedWidth+10) + ".example.com"
	w.WriteRow(&DomainRecord{
		Account:       "alice",
		ParkedDomains: long,
		AddonDomains:  "N/A",
		SubDomains:    "N/A",
	})

	// Long values spill past the grid; they are never truncated
	assert.Contains(t, buf.String(), long)
}

func TestTableWriter_OutputIsDeterministic(t *testing.T) {
	render := func() string {
		var buf bytes.Buffer
		w := NewTableWriter(&buf)
		w.WriteHeader()
		w.WriteRow(&DomainRecord{
			Account:       "bob",
			ParkedDomains: "park.bob.org",
			AddonDomains:  "shop.example.net",
			SubDomains:    "N/A",
		})
		return buf.String()
	}

	assert.Equal(t, render(), render())
}

// pad right-justifies a label the way the header does
func pad(label string, width int) string {
	return strings.Repeat(" ", width-len(label)) + label
}
