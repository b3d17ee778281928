package report

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/listdomains/internal/panel"
)

var (
	// ErrNoInventory is returned when an account's inventory query came back
	// without a usable domain set
	ErrNoInventory = errors.New("account has no domain inventory")
)

// naValue fills a rendered column whose category holds no domains
const naValue = "N/A"

// DomainRecord is one report line: an account and its three domain
// categories, each already joined into a single column value
type DomainRecord struct {
	Account       string
	ParkedDomains string
	AddonDomains  string
	SubDomains    string
}

// Fetcher builds DomainRecords from per-account panel queries
type Fetcher struct {
	provider panel.InventoryProvider
}

// NewFetcher creates a new fetcher
func NewFetcher(provider panel.InventoryProvider) *Fetcher {
	return &Fetcher{provider: provider}
}

// Fetch queries one account and normalizes the result. Every failure shape
// comes back as a plain error: provider failures, a false status flag, and
// a missing main domain all mean the same thing to the caller, no record
// for this account. There are no retries.
func (f *Fetcher) Fetch(ctx context.Context, account string) (*DomainRecord, error) {
	inv, err := f.provider.GetDomainInventory(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("inventory query failed for %s: %w", account, err)
	}

	if !inv.Status {
		return nil, fmt.Errorf("%w: %s: panel reported failure", ErrNoInventory, account)
	}
	if inv.MainDomain == "" {
		return nil, fmt.Errorf("%w: %s: no main domain", ErrNoInventory, account)
	}

	subs := make([]string, len(inv.SubDomains))
	for i, sub := range inv.SubDomains {
		subs[i] = sub.Domain
	}

	return &DomainRecord{
		Account:       account,
		ParkedDomains: joinDomains(inv.ParkedDomains),
		AddonDomains:  joinDomains(inv.AddonDomains),
		SubDomains:    joinDomains(subs),
	}, nil
}

// joinDomains collapses a domain list into one comma-separated column
// value, with no space after commas. Empty categories render as N/A so the
// column is never blank.
func joinDomains(domains []string) string {
	if len(domains) == 0 {
		return naValue
	}
	return strings.Join(domains, ",")
}
