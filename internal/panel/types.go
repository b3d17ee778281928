package panel

import (
	"context"
	"time"
)

// InventoryProvider fetches one account's domain inventory from the control panel
type InventoryProvider interface {
	// GetName returns the backend name
	GetName() string

	// GetDomainInventory retrieves the domain set of a single account.
	// Providers only transport and decode; Status and MainDomain are passed
	// through as the panel reported them for the caller to judge.
	GetDomainInventory(ctx context.Context, account string) (*DomainInventory, error)
}

// OwnershipResolver maps a domain name to the account that owns it
type OwnershipResolver interface {
	// GetDomainOwner returns the owning account for a domain. An empty
	// string with a nil error means the panel knows no owner; errors are
	// transport or decode failures only.
	GetDomainOwner(ctx context.Context, domain string) (string, error)
}

// AccountRegistry enumerates the accounts present on the host
type AccountRegistry interface {
	// ListAccounts returns every account the host knows, unfiltered, in the
	// registry's own enumeration order.
	ListAccounts(ctx context.Context) ([]string, error)
}

// Backend bundles the panel capabilities a report run needs
type Backend interface {
	InventoryProvider
	OwnershipResolver
	AccountRegistry
}

// DomainInventory represents one account's domain set as the panel reports it
type DomainInventory struct {
	Account       string       `json:"account"`
	Status        bool         `json:"status"`
	MainDomain    string       `json:"main_domain"`
	ParkedDomains []string     `json:"parked_domains"`
	AddonDomains  []string     `json:"addon_domains"`
	SubDomains    []*SubDomain `json:"sub_domains"`
}

// SubDomain represents a single sub-domain entry. The panel returns richer
// objects than a bare name; only Domain is consumed by the report.
type SubDomain struct {
	Domain       string `json:"domain"`
	RootDomain   string `json:"rootdomain,omitempty"`
	DocumentRoot string `json:"documentroot,omitempty"`
}

// BackendConfig holds configuration for a panel backend
type BackendConfig struct {
	APIURL      string
	APIUser     string
	APIToken    string
	APITimeout  time.Duration
	InsecureTLS bool
	UAPIBin     string
	WHMAPIBin   string
	UsersDir    string
}
