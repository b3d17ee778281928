package panel

import (
	"context"
	"errors"

	"github.com/listdomains/internal/panel/cpcli"
	"github.com/listdomains/internal/panel/whmapi"
)

var (
	// ErrBackendNotSupported is returned for an unknown backend name
	ErrBackendNotSupported = errors.New("panel backend not supported")
)

// Backend names accepted by NewBackend
const (
	BackendCLI = "cli"
	BackendAPI = "api"
)

// CPCLIAdapter adapts cpcli.Client to the Backend interface
type CPCLIAdapter struct {
	client *cpcli.Client
}

func (a *CPCLIAdapter) GetName() string {
	return a.client.GetName()
}

func (a *CPCLIAdapter) GetDomainInventory(ctx context.Context, account string) (*DomainInventory, error) {
	inv, err := a.client.GetDomainInventory(ctx, account)
	if err != nil {
		return nil, err
	}

	subs := make([]*SubDomain, len(inv.SubDomains))
	for i, sub := range inv.SubDomains {
		subs[i] = &SubDomain{
			Domain:       sub.Domain,
			RootDomain:   sub.RootDomain,
			DocumentRoot: sub.DocumentRoot,
		}
	}

	return &DomainInventory{
		Account:       inv.Account,
		Status:        inv.Status,
		MainDomain:    inv.MainDomain,
		ParkedDomains: inv.ParkedDomains,
		AddonDomains:  inv.AddonDomains,
		SubDomains:    subs,
	}, nil
}

func (a *CPCLIAdapter) GetDomainOwner(ctx context.Context, domain string) (string, error) {
	return a.client.GetDomainOwner(ctx, domain)
}

func (a *CPCLIAdapter) ListAccounts(ctx context.Context) ([]string, error) {
	return a.client.ListAccounts(ctx)
}

// WHMAPIAdapter adapts whmapi.Client to the Backend interface
type WHMAPIAdapter struct {
	client *whmapi.Client
}

func (a *WHMAPIAdapter) GetName() string {
	return a.client.GetName()
}

func (a *WHMAPIAdapter) GetDomainInventory(ctx context.Context, account string) (*DomainInventory, error) {
	inv, err := a.client.GetDomainInventory(ctx, account)
	if err != nil {
		return nil, err
	}

	subs := make([]*SubDomain, len(inv.SubDomains))
	for i, sub := range inv.SubDomains {
		subs[i] = &SubDomain{
			Domain:       sub.Domain,
			RootDomain:   sub.RootDomain,
			DocumentRoot: sub.DocumentRoot,
		}
	}

	return &DomainInventory{
		Account:       inv.Account,
		Status:        inv.Status,
		MainDomain:    inv.MainDomain,
		ParkedDomains: inv.ParkedDomains,
		AddonDomains:  inv.AddonDomains,
		SubDomains:    subs,
	}, nil
}

func (a *WHMAPIAdapter) GetDomainOwner(ctx context.Context, domain string) (string, error) {
	return a.client.GetDomainOwner(ctx, domain)
}

func (a *WHMAPIAdapter) ListAccounts(ctx context.Context) ([]string, error) {
	return a.client.ListAccounts(ctx)
}

// NewBackend builds the panel backend selected by name
func NewBackend(name string, config *BackendConfig) (Backend, error) {
	switch name {
	case BackendCLI:
		return &CPCLIAdapter{client: cpcli.NewClient(&cpcli.ClientConfig{
			UAPIBin:   config.UAPIBin,
			WHMAPIBin: config.WHMAPIBin,
			UsersDir:  config.UsersDir,
		})}, nil
	case BackendAPI:
		return &WHMAPIAdapter{client: whmapi.NewClient(&whmapi.ClientConfig{
			BaseURL:     config.APIURL,
			Username:    config.APIUser,
			Token:       config.APIToken,
			Timeout:     config.APITimeout,
			InsecureTLS: config.InsecureTLS,
		})}, nil
	default:
		return nil, ErrBackendNotSupported
	}
}
