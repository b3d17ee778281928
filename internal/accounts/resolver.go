package accounts

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/listdomains/internal/panel"
	"github.com/sirupsen/logrus"
)

var (
	// ErrNoOwner is returned when a domain has no resolvable owning account
	ErrNoOwner = errors.New("domain has no owner")
)

// TargetMode selects how the target account list is built
type TargetMode string

const (
	// ModeSingle reports one named account
	ModeSingle TargetMode = "single"
	// ModeList reports a comma-separated list of accounts
	ModeList TargetMode = "list"
	// ModeFile reports the accounts named in a file, one per line
	ModeFile TargetMode = "file"
	// ModeOwner reports the account owning a given domain
	ModeOwner TargetMode = "owner"
	// ModeAll reports every non-reserved account on the host
	ModeAll TargetMode = "all"
)

// TargetSpec is one resolution request: a mode and its argument
type TargetSpec struct {
	Mode TargetMode
	Arg  string
}

// reservedAccounts are pseudo-accounts the host registry may list but that
// never carry a domain inventory
var reservedAccounts = map[string]bool{
	"system": true,
	"nobody": true,
	"cpanel": true,
}

// Resolver turns a TargetSpec into the ordered list of accounts to report
type Resolver struct {
	owner    panel.OwnershipResolver
	registry panel.AccountRegistry
}

// NewResolver creates a new target resolver
func NewResolver(owner panel.OwnershipResolver, registry panel.AccountRegistry) *Resolver {
	return &Resolver{
		owner:    owner,
		registry: registry,
	}
}

// Resolve produces the target account list for a target spec. Order is
// always preserved and duplicates are never collapsed; the report renders
// targets exactly as requested.
func (r *Resolver) Resolve(ctx context.Context, spec TargetSpec) ([]string, error) {
	switch spec.Mode {
	case ModeSingle:
		return r.resolveSingle(spec.Arg)
	case ModeList:
		return r.resolveList(spec.Arg), nil
	case ModeFile:
		return r.resolveFile(spec.Arg)
	case ModeOwner:
		return r.resolveOwner(ctx, spec.Arg)
	case ModeAll:
		return r.resolveAll(ctx)
	default:
		return nil, fmt.Errorf("unknown target mode %q", spec.Mode)
	}
}

// resolveSingle returns the one named account. A leading dash means the
// token was an option the dispatcher did not recognize, not an account.
func (r *Resolver) resolveSingle(name string) ([]string, error) {
	if strings.HasPrefix(name, "-") {
		return nil, fmt.Errorf("unknown option: %s", name)
	}
	return []string{name}, nil
}

// resolveList splits a comma-separated account list, trimming whitespace
// and dropping empty entries
func (r *Resolver) resolveList(arg string) []string {
	parts := strings.Split(arg, ",")
	targets := make([]string, 0, len(parts))
	for _, part := range parts {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		targets = append(targets, name)
	}
	return targets
}

// resolveFile reads one account per line, trimming whitespace and skipping
// blank lines. The path must name a readable regular file.
func (r *Resolver) resolveFile(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read account file: %w", err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("account file %s is not a regular file", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read account file: %w", err)
	}
	defer f.Close()

	var targets []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		name := strings.TrimSpace(scanner.Text())
		if name == "" {
			continue
		}
		targets = append(targets, name)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read account file: %w", err)
	}

	return targets, nil
}

// resolveOwner asks the panel which account owns the domain
func (r *Resolver) resolveOwner(ctx context.Context, domain string) ([]string, error) {
	owner, err := r.owner.GetDomainOwner(ctx, domain)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve owner of %s: %w", domain, err)
	}
	if owner == "" {
		return nil, fmt.Errorf("%w: %s", ErrNoOwner, domain)
	}
	return []string{owner}, nil
}

// resolveAll enumerates the host registry and filters reserved accounts
func (r *Resolver) resolveAll(ctx context.Context) ([]string, error) {
	all, err := r.registry.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate accounts: %w", err)
	}

	targets := make([]string, 0, len(all))
	for _, name := range all {
		if reservedAccounts[name] {
			continue
		}
		targets = append(targets, name)
	}

	logrus.Debugf("Resolved %d of %d registry accounts", len(targets), len(all))
	return targets, nil
}
