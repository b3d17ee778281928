package cpcli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

// Client queries the panel through the host's own cPanel & WHM binaries.
// It is the default backend when the tool runs on the server it reports on.
type Client struct {
	config *ClientConfig
}

// ClientConfig holds the binary paths and registry location
type ClientConfig struct {
	UAPIBin   string
	WHMAPIBin string
	UsersDir  string
}

// NewClient creates a new local panel client
func NewClient(config *ClientConfig) *Client {
	return &Client{config: config}
}

// GetName returns the backend name
func (c *Client) GetName() string {
	return "cpcli"
}

// GetDomainInventory retrieves one account's domain set by running
// uapi DomainInfo list_domains for that user. A single failed query is
// definitive; the client never retries.
func (c *Client) GetDomainInventory(ctx context.Context, account string) (*AccountDomains, error) {
	out, err := c.run(ctx, c.config.UAPIBin, "--output=json", "--user="+account, "DomainInfo", "list_domains")
	if err != nil {
		return nil, err
	}
	return decodeInventory(account, out)
}

// GetDomainOwner resolves the account owning a domain by running
// whmapi1 getdomainowner. An empty user with a nil error means the panel
// knows no owner.
func (c *Client) GetDomainOwner(ctx context.Context, domain string) (string, error) {
	out, err := c.run(ctx, c.config.WHMAPIBin, "--output=json", "getdomainowner", "domain="+domain)
	if err != nil {
		return "", err
	}
	return decodeDomainOwner(out)
}

// ListAccounts enumerates the host's account registry directory. Each
// account is one plain file; anything else in the directory is ignored.
func (c *Client) ListAccounts(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(c.config.UsersDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read users directory %s: %w", c.config.UsersDir, err)
	}

	accounts := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		accounts = append(accounts, entry.Name())
	}

	logrus.Debugf("Found %d accounts in %s", len(accounts), c.config.UsersDir)
	return accounts, nil
}

// run executes a panel binary and captures its stdout
func (c *Client) run(ctx context.Context, bin string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, bin, args...)
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("%s exited with code %d: %s",
				bin, exitErr.ExitCode(), strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, fmt.Errorf("failed to run %s: %w", bin, err)
	}
	return out, nil
}

// decodeInventory parses uapi DomainInfo list_domains JSON output
func decodeInventory(account string, out []byte) (*AccountDomains, error) {
	var payload UAPIResponse
	if err := json.Unmarshal(out, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode uapi output for %s: %w", account, err)
	}

	return &AccountDomains{
		Account:       account,
		Status:        payload.Result.Status == 1,
		MainDomain:    payload.Result.Data.MainDomain,
		ParkedDomains: payload.Result.Data.ParkedDomains,
		AddonDomains:  payload.Result.Data.AddonDomains,
		SubDomains:    payload.Result.Data.SubDomains,
	}, nil
}

// decodeDomainOwner parses whmapi1 getdomainowner JSON output
func decodeDomainOwner(out []byte) (string, error) {
	var payload WHMAPIResponse
	if err := json.Unmarshal(out, &payload); err != nil {
		return "", fmt.Errorf("failed to decode whmapi1 output: %w", err)
	}

	if payload.Metadata.Result != 1 {
		return "", nil
	}

	return payload.Data.User, nil
}
