package whmapi

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

// Client represents a WHM JSON-API client
type Client struct {
	httpClient *resty.Client
	config     *ClientConfig
}

// ClientConfig holds WHM JSON-API client configuration
type ClientConfig struct {
	BaseURL     string
	Username    string
	Token       string
	Timeout     time.Duration
	InsecureTLS bool
}

// NewClient creates a new WHM JSON-API client
func NewClient(config *ClientConfig) *Client {
	client := resty.New()
	client.SetTimeout(config.Timeout)
	client.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: config.InsecureTLS})

	// Set default headers
	client.SetHeaders(map[string]string{
		"Accept":     "application/json",
		"User-Agent": "listdomains/1.0",
	})

	// WHM API token authentication
	if config.Token != "" {
		client.SetHeader("Authorization", fmt.Sprintf("whm %s:%s", config.Username, config.Token))
	}

	return &Client{
		httpClient: client,
		config:     config,
	}
}

// GetName returns the backend name
func (c *Client) GetName() string {
	return "whmapi"
}

// GetDomainInventory retrieves one account's domain set through the WHM
// uapi_cpanel passthrough to DomainInfo list_domains. A single failed query
// is definitive; the client never retries.
func (c *Client) GetDomainInventory(ctx context.Context, account string) (*AccountDomains, error) {
	params := url.Values{}
	params.Set("api.version", "1")
	params.Set("cpanel_jsonapi_user", account)
	params.Set("cpanel_jsonapi_apiversion", "3")
	params.Set("cpanel_jsonapi_module", "DomainInfo")
	params.Set("cpanel_jsonapi_func", "list_domains")

	resp, err := c.httpClient.R().
		SetContext(ctx).
		Get(fmt.Sprintf("%s/json-api/uapi_cpanel?%s", c.config.BaseURL, params.Encode()))

	if err != nil {
		return nil, fmt.Errorf("failed to query domain inventory for %s: %w", account, err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("WHM API returned status %d for account %s", resp.StatusCode(), account)
	}

	var payload UAPIPassthroughResponse
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, fmt.Errorf("failed to decode domain inventory for %s: %w", account, err)
	}

	return payload.toAccountDomains(account), nil
}

// GetDomainOwner resolves the account owning a domain via getdomainowner.
// An empty user with a nil error means the panel knows no owner.
func (c *Client) GetDomainOwner(ctx context.Context, domain string) (string, error) {
	params := url.Values{}
	params.Set("api.version", "1")
	params.Set("domain", domain)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		Get(fmt.Sprintf("%s/json-api/getdomainowner?%s", c.config.BaseURL, params.Encode()))

	if err != nil {
		return "", fmt.Errorf("failed to query owner of %s: %w", domain, err)
	}

	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("WHM API returned status %d for domain %s", resp.StatusCode(), domain)
	}

	var payload DomainOwnerResponse
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return "", fmt.Errorf("failed to decode owner of %s: %w", domain, err)
	}

	if payload.Metadata.Result != 1 {
		return "", nil
	}

	return payload.Data.User, nil
}

// ListAccounts enumerates every account known to WHM via listaccts
func (c *Client) ListAccounts(ctx context.Context) ([]string, error) {
	params := url.Values{}
	params.Set("api.version", "1")
	params.Set("want", "user")

	resp, err := c.httpClient.R().
		SetContext(ctx).
		Get(fmt.Sprintf("%s/json-api/listaccts?%s", c.config.BaseURL, params.Encode()))

	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("WHM API returned status %d for listaccts", resp.StatusCode())
	}

	var payload ListAcctsResponse
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, fmt.Errorf("failed to decode listaccts response: %w", err)
	}

	if payload.Metadata.Result != 1 {
		return nil, fmt.Errorf("listaccts failed: %s", payload.Metadata.Reason)
	}

	accounts := make([]string, 0, len(payload.Data.Accounts))
	for _, acct := range payload.Data.Accounts {
		accounts = append(accounts, acct.User)
	}

	logrus.Debugf("Retrieved %d accounts from WHM API", len(accounts))
	return accounts, nil
}
