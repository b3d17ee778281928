package whmapi

// Metadata is the envelope metadata carried by every WHM JSON-API v1 response
type Metadata struct {
	Command string `json:"command"`
	Reason  string `json:"reason"`
	Result  int    `json:"result"`
	Version int    `json:"version"`
}

// ListAcctsResponse represents the listaccts response
type ListAcctsResponse struct {
	Data     ListAcctsData `json:"data"`
	Metadata Metadata      `json:"metadata"`
}

// ListAcctsData contains the account entries
type ListAcctsData struct {
	Accounts []AccountEntry `json:"acct"`
}

// AccountEntry contains one account as listaccts reports it
type AccountEntry struct {
	User      string `json:"user"`
	Domain    string `json:"domain"`
	Owner     string `json:"owner"`
	Suspended int    `json:"suspended"`
}

// DomainOwnerResponse represents the getdomainowner response
type DomainOwnerResponse struct {
	Data     DomainOwnerData `json:"data"`
	Metadata Metadata        `json:"metadata"`
}

// DomainOwnerData contains the owning user of a domain
type DomainOwnerData struct {
	User string `json:"user"`
}

// UAPIPassthroughResponse represents a cPanel UAPI call proxied through the
// WHM uapi_cpanel endpoint; the UAPI envelope rides inside data.uapi
type UAPIPassthroughResponse struct {
	Data     UAPIPassthroughData `json:"data"`
	Metadata Metadata            `json:"metadata"`
}

// UAPIPassthroughData wraps the proxied UAPI result
type UAPIPassthroughData struct {
	UAPI UAPIResult `json:"uapi"`
}

// UAPIResult is the standard UAPI response envelope
type UAPIResult struct {
	Status   int         `json:"status"`
	Errors   []string    `json:"errors"`
	Messages []string    `json:"messages"`
	Data     DomainsData `json:"data"`
}

// DomainsData is the DomainInfo list_domains payload
type DomainsData struct {
	MainDomain    string           `json:"main_domain"`
	ParkedDomains []string         `json:"parked_domains"`
	AddonDomains  []string         `json:"addon_domains"`
	SubDomains    []SubDomainEntry `json:"sub_domains"`
}

// SubDomainEntry is one sub-domain object from the panel
type SubDomainEntry struct {
	Domain       string `json:"domain"`
	RootDomain   string `json:"rootdomain"`
	DocumentRoot string `json:"documentroot"`
}

// AccountDomains is the decoded domain inventory for one account
type AccountDomains struct {
	Account       string
	Status        bool
	MainDomain    string
	ParkedDomains []string
	AddonDomains  []string
	SubDomains    []SubDomainEntry
}

// toAccountDomains flattens the passthrough envelope for one account
func (r *UAPIPassthroughResponse) toAccountDomains(account string) *AccountDomains {
	result := r.Data.UAPI
	return &AccountDomains{
		Account:       account,
		Status:        result.Status == 1,
		MainDomain:    result.Data.MainDomain,
		ParkedDomains: result.Data.ParkedDomains,
		AddonDomains:  result.Data.AddonDomains,
		SubDomains:    result.Data.SubDomains,
	}
}
