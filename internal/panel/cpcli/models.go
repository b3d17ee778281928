package cpcli

// UAPIResponse is the envelope uapi prints with --output=json
type UAPIResponse struct {
	Result UAPIResult `json:"result"`
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

// WHMAPIResponse is the envelope whmapi1 prints with --output=json
type WHMAPIResponse struct {
	Data     DomainOwnerData `json:"data"`
	Metadata Metadata        `json:"metadata"`
}

// Metadata is the whmapi1 response envelope metadata
type Metadata struct {
	Command string `json:"command"`
	Reason  string `json:"reason"`
	Result  int    `json:"result"`
	Version int    `json:"version"`
}

// DomainOwnerData contains the owning user of a domain
type DomainOwnerData struct {
	User string `json:"user"`
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
