package panel

import (
	"context"
	"fmt"
)

// MockBackend is a map-driven Backend implementation for testing
type MockBackend struct {
	Inventories map[string]*DomainInventory
	Owners      map[string]string
	Accounts    []string

	// Injectable failures
	InventoryErr map[string]error
	OwnerErr     error
	ListErr      error
}

// NewMockBackend creates an empty mock backend
func NewMockBackend() *MockBackend {
	return &MockBackend{
		Inventories:  make(map[string]*DomainInventory),
		Owners:       make(map[string]string),
		InventoryErr: make(map[string]error),
	}
}

// GetName returns the backend name
func (m *MockBackend) GetName() string {
	return "mock"
}

// GetDomainInventory returns the canned inventory for an account. Accounts
// without an entry behave like an unknown user on a real panel.
func (m *MockBackend) GetDomainInventory(_ context.Context, account string) (*DomainInventory, error) {
	if err, ok := m.InventoryErr[account]; ok {
		return nil, err
	}

	inv, ok := m.Inventories[account]
	if !ok {
		return nil, fmt.Errorf("account %s not found", account)
	}
	return inv, nil
}

// GetDomainOwner returns the canned owner for a domain; unknown domains
// resolve to no owner
func (m *MockBackend) GetDomainOwner(_ context.Context, domain string) (string, error) {
	if m.OwnerErr != nil {
		return "", m.OwnerErr
	}
	return m.Owners[domain], nil
}

// ListAccounts returns the canned account list as-is
func (m *MockBackend) ListAccounts(_ context.Context) ([]string, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Accounts, nil
}
