package report

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/listdomains/internal/panel"
)

func TestFetcher_Fetch(t *testing.T) {
	tests := []struct {
		name      string
		inventory *panel.DomainInventory
		fetchErr  error
		want      *DomainRecord
		wantErr   bool
		noData    bool
	}{
		{
			name: "inventory with every category populated",
			inventory: &panel.DomainInventory{
				Account:       "alice",
				Status:        true,
				MainDomain:    "alice.com",
				ParkedDomains: []string{"a.com", "b.com"},
				AddonDomains:  []string{"shop.example.net"},
				SubDomains: []*panel.SubDomain{
					{Domain: "sub1.alice.com", RootDomain: "alice.com", DocumentRoot: "/home/alice/sub1"},
					{Domain: "sub2.alice.com", RootDomain: "alice.com", DocumentRoot: "/home/alice/sub2"},
				},
			},
			want: &DomainRecord{
				Account:       "alice",
				ParkedDomains: "a.com,b.com",
				AddonDomains:  "shop.example.net",
				SubDomains:    "sub1.alice.com,sub2.alice.com",
			},
		},
		{
			name: "empty categories fall back to the N/A sentinel",
			inventory: &panel.DomainInventory{
				Account:    "bob",
				Status:     true,
				MainDomain: "bob.org",
			},
			want: &DomainRecord{
				Account:       "bob",
				ParkedDomains: "N/A",
				AddonDomains:  "N/A",
				SubDomains:    "N/A",
			},
		},
		{
			name: "only the sub-domain FQDN is rendered",
			inventory: &panel.DomainInventory{
				Account:    "carol",
				Status:     true,
				MainDomain: "carol.net",
				SubDomains: []*panel.SubDomain{
					{Domain: "dev.carol.net", RootDomain: "carol.net", DocumentRoot: "/home/carol/dev"},
				},
			},
			want: &DomainRecord{
				Account:       "carol",
				ParkedDomains: "N/A",
				AddonDomains:  "N/A",
				SubDomains:    "dev.carol.net",
			},
		},
		{
			name:     "provider transport failure",
			fetchErr: errors.New("connection refused"),
			wantErr:  true,
		},
		{
			name: "panel reports failure status",
			inventory: &panel.DomainInventory{
				Account:    "dave",
				Status:     false,
				MainDomain: "dave.com",
			},
			wantErr: true,
			noData:  true,
		},
		{
			name: "missing main domain",
			inventory: &panel.DomainInventory{
				Account: "erin",
				Status:  true,
			},
			wantErr: true,
			noData:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := panel.NewMockBackend()
			account := "missing"
			if tt.inventory != nil {
				account = tt.inventory.Account
				backend.Inventories[account] = tt.inventory
			}
			if tt.fetchErr != nil {
				backend.InventoryErr[account] = tt.fetchErr
			}

			fetcher := NewFetcher(backend)
			got, err := fetcher.Fetch(context.Background(), account)

			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, got)
				if tt.noData {
					assert.True(t, errors.Is(err, ErrNoInventory))
				} else {
					assert.False(t, errors.Is(err, ErrNoInventory))
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJoinDomains(t *testing.T) {
	assert.Equal(t, "N/A", joinDomains(nil))
	assert.Equal(t, "N/A", joinDomains([]string{}))
	assert.Equal(t, "a.com", joinDomains([]string{"a.com"}))
	assert.Equal(t, "a.com,b.com,c.com", joinDomains([]string{"a.com", "b.com", "c.com"}))
}
