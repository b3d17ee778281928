package report

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/listdomains/internal/panel"
)

func inventoryFixture(account string) *panel.DomainInventory {
	return &panel.DomainInventory{
		Account:       account,
		Status:        true,
		MainDomain:    account + ".com",
		ParkedDomains: []string{"park." + account + ".com"},
	}
}

func TestReporter_Run_RendersEachAccount(t *testing.T) {
	backend := panel.NewMockBackend()
	backend.Inventories["alice"] = inventoryFixture("alice")
	backend.Inventories["bob"] = inventoryFixture("bob")

	var buf bytes.Buffer
	reporter := NewReporter(backend, &buf)

	rendered, err := reporter.Run(context.Background(), []string{"alice", "bob"})
	require.NoError(t, err)
	assert.Equal(t, 2, rendered)

	out := buf.String()
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "park.alice.com")
	assert.Contains(t, out, "bob")
	assert.Contains(t, out, "park.bob.com")

	// Header and separator are emitted exactly once
	assert.Equal(t, 1, strings.Count(out, "Username"))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[1], "|--"))
}

func TestReporter_Run_SkipsFailedAccounts(t *testing.T) {
	backend := panel.NewMockBackend()
	backend.Inventories["alice"] = inventoryFixture("alice")
	backend.InventoryErr["bob"] = errors.New("connection refused")
	backend.Inventories["carol"] = inventoryFixture("carol")

	var buf bytes.Buffer
	reporter := NewReporter(backend, &buf)

	rendered, err := reporter.Run(context.Background(), []string{"alice", "bob", "carol"})
	require.NoError(t, err)
	assert.Equal(t, 2, rendered)

	out := buf.String()
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "carol")
	assert.NotContains(t, out, "bob")
}

func TestReporter_Run_SkipsAccountsWithoutInventory(t *testing.T) {
	backend := panel.NewMockBackend()
	backend.Inventories["alice"] = &panel.DomainInventory{
		Account: "alice",
		Status:  false,
	}
	backend.Inventories["bob"] = &panel.DomainInventory{
		Account: "bob",
		Status:  true,
	}

	var buf bytes.Buffer
	reporter := NewReporter(backend, &buf)

	rendered, err := reporter.Run(context.Background(), []string{"alice", "bob"})
	require.NoError(t, err)
	assert.Equal(t, 0, rendered)
	assert.Empty(t, buf.String())
}

func TestReporter_Run_NoSuccessesMeansNoHeader(t *testing.T) {
	backend := panel.NewMockBackend()
	backend.InventoryErr["alice"] = errors.New("connection refused")

	var buf bytes.Buffer
	reporter := NewReporter(backend, &buf)

	rendered, err := reporter.Run(context.Background(), []string{"alice", "ghost"})
	require.NoError(t, err)
	assert.Equal(t, 0, rendered)
	assert.Empty(t, buf.String())
}

func TestReporter_Run_EmptyTargetList(t *testing.T) {
	backend := panel.NewMockBackend()

	var buf bytes.Buffer
	reporter := NewReporter(backend, &buf)

	rendered, err := reporter.Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, rendered)
	assert.Empty(t, buf.String())
}

func TestReporter_Run_StopsWhenContextCanceled(t *testing.T) {
	backend := panel.NewMockBackend()
	backend.Inventories["alice"] = inventoryFixture("alice")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	reporter := NewReporter(backend, &buf)

	rendered, err := reporter.Run(ctx, []string{"alice"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 0, rendered)
	assert.Empty(t, buf.String())
}
