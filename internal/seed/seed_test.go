package seed

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pharmasync/pharmasync/internal/auth"
	"github.com/pharmasync/pharmasync/internal/documents"
	"github.com/pharmasync/pharmasync/internal/inventory"
	"github.com/pharmasync/pharmasync/internal/platform/memstore"
	"github.com/pharmasync/pharmasync/internal/reports"
	"github.com/pharmasync/pharmasync/internal/staff"
	"github.com/pharmasync/pharmasync/internal/verification"
)

func TestLoad(t *testing.T) {
	stores := Stores{
		Inventory: memstore.NewCollection[inventory.Item](),
		Documents: memstore.NewCollection[documents.Document](),
		Reports:   memstore.NewCollection[reports.Report](),
		Staff:     memstore.NewCollection[staff.Member](),
		Registry:  memstore.NewCollection[verification.RegistryRecord](),
		Auth:      auth.NewService(memstore.NewCollection[auth.User]()),
	}
	ctx := context.Background()

	require.NoError(t, Load(ctx, slog.New(slog.NewTextHandler(io.Discard, nil)), stores))

	require.Equal(t, 1, stores.Inventory.Len())
	require.Equal(t, 3, stores.Documents.Len())
	require.Equal(t, 3, stores.Reports.Len())
	require.Equal(t, 2, stores.Staff.Len())
	require.Equal(t, 2, stores.Registry.Len())

	var counterfeit bool
	for _, record := range stores.Registry.List() {
		if record.ProductID == "NEO789012" {
			counterfeit = !record.IsAuthentic
		}
	}
	require.True(t, counterfeit)

	_, err := stores.Auth.Authenticate(ctx, "john.doe@unilab.com", "pharmasync")
	require.NoError(t, err)
}

func TestInitialSettings(t *testing.T) {
	initial := InitialSettings()
	require.Equal(t, "Unilab", initial.Company.Name)
	require.Equal(t, 100, initial.System.StockAlertThreshold)
	require.Equal(t, 90, initial.System.ExpiryAlertDays)
}
