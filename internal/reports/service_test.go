package reports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pharmasync/pharmasync/internal/platform/memstore"
	"github.com/pharmasync/pharmasync/internal/shared"
)

var testNow = time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC)

func newTestService() *Service {
	return NewService(memstore.NewCollection[Report](), nil, func() time.Time { return testNow })
}

func mustCreate(t *testing.T, svc *Service, report Report) Report {
	t.Helper()
	created, err := svc.Create(context.Background(), report)
	require.NoError(t, err)
	return created
}

func TestCreateForcesPending(t *testing.T) {
	svc := newTestService()

	created := mustCreate(t, svc, Report{
		ProductName: "Biogesic 500mg",
		ReportType:  TypeCounterfeit,
		Status:      StatusResolved,
		Location:    "Quezon City",
		ReportedBy:  "Maria Santos",
	})
	require.Equal(t, StatusPending, created.Status)
	require.Equal(t, testNow, created.ReportDate)
	require.Equal(t, testNow, created.UpdatedAt)
	require.NotEmpty(t, created.ID)
}

func TestUpdateStatusStampsUpdatedAt(t *testing.T) {
	clock := testNow
	svc := NewService(memstore.NewCollection[Report](), nil, func() time.Time { return clock })
	ctx := context.Background()

	created := mustCreate(t, svc, Report{ProductName: "Neozep Forte", ReportType: TypeCounterfeit})

	clock = clock.Add(2 * time.Hour)
	updated, err := svc.UpdateStatus(ctx, created.ID, StatusInvestigating)
	require.NoError(t, err)
	require.Equal(t, StatusInvestigating, updated.Status)
	require.Equal(t, clock, updated.UpdatedAt)
	require.Equal(t, created.ReportDate, updated.ReportDate)
}

func TestUpdateStatusRejectsUnknownState(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created := mustCreate(t, svc, Report{ProductName: "Alaxan FR", ReportType: TypeQuality})

	_, err := svc.UpdateStatus(ctx, created.ID, Status("Archived"))
	require.ErrorIs(t, err, shared.ErrInvalidTransition)

	current, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, StatusPending, current.Status)
}

func TestUpdateStatusMissingReport(t *testing.T) {
	svc := newTestService()

	_, err := svc.UpdateStatus(context.Background(), "missing", StatusResolved)
	require.ErrorIs(t, err, shared.ErrNotFound)
}

func TestListFilters(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	mustCreate(t, svc, Report{ProductName: "Biogesic 500mg", ReportType: TypeCounterfeit, Location: "Quezon City", ReportedBy: "Maria Santos"})
	mustCreate(t, svc, Report{ProductName: "Decolgen", ReportType: TypeQuality, Location: "Makati", ReportedBy: "Juan Cruz"})
	investigated := mustCreate(t, svc, Report{ProductName: "Neozep Forte", ReportType: TypePackaging, Location: "Cebu", ReportedBy: "Ana Reyes"})

	_, err := svc.UpdateStatus(ctx, investigated.ID, StatusInvestigating)
	require.NoError(t, err)

	reports, err := svc.List(ctx, Filter{Query: "biogesic"})
	require.NoError(t, err)
	require.Len(t, reports, 1)
	require.Equal(t, "Biogesic 500mg", reports[0].ProductName)

	reports, err = svc.List(ctx, Filter{Query: "maria"})
	require.NoError(t, err)
	require.Len(t, reports, 1)

	reports, err = svc.List(ctx, Filter{Type: "Quality Issue"})
	require.NoError(t, err)
	require.Len(t, reports, 1)
	require.Equal(t, "Decolgen", reports[0].ProductName)

	reports, err = svc.List(ctx, Filter{Status: "Investigating"})
	require.NoError(t, err)
	require.Len(t, reports, 1)
	require.Equal(t, "Neozep Forte", reports[0].ProductName)

	reports, err = svc.List(ctx, Filter{Type: shared.FilterAll, Status: shared.FilterAll})
	require.NoError(t, err)
	require.Len(t, reports, 3)
}

func TestDelete(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created := mustCreate(t, svc, Report{ProductName: "Biogesic 500mg", ReportType: TypeCounterfeit})

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err := svc.Get(ctx, created.ID)
	require.ErrorIs(t, err, shared.ErrNotFound)
	require.ErrorIs(t, svc.Delete(ctx, created.ID), memstore.ErrNotFound)
}
