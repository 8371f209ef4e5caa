package documents

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pharmasync/pharmasync/internal/platform/memstore"
	"github.com/pharmasync/pharmasync/internal/shared"
)

type fixedWarn int

func (f fixedWarn) ExpiryWarnDays() int { return int(f) }

var testNow = time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC)

func newTestService() *Service {
	return NewService(memstore.NewCollection[Document](), fixedWarn(90), nil, func() time.Time { return testNow })
}

func mustCreate(t *testing.T, svc *Service, doc Document) Document {
	t.Helper()
	created, err := svc.Create(context.Background(), doc)
	require.NoError(t, err)
	return created
}

func datePtr(y int, m time.Month, d int) *time.Time {
	dt := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &dt
}

func TestCreateStartsPending(t *testing.T) {
	svc := newTestService()

	doc := mustCreate(t, svc, Document{Name: "FDA License 2024", Type: TypeLicense, Category: "Regulatory"})
	require.Equal(t, StatusPending, doc.Status)
	require.False(t, doc.Reviewed)
	require.Equal(t, testNow, doc.UploadDate)
}

func TestReviewDerivesStatusFromExpiry(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	current := mustCreate(t, svc, Document{Name: "GMP Certificate", Type: TypeCertificate, ExpiryDate: datePtr(2026, time.February, 1)})
	expired := mustCreate(t, svc, Document{Name: "FDA License 2023", Type: TypeLicense, ExpiryDate: datePtr(2024, time.December, 31)})
	undated := mustCreate(t, svc, Document{Name: "Quality Control SOP", Type: TypeSOP})

	doc, err := svc.Review(ctx, current.ID)
	require.NoError(t, err)
	require.Equal(t, StatusActive, doc.Status)

	doc, err = svc.Review(ctx, expired.ID)
	require.NoError(t, err)
	require.Equal(t, StatusExpired, doc.Status)

	doc, err = svc.Review(ctx, undated.ID)
	require.NoError(t, err)
	require.Equal(t, StatusActive, doc.Status)
}

func TestListFilters(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	mustCreate(t, svc, Document{Name: "FDA License 2024", Type: TypeLicense, Category: "Regulatory"})
	mustCreate(t, svc, Document{Name: "GMP Certificate", Type: TypeCertificate, Category: "Compliance"})
	mustCreate(t, svc, Document{Name: "Quality Control SOP", Type: TypeSOP, Category: "Operations"})

	docs, err := svc.List(ctx, Filter{Type: "License"})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	require.Equal(t, "FDA License 2024", docs[0].Name)

	docs, err = svc.List(ctx, Filter{Query: "gmp"})
	require.NoError(t, err)
	require.Len(t, docs, 1)

	docs, err = svc.List(ctx, Filter{Type: shared.FilterAll, Category: shared.FilterAll})
	require.NoError(t, err)
	require.Len(t, docs, 3)
}

func TestExpiringSoonUsesWarnWindow(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	soon := mustCreate(t, svc, Document{Name: "Import Permit", Type: TypeLicense, ExpiryDate: datePtr(2025, time.July, 1)})
	far := mustCreate(t, svc, Document{Name: "GMP Certificate", Type: TypeCertificate, ExpiryDate: datePtr(2026, time.June, 1)})

	_, err := svc.Review(ctx, soon.ID)
	require.NoError(t, err)
	_, err = svc.Review(ctx, far.ID)
	require.NoError(t, err)

	docs, err := svc.ExpiringSoon(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	require.Equal(t, "Import Permit", docs[0].Name)
}

func TestParseInput(t *testing.T) {
	doc, errs := ParseInput(Input{Name: "FDA License", Type: "License", Category: "Regulatory", ExpiryDate: "2026-12-31"})
	require.Empty(t, errs)
	require.NotNil(t, doc.ExpiryDate)
	require.True(t, doc.Type.Valid())

	_, errs = ParseInput(Input{Name: "FDA License", Type: "License", Category: "Regulatory", ExpiryDate: "soon"})
	require.Contains(t, errs, "ExpiryDate")

	doc, errs = ParseInput(Input{Name: "SOP", Type: "SOP", Category: "Operations"})
	require.Empty(t, errs)
	require.Nil(t, doc.ExpiryDate)
}
