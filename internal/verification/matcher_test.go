package verification

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pharmasync/pharmasync/internal/shared"
)

type fakeRegistry struct {
	records []RegistryRecord
	scans   atomic.Int64
}

func (f *fakeRegistry) ListRecords(context.Context) ([]RegistryRecord, error) {
	f.scans.Add(1)
	out := make([]RegistryRecord, len(f.records))
	copy(out, f.records)
	return out, nil
}

func sampleRegistry() *fakeRegistry {
	return &fakeRegistry{records: []RegistryRecord{
		{
			ID:          "r1",
			ProductID:   "BIO123456",
			BatchNumber: "BTH2024001",
			Name:        "Biogesic",
			IsAuthentic: true,
		},
		{
			ID:          "r2",
			ProductID:   "NEO789012",
			BatchNumber: "BTH2024002",
			Name:        "Neozep",
			IsAuthentic: false,
		},
	}}
}

func TestVerifyMatchesProductID(t *testing.T) {
	m := NewMatcher(sampleRegistry(), 0)

	verdict, err := m.Verify(context.Background(), "BIO123456")
	require.NoError(t, err)
	require.Equal(t, OutcomeAuthentic, verdict.Outcome)
	require.NotNil(t, verdict.Result)
	require.Equal(t, "BIO123456", verdict.Result.ProductID)
	require.False(t, verdict.Result.VerificationDate.IsZero())
}

func TestVerifyMatchesBatchNumber(t *testing.T) {
	m := NewMatcher(sampleRegistry(), 0)

	verdict, err := m.Verify(context.Background(), "BTH2024001")
	require.NoError(t, err)
	require.Equal(t, OutcomeAuthentic, verdict.Outcome)
	require.Equal(t, "Biogesic", verdict.Result.Name)
}

func TestVerifyCounterfeitIsMatchedNotMissing(t *testing.T) {
	m := NewMatcher(sampleRegistry(), 0)

	verdict, err := m.Verify(context.Background(), "NEO789012")
	require.NoError(t, err)
	require.Equal(t, OutcomeCounterfeit, verdict.Outcome)
	require.NotNil(t, verdict.Result)
	require.False(t, verdict.Result.IsAuthentic)
}

func TestVerifyNotFoundCarriesQuery(t *testing.T) {
	m := NewMatcher(sampleRegistry(), 0)

	verdict, err := m.Verify(context.Background(), "  XYZ000000 ")
	require.NoError(t, err)
	require.Equal(t, OutcomeNotFound, verdict.Outcome)
	require.Nil(t, verdict.Result)
	require.Equal(t, "XYZ000000", verdict.Query)
}

func TestVerifyEmptyQuerySkipsRegistry(t *testing.T) {
	registry := sampleRegistry()
	m := NewMatcher(registry, 0)

	for _, query := range []string{"", "   ", "\t\n"} {
		_, err := m.Verify(context.Background(), query)
		require.ErrorIs(t, err, shared.ErrEmptyQuery)
	}
	require.Zero(t, registry.scans.Load())
}

func TestVerifyFirstMatchWinsInRegistryOrder(t *testing.T) {
	registry := &fakeRegistry{records: []RegistryRecord{
		{ID: "dup1", ProductID: "DUP000001", Name: "First", IsAuthentic: true},
		{ID: "dup2", ProductID: "DUP000001", Name: "Second", IsAuthentic: false},
	}}
	m := NewMatcher(registry, 0)

	verdict, err := m.Verify(context.Background(), "DUP000001")
	require.NoError(t, err)
	require.Equal(t, "First", verdict.Result.Name)
	require.Equal(t, OutcomeAuthentic, verdict.Outcome)
}

func TestVerifyLatestQueryWins(t *testing.T) {
	m := NewMatcher(sampleRegistry(), 40*time.Millisecond)

	var (
		wg       sync.WaitGroup
		errA     error
		verdictB Verdict
		errB     error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, errA = m.Verify(context.Background(), "BIO123456")
	}()

	time.Sleep(10 * time.Millisecond)
	verdictB, errB = m.Verify(context.Background(), "NEO789012")
	wg.Wait()

	require.ErrorIs(t, errA, ErrSuperseded)
	require.NoError(t, errB)
	require.Equal(t, OutcomeCounterfeit, verdictB.Outcome)
}

func TestVerifyIdenticalQueriesShareOneLookup(t *testing.T) {
	registry := sampleRegistry()
	m := NewMatcher(registry, 40*time.Millisecond)

	var wg sync.WaitGroup
	var superseded, resolved atomic.Int64
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := m.Verify(context.Background(), "BIO123456")
			if err == nil {
				resolved.Add(1)
			} else if err == ErrSuperseded {
				superseded.Add(1)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, int64(1), registry.scans.Load())
	require.Equal(t, int64(1), resolved.Load())
	require.Equal(t, int64(1), superseded.Load())
}

func TestVerifyCancellation(t *testing.T) {
	m := NewMatcher(sampleRegistry(), time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := m.Verify(ctx, "BIO123456")
		done <- err
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()
	require.ErrorIs(t, <-done, context.Canceled)
}
