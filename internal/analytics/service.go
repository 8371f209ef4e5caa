package analytics

import (
	"context"

	"github.com/pharmasync/pharmasync/internal/documents"
	"github.com/pharmasync/pharmasync/internal/inventory"
	"github.com/pharmasync/pharmasync/internal/reports"
	"github.com/pharmasync/pharmasync/internal/staff"
	"github.com/pharmasync/pharmasync/internal/verification"
)

// InventoryPort reads inventory with statuses already derived.
type InventoryPort interface {
	List(ctx context.Context, filter inventory.Filter) ([]inventory.Item, error)
	LowStock(ctx context.Context) ([]inventory.Item, error)
}

// DocumentsPort reads documents with statuses already derived.
type DocumentsPort interface {
	List(ctx context.Context, filter documents.Filter) ([]documents.Document, error)
	ExpiringSoon(ctx context.Context) ([]documents.Document, error)
}

// ReportsPort reads reports.
type ReportsPort interface {
	List(ctx context.Context, filter reports.Filter) ([]reports.Report, error)
}

// StaffPort reads the staff directory.
type StaffPort interface {
	List(ctx context.Context, filter staff.Filter) ([]staff.Member, error)
}

// RegistryPort reads the verification registry.
type RegistryPort interface {
	ListRecords(ctx context.Context) ([]verification.RegistryRecord, error)
}

// InventorySummary aggregates stock figures for the dashboard.
type InventorySummary struct {
	TotalItems    int            `json:"totalItems"`
	TotalValue    float64        `json:"totalValue"`
	ByStatus      map[string]int `json:"byStatus"`
	LowStockCount int            `json:"lowStockCount"`
}

// DocumentsSummary aggregates document compliance figures.
type DocumentsSummary struct {
	Total         int            `json:"total"`
	ByStatus      map[string]int `json:"byStatus"`
	ExpiringCount int            `json:"expiringCount"`
}

// ReportsSummary aggregates counterfeit/quality report figures.
type ReportsSummary struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"byStatus"`
	ByType   map[string]int `json:"byType"`
}

// VerificationSummary aggregates registry size and verdict tallies.
type VerificationSummary struct {
	RegistrySize     int            `json:"registrySize"`
	KnownCounterfeit int            `json:"knownCounterfeit"`
	Checks           map[string]int `json:"checks"`
}

// StaffSummary aggregates directory headcounts.
type StaffSummary struct {
	Total  int            `json:"total"`
	Active int            `json:"active"`
	ByRole map[string]int `json:"byRole"`
}

// Summary is the full dashboard payload.
type Summary struct {
	Inventory    InventorySummary    `json:"inventory"`
	Documents    DocumentsSummary    `json:"documents"`
	Reports      ReportsSummary      `json:"reports"`
	Verification VerificationSummary `json:"verification"`
	Staff        StaffSummary        `json:"staff"`
}

// Service assembles the dashboard summary from the module read paths.
type Service struct {
	inventory InventoryPort
	documents DocumentsPort
	reports   ReportsPort
	staff     StaffPort
	registry  RegistryPort
	tally     *Tally
}

// NewService wires the module ports.
func NewService(inv InventoryPort, docs DocumentsPort, rep ReportsPort, dir StaffPort, reg RegistryPort, tally *Tally) *Service {
	return &Service{inventory: inv, documents: docs, reports: rep, staff: dir, registry: reg, tally: tally}
}

// Summary computes the dashboard figures. Every count reflects the
// status derived at this read, not a stored snapshot.
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	var out Summary

	items, err := s.inventory.List(ctx, inventory.Filter{})
	if err != nil {
		return Summary{}, err
	}
	lowStock, err := s.inventory.LowStock(ctx)
	if err != nil {
		return Summary{}, err
	}
	out.Inventory = InventorySummary{
		TotalItems:    len(items),
		ByStatus:      make(map[string]int),
		LowStockCount: len(lowStock),
	}
	for _, item := range items {
		out.Inventory.ByStatus[string(item.Status)]++
		out.Inventory.TotalValue += float64(item.Quantity) * item.UnitPrice
	}

	docs, err := s.documents.List(ctx, documents.Filter{})
	if err != nil {
		return Summary{}, err
	}
	expiring, err := s.documents.ExpiringSoon(ctx)
	if err != nil {
		return Summary{}, err
	}
	out.Documents = DocumentsSummary{
		Total:         len(docs),
		ByStatus:      make(map[string]int),
		ExpiringCount: len(expiring),
	}
	for _, doc := range docs {
		out.Documents.ByStatus[string(doc.Status)]++
	}

	reported, err := s.reports.List(ctx, reports.Filter{})
	if err != nil {
		return Summary{}, err
	}
	out.Reports = ReportsSummary{
		Total:    len(reported),
		ByStatus: make(map[string]int),
		ByType:   make(map[string]int),
	}
	for _, report := range reported {
		out.Reports.ByStatus[string(report.Status)]++
		out.Reports.ByType[string(report.ReportType)]++
	}

	records, err := s.registry.ListRecords(ctx)
	if err != nil {
		return Summary{}, err
	}
	out.Verification = VerificationSummary{
		RegistrySize: len(records),
		Checks:       s.tally.Snapshot(),
	}
	for _, record := range records {
		if !record.IsAuthentic {
			out.Verification.KnownCounterfeit++
		}
	}

	members, err := s.staff.List(ctx, staff.Filter{})
	if err != nil {
		return Summary{}, err
	}
	out.Staff = StaffSummary{
		Total:  len(members),
		ByRole: make(map[string]int),
	}
	for _, member := range members {
		out.Staff.ByRole[string(member.Role)]++
		if member.Status == staff.StatusActive {
			out.Staff.Active++
		}
	}

	return out, nil
}
