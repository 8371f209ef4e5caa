// Package seed loads the sample dataset the dashboard ships with so a
// fresh process starts with recognizable data instead of empty pages.
package seed

import (
	"context"
	"log/slog"
	"time"

	"github.com/pharmasync/pharmasync/internal/auth"
	"github.com/pharmasync/pharmasync/internal/documents"
	"github.com/pharmasync/pharmasync/internal/inventory"
	"github.com/pharmasync/pharmasync/internal/platform/memstore"
	"github.com/pharmasync/pharmasync/internal/reports"
	"github.com/pharmasync/pharmasync/internal/settings"
	"github.com/pharmasync/pharmasync/internal/staff"
	"github.com/pharmasync/pharmasync/internal/verification"
)

// Stores collects every collection the sample data lands in.
type Stores struct {
	Inventory *memstore.Collection[inventory.Item]
	Documents *memstore.Collection[documents.Document]
	Reports   *memstore.Collection[reports.Report]
	Staff     *memstore.Collection[staff.Member]
	Registry  *memstore.Collection[verification.RegistryRecord]
	Auth      *auth.Service
}

// InitialSettings returns the settings document a fresh install starts with.
func InitialSettings() settings.Settings {
	return settings.Settings{
		Company: settings.CompanyProfile{
			Name:    "Unilab",
			Email:   "contact@unilab.com",
			Phone:   "+63 123 456 7890",
			Website: "www.unilab.com",
			Address: "Manila, Philippines",
		},
		System: settings.SystemSettings{
			StockAlertThreshold: 100,
			ExpiryAlertDays:     90,
			EmailNotifications:  true,
		},
	}
}

// Load inserts the sample dataset. Statuses are left zero valued where the
// owning service derives them on read.
func Load(ctx context.Context, logger *slog.Logger, stores Stores) error {
	stores.Inventory.Create(inventory.Item{
		Name:       "Biogesic",
		Category:   "Pain Relief",
		Quantity:   500,
		UnitPrice:  10.50,
		ExpiryDate: date(2025, time.December, 31),
	})

	uploaded := []documents.Document{
		{
			Name:       "FDA License 2024",
			Type:       documents.TypeLicense,
			Category:   "Regulatory",
			UploadDate: date(2024, time.January, 15),
			Size:       "2.5 MB",
			Reviewed:   true,
			ExpiryDate: datePtr(2024, time.December, 31),
		},
		{
			Name:       "GMP Certificate",
			Type:       documents.TypeCertificate,
			Category:   "Compliance",
			UploadDate: date(2024, time.February, 1),
			Size:       "1.8 MB",
			Reviewed:   true,
			ExpiryDate: datePtr(2025, time.February, 1),
		},
		{
			Name:       "Quality Control SOP",
			Type:       documents.TypeSOP,
			Category:   "Operations",
			UploadDate: date(2024, time.January, 20),
			Size:       "3.2 MB",
			Reviewed:   true,
		},
	}
	for _, doc := range uploaded {
		stores.Documents.Create(doc)
	}

	filed := []reports.Report{
		{
			ProductName: "Biogesic",
			ReportType:  reports.TypeCounterfeit,
			Status:      reports.StatusInvestigating,
			Location:    "Manila",
			ReportDate:  date(2024, time.March, 20),
			ReportedBy:  "John Doe",
			Details:     "Suspicious packaging and QR code authentication failed",
		},
		{
			ProductName: "Neozep",
			ReportType:  reports.TypeQuality,
			Status:      reports.StatusPending,
			Location:    "Cebu",
			ReportDate:  date(2024, time.March, 19),
			ReportedBy:  "Jane Smith",
			Details:     "Product discoloration noted",
		},
		{
			ProductName: "Alaxan",
			ReportType:  reports.TypePackaging,
			Status:      reports.StatusResolved,
			Location:    "Davao",
			ReportDate:  date(2024, time.March, 18),
			ReportedBy:  "Mike Johnson",
			Details:     "Tampered security seal",
		},
	}
	for _, report := range filed {
		report.UpdatedAt = report.ReportDate
		stores.Reports.Create(report)
	}

	members := []staff.Member{
		{
			Name:       "John Doe",
			Email:      "john.doe@unilab.com",
			Phone:      "+63 912 345 6789",
			Role:       staff.RoleAdmin,
			Department: "Management",
			Status:     staff.StatusActive,
			JoinDate:   date(2024, time.January, 15),
		},
		{
			Name:       "Jane Smith",
			Email:      "jane.smith@unilab.com",
			Phone:      "+63 923 456 7890",
			Role:       staff.RolePharmacist,
			Department: "Pharmacy",
			Status:     staff.StatusActive,
			JoinDate:   date(2024, time.February, 1),
		},
	}
	for _, member := range members {
		stores.Staff.Create(member)
	}

	records := []verification.RegistryRecord{
		{
			ProductID:         "BIO123456",
			BatchNumber:       "BTH2024001",
			Name:              "Biogesic",
			Manufacturer:      "Unilab",
			ManufacturingDate: date(2024, time.January, 15),
			ExpiryDate:        date(2026, time.January, 15),
			IsAuthentic:       true,
		},
		{
			ProductID:         "NEO789012",
			BatchNumber:       "BTH2024002",
			Name:              "Neozep",
			Manufacturer:      "Unilab",
			ManufacturingDate: date(2024, time.February, 1),
			ExpiryDate:        date(2026, time.February, 1),
			IsAuthentic:       false,
		},
	}
	for _, record := range records {
		stores.Registry.Create(record)
	}

	if stores.Auth != nil {
		if _, err := stores.Auth.Register(ctx, auth.User{
			Name:  "John Doe",
			Email: "john.doe@unilab.com",
			Role:  "Admin",
		}, "pharmasync"); err != nil {
			return err
		}
	}

	logger.Info("sample data loaded",
		slog.Int("inventory", stores.Inventory.Len()),
		slog.Int("documents", stores.Documents.Len()),
		slog.Int("reports", stores.Reports.Len()),
		slog.Int("staff", stores.Staff.Len()),
		slog.Int("registry", stores.Registry.Len()))
	return nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	dt := date(y, m, d)
	return &dt
}
