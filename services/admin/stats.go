package admin

import (
	"fmt"
	"math"
	"time"

	analyticsRepo "angoni/database/repository/analytics"
	bookingRepo "angoni/database/repository/booking"
	catalogRepo "angoni/database/repository/catalog"
	"angoni/models"
)

// defaultWindowDays is the analytics replay window when the caller gives none.
const defaultWindowDays = 30

// Service computes derived admin metrics. Read-only: it never writes.
type Service interface {
	DashboardStats() (*models.DashboardStats, error)
	Analytics(eventType string, windowDays int) ([]models.UsageEvent, error)
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	Bookings bookingRepo.BookingRepository
	Catalog  catalogRepo.CatalogRepository
	Events   analyticsRepo.AnalyticsRepository
}

// DashboardStats recomputes the aggregate snapshot on every call. Counts run
// store-side; the revenue sum and customer dedup fold projected fields in
// memory, so cost grows with the number of bookings.
func (s *DefaultAdminService) DashboardStats() (*models.DashboardStats, error) {
	totalBookings, err := s.Bookings.Count()
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}

	amounts, err := s.Bookings.PaidAmounts()
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}
	var revenue float64
	for _, amount := range amounts {
		revenue += amount
	}

	emails, err := s.Bookings.LeadEmails()
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}
	unique := make(map[string]struct{}, len(emails))
	for _, email := range emails {
		unique[email] = struct{}{}
	}

	activeVehicles, err := s.Catalog.CountAvailableVehicles()
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}

	return &models.DashboardStats{
		TotalBookings:  totalBookings,
		TotalRevenue:   int64(math.Round(revenue)),
		TotalCustomers: len(unique),
		ActiveVehicles: activeVehicles,
	}, nil
}

// Analytics replays usage events within the window, newest first. The window
// boundary is inclusive.
func (s *DefaultAdminService) Analytics(eventType string, windowDays int) ([]models.UsageEvent, error) {
	if windowDays <= 0 {
		windowDays = defaultWindowDays
	}
	since := time.Now().UTC().AddDate(0, 0, -windowDays)

	events, err := s.Events.ListSince(eventType, since)
	if err != nil {
		return nil, fmt.Errorf("analytics: %w", err)
	}
	return events, nil
}
