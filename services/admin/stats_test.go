package admin

import (
	"testing"
	"time"

	analyticsRepo "angoni/database/repository/analytics"
	bookingRepo "angoni/database/repository/booking"
	catalogRepo "angoni/database/repository/catalog"
	"angoni/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookings struct {
	bookingRepo.BookingRepository

	count   int64
	amounts []float64
	emails  []string
}

func (f *fakeBookings) Count() (int64, error)           { return f.count, nil }
func (f *fakeBookings) PaidAmounts() ([]float64, error) { return f.amounts, nil }
func (f *fakeBookings) LeadEmails() ([]string, error)   { return f.emails, nil }

type fakeCatalog struct {
	catalogRepo.CatalogRepository

	available int64
}

func (f *fakeCatalog) CountAvailableVehicles() (int64, error) { return f.available, nil }

type fakeEvents struct {
	analyticsRepo.AnalyticsRepository

	gotEventType string
	gotSince     time.Time
	events       []models.UsageEvent
}

func (f *fakeEvents) ListSince(eventType string, since time.Time) ([]models.UsageEvent, error) {
	f.gotEventType = eventType
	f.gotSince = since
	return f.events, nil
}

func TestDashboardStatsEmptyBookings(t *testing.T) {
	svc := &DefaultAdminService{
		Bookings: &fakeBookings{},
		Catalog:  &fakeCatalog{available: 7},
		Events:   &fakeEvents{},
	}

	stats, err := svc.DashboardStats()
	require.NoError(t, err)

	assert.Equal(t, int64(0), stats.TotalBookings)
	assert.Equal(t, int64(0), stats.TotalRevenue)
	assert.Equal(t, 0, stats.TotalCustomers)
	assert.Equal(t, int64(7), stats.ActiveVehicles)
}

func TestDashboardStatsRevenueSumsPaidOnly(t *testing.T) {
	// The repo already filters to payment_status = "paid": bookings of
	// [paid 100, pending 50, paid 25] surface as [100, 25].
	svc := &DefaultAdminService{
		Bookings: &fakeBookings{count: 3, amounts: []float64{100, 25}},
		Catalog:  &fakeCatalog{},
		Events:   &fakeEvents{},
	}

	stats, err := svc.DashboardStats()
	require.NoError(t, err)
	assert.Equal(t, int64(125), stats.TotalRevenue)
}

func TestDashboardStatsRevenueRoundsToNearestUnit(t *testing.T) {
	svc := &DefaultAdminService{
		Bookings: &fakeBookings{amounts: []float64{100.30, 25.25}},
		Catalog:  &fakeCatalog{},
		Events:   &fakeEvents{},
	}

	stats, err := svc.DashboardStats()
	require.NoError(t, err)
	assert.Equal(t, int64(126), stats.TotalRevenue)
}

func TestDashboardStatsDeduplicatesCustomers(t *testing.T) {
	svc := &DefaultAdminService{
		Bookings: &fakeBookings{emails: []string{"a@x.com", "a@x.com", "b@x.com"}},
		Catalog:  &fakeCatalog{},
		Events:   &fakeEvents{},
	}

	stats, err := svc.DashboardStats()
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalCustomers)
}

func TestAnalyticsWindow(t *testing.T) {
	events := &fakeEvents{events: []models.UsageEvent{{EventType: "booking_created"}}}
	svc := &DefaultAdminService{Bookings: &fakeBookings{}, Catalog: &fakeCatalog{}, Events: events}

	before := time.Now().UTC().AddDate(0, 0, -7)
	got, err := svc.Analytics("booking_created", 7)
	after := time.Now().UTC().AddDate(0, 0, -7)
	require.NoError(t, err)

	assert.Len(t, got, 1)
	assert.Equal(t, "booking_created", events.gotEventType)
	// The cutoff is now minus the window, boundary inclusive.
	assert.False(t, events.gotSince.Before(before))
	assert.False(t, events.gotSince.After(after))
}

func TestAnalyticsDefaultsToThirtyDays(t *testing.T) {
	events := &fakeEvents{}
	svc := &DefaultAdminService{Bookings: &fakeBookings{}, Catalog: &fakeCatalog{}, Events: events}

	_, err := svc.Analytics("", 0)
	require.NoError(t, err)

	expected := time.Now().UTC().AddDate(0, 0, -30)
	assert.WithinDuration(t, expected, events.gotSince, 5*time.Second)
	assert.Empty(t, events.gotEventType)
}
