package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/constants"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/interfaces"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/logger"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/params"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/business"
	"go.uber.org/zap"
)

const monthLayout = "2006-01"

// topHotelsLimit caps the hotels leaderboard on the dashboard.
const topHotelsLimit = 5

// statusChartOrder fixes the bar order of the bookings-by-status chart.
var statusChartOrder = []string{
	constants.ReservationStatusPending,
	constants.ReservationStatusAwaitingPayment,
	constants.ReservationStatusConfirmed,
	constants.ReservationStatusCancelled,
	constants.ReservationStatusRejected,
}

// AnalyticsService aggregates booking KPIs for the admin dashboard. All
// figures are computed from a CRS export of the window; nothing is cached.
type AnalyticsService struct {
	crs    interfaces.CRSAPI
	logger *zap.Logger
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(crsAPI interfaces.CRSAPI) *AnalyticsService {
	return &AnalyticsService{
		crs:    crsAPI,
		logger: logger.Log,
	}
}

// GetDashboardMetrics aggregates the dashboard KPIs over the requested month
// window. An empty window means the trailing twelve months. Revenue is summed
// per settlement currency; no conversion is applied.
func (s *AnalyticsService) GetDashboardMetrics(ctx context.Context, p params.AnalyticsParams) (*business.DashboardMetrics, error) {
	from, to, err := resolveMonthWindow(p, time.Now())
	if err != nil {
		return nil, err
	}

	reservations, err := s.crs.ExportReservations(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to export reservations: %w", err)
	}
	clients, err := s.crs.ListClients(ctx, "", 1, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to count clients: %w", err)
	}
	unpaid, err := s.crs.ListInvoices(ctx, constants.InvoiceStatusUnpaid, 1, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to count unpaid invoices: %w", err)
	}

	metrics := &business.DashboardMetrics{
		TotalReservations: len(reservations),
		TotalClients:      int(clients.TotalItems),
		UnpaidInvoices:    int(unpaid.TotalItems),
		ByStatus:          countByStatus(reservations),
		Revenue:           revenueByCurrency(reservations),
		TopHotels:         topHotels(reservations),
		Monthly:           monthlySeries(reservations, from, to),
	}

	s.logger.Info("Dashboard metrics computed",
		zap.Time("from", from),
		zap.Time("to", to),
		zap.Int("reservations", len(reservations)))
	return metrics, nil
}

// resolveMonthWindow turns the YYYY-MM bounds into a [from, to) time window.
// The upper bound is the first day of the month after ToMonth so the whole
// month is included.
func resolveMonthWindow(p params.AnalyticsParams, now time.Time) (time.Time, time.Time, error) {
	thisMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	to := thisMonth.AddDate(0, 1, 0)
	if p.ToMonth != "" {
		parsed, err := time.Parse(monthLayout, p.ToMonth)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid to_month %q: %w", p.ToMonth, err)
		}
		to = parsed.AddDate(0, 1, 0)
	}

	from := to.AddDate(-1, 0, 0)
	if p.FromMonth != "" {
		parsed, err := time.Parse(monthLayout, p.FromMonth)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid from_month %q: %w", p.FromMonth, err)
		}
		from = parsed
	}

	if !from.Before(to) {
		return time.Time{}, time.Time{}, fmt.Errorf("from_month must precede to_month")
	}
	return from, to, nil
}

func countByStatus(reservations []business.Reservation) []business.StatusCount {
	counts := make(map[string]int)
	for _, reservation := range reservations {
		counts[reservation.Status]++
	}

	result := make([]business.StatusCount, 0, len(counts))
	for _, status := range statusChartOrder {
		if count, ok := counts[status]; ok {
			result = append(result, business.StatusCount{
				Status: status,
				Label:  constants.ReservationStatusLabel(status),
				Count:  count,
			})
			delete(counts, status)
		}
	}

	// Whatever the CRS reports beyond the known statuses still gets a bar.
	leftover := make([]string, 0, len(counts))
	for status := range counts {
		leftover = append(leftover, status)
	}
	sort.Strings(leftover)
	for _, status := range leftover {
		result = append(result, business.StatusCount{
			Status: status,
			Label:  constants.ReservationStatusLabel(status),
			Count:  counts[status],
		})
	}
	return result
}

func revenueByCurrency(reservations []business.Reservation) []business.RevenueByCurrency {
	totals := make(map[string]float64)
	for _, reservation := range reservations {
		if reservation.Status != constants.ReservationStatusConfirmed {
			continue
		}
		totals[reservation.Currency] += reservation.TotalPrice
	}

	result := make([]business.RevenueByCurrency, 0, len(totals))
	for currency, amount := range totals {
		result = append(result, business.RevenueByCurrency{Currency: currency, Amount: amount})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Amount != result[j].Amount {
			return result[i].Amount > result[j].Amount
		}
		return result[i].Currency < result[j].Currency
	})
	return result
}

func topHotels(reservations []business.Reservation) []business.HotelCount {
	type hotel struct {
		name  string
		count int
	}
	counts := make(map[string]*hotel)
	for _, reservation := range reservations {
		entry, ok := counts[reservation.HotelID]
		if !ok {
			entry = &hotel{name: reservation.HotelName}
			counts[reservation.HotelID] = entry
		}
		entry.count++
	}

	result := make([]business.HotelCount, 0, len(counts))
	for hotelID, entry := range counts {
		result = append(result, business.HotelCount{
			HotelID:   hotelID,
			HotelName: entry.name,
			Count:     entry.count,
		})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].HotelName < result[j].HotelName
	})
	if len(result) > topHotelsLimit {
		result = result[:topHotelsLimit]
	}
	return result
}

// monthlySeries buckets bookings and confirmed revenue per month, emitting a
// point for every month in the window so chart axes stay continuous.
func monthlySeries(reservations []business.Reservation, from, to time.Time) []business.MonthlyPoint {
	bookings := make(map[string]int)
	revenue := make(map[string]float64)
	for _, reservation := range reservations {
		month := reservation.CreatedAt.UTC().Format(monthLayout)
		bookings[month]++
		if reservation.Status == constants.ReservationStatusConfirmed {
			revenue[month] += reservation.TotalPrice
		}
	}

	var series []business.MonthlyPoint
	for cursor := from; cursor.Before(to); cursor = cursor.AddDate(0, 1, 0) {
		month := cursor.Format(monthLayout)
		series = append(series, business.MonthlyPoint{
			Month:    month,
			Bookings: bookings[month],
			Revenue:  revenue[month],
		})
	}
	return series
}
