package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/constants"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/interfaces"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/logger"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/params"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/responses"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/business"
	"go.uber.org/zap"
)

// rateCacheTTL bounds how long a search result may be served without hitting
// the supplier again. Supplier rates are quoted for minutes, not seconds, so a
// short window is safe and absorbs the front-end's step-to-step refetches.
const rateCacheTTL = time.Minute

// cachedSearch is one supplier response held for identical follow-up searches.
type cachedSearch struct {
	rates     []business.Rate
	fetchedAt time.Time
}

// RateService fetches room rates from the hotel supplier and re-matches held
// selections when the display currency changes.
type RateService struct {
	supplier interfaces.SupplierAPI
	logger   *zap.Logger

	// generations sequences overlapping refreshes per refresh key. A refresh
	// whose generation is no longer current when its response arrives is
	// discarded rather than applied.
	generations sync.Map // refresh key -> *atomic.Uint64

	cache sync.Map // search key -> *cachedSearch
}

// NewRateService creates a new rate service
func NewRateService(supplier interfaces.SupplierAPI) *RateService {
	return &RateService{
		supplier: supplier,
		logger:   logger.Log,
	}
}

// SearchRates fetches rates for a hotel stay, serving repeated identical
// searches from a short-lived cache.
func (s *RateService) SearchRates(ctx context.Context, search params.RateSearchParams) (*responses.RateSearchResult, error) {
	key := searchCacheKey(search)
	if entry, ok := s.cache.Load(key); ok {
		cached := entry.(*cachedSearch)
		if time.Since(cached.fetchedAt) < rateCacheTTL {
			s.logger.Debug("Serving rates from cache",
				zap.String("hotel_id", search.HotelID),
				zap.String("currency", search.Currency))
			return &responses.RateSearchResult{
				Rates:    cached.rates,
				Currency: search.Currency,
				Cached:   true,
			}, nil
		}
		s.cache.Delete(key)
	}

	rates, err := s.fetchRates(ctx, search)
	if err != nil {
		return nil, err
	}

	s.cache.Store(key, &cachedSearch{rates: rates, fetchedAt: time.Now()})

	return &responses.RateSearchResult{
		Rates:    rates,
		Currency: search.Currency,
	}, nil
}

// RefreshSelections re-fetches the search in its (possibly new) currency and
// re-matches each held selection against the fresh rates. Matching tries
// (room name, meal plan) first, then room name alone; selections that match
// neither keep their old rate and are flagged stale.
//
// Overlapping refreshes for the same key are sequenced by a generation
// counter: only the latest refresh may apply, earlier in-flight responses
// come back marked superseded.
func (s *RateService) RefreshSelections(ctx context.Context, p params.RefreshSelectionsParams) (*responses.RefreshOutcome, error) {
	generation := s.nextGeneration(p.RefreshKey)

	s.logger.Info("Refreshing selections",
		zap.String("refresh_key", p.RefreshKey),
		zap.Uint64("generation", generation),
		zap.String("hotel_id", p.Search.HotelID),
		zap.String("currency", p.Search.Currency),
		zap.Int("selections", len(p.Selections)))

	// Always hit the supplier: a refresh exists to replace cached figures.
	rates, err := s.fetchRates(ctx, p.Search)
	if err != nil {
		return nil, err
	}

	if current := s.currentGeneration(p.RefreshKey); current != generation {
		s.logger.Warn("Discarding superseded refresh",
			zap.String("refresh_key", p.RefreshKey),
			zap.Uint64("generation", generation),
			zap.Uint64("current", current))
		return &responses.RefreshOutcome{
			Superseded: true,
			Generation: generation,
			Currency:   p.Search.Currency,
		}, nil
	}

	// The refreshed rates replace the cached search for this key too.
	s.cache.Store(searchCacheKey(p.Search), &cachedSearch{rates: rates, fetchedAt: time.Now()})

	refreshed := make([]responses.SelectionRefresh, 0, len(p.Selections))
	staleCount := 0
	for _, sel := range p.Selections {
		match := rematchSelection(sel, rates)
		if match.Stale {
			staleCount++
		}
		refreshed = append(refreshed, match)
	}

	if staleCount > 0 {
		s.logger.Warn("Some selections did not survive the refresh",
			zap.String("refresh_key", p.RefreshKey),
			zap.Int("stale", staleCount),
			zap.Int("total", len(p.Selections)))
	}

	return &responses.RefreshOutcome{
		Generation: generation,
		Currency:   p.Search.Currency,
		Selections: refreshed,
		Rates:      rates,
	}, nil
}

// fetchRates calls the supplier and normalizes its response.
func (s *RateService) fetchRates(ctx context.Context, search params.RateSearchParams) ([]business.Rate, error) {
	resp, err := s.supplier.FetchRates(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rates: %w", err)
	}
	return resp.Rates, nil
}

// nextGeneration bumps and returns the refresh sequence for a key.
func (s *RateService) nextGeneration(key string) uint64 {
	entry, _ := s.generations.LoadOrStore(key, &atomic.Uint64{})
	return entry.(*atomic.Uint64).Add(1)
}

// currentGeneration reads the latest refresh sequence for a key.
func (s *RateService) currentGeneration(key string) uint64 {
	if entry, ok := s.generations.Load(key); ok {
		return entry.(*atomic.Uint64).Load()
	}
	return 0
}

// rematchSelection finds the fresh rate for a held selection. The room count
// survives the rematch; only the rate is replaced.
func rematchSelection(sel business.RoomSelection, rates []business.Rate) responses.SelectionRefresh {
	for _, rate := range rates {
		if rate.RoomName == sel.Rate.RoomName && rate.MealPlan == sel.Rate.MealPlan {
			sel.Rate = rate
			return responses.SelectionRefresh{
				Selection: sel,
				Matched:   true,
				MatchKind: constants.MatchKindExact,
			}
		}
	}
	for _, rate := range rates {
		if rate.RoomName == sel.Rate.RoomName {
			sel.Rate = rate
			return responses.SelectionRefresh{
				Selection: sel,
				Matched:   true,
				MatchKind: constants.MatchKindRoomName,
			}
		}
	}
	return responses.SelectionRefresh{
		Selection: sel,
		Stale:     true,
	}
}

// searchCacheKey flattens the search parameters into a cache key.
func searchCacheKey(search params.RateSearchParams) string {
	ages := make([]string, 0, len(search.ChildrenAges))
	for _, age := range search.ChildrenAges {
		ages = append(ages, fmt.Sprintf("%d", age))
	}
	return strings.Join([]string{
		search.HotelID,
		search.CheckIn,
		search.CheckOut,
		fmt.Sprintf("%d", search.Adults),
		strings.Join(ages, ","),
		strings.ToUpper(search.Currency),
		search.Language,
	}, "|")
}
