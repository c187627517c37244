package services

import (
	"errors"
	"sort"
	"strings"

	"github.com/Mo2025mo/la-automotive/internal/models"

	"gorm.io/gorm"
)

// VehicleService backs the registration lookup and search tracking. Lookups
// are served from a locally maintained cache table; there is no live MOT or
// DVLA integration, so a cache miss sends the customer to the garage's
// contact details.
type VehicleService struct{}

func NewVehicleService() *VehicleService {
	return &VehicleService{}
}

// LookupByPlate returns the cached vehicle record for a registration plate.
func (s *VehicleService) LookupByPlate(plate string) (*models.VehicleLookup, error) {
	normalized := strings.ToUpper(strings.ReplaceAll(plate, " ", ""))

	var vehicle models.VehicleLookup
	if err := models.DB.Where("registration_plate = ?", normalized).First(&vehicle).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &vehicle, nil
}

// SaveLookup upserts a vehicle record by registration plate.
func (s *VehicleService) SaveLookup(vehicle *models.VehicleLookup) error {
	vehicle.RegistrationPlate = strings.ToUpper(strings.ReplaceAll(vehicle.RegistrationPlate, " ", ""))

	var existing models.VehicleLookup
	err := models.DB.Where("registration_plate = ?", vehicle.RegistrationPlate).First(&existing).Error
	if err == nil {
		vehicle.ID = existing.ID
		return models.DB.Save(vehicle).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return models.DB.Create(vehicle).Error
}

// RecordSearch persists one visitor search for analytics.
func (s *VehicleService) RecordSearch(searchType, query, userAgent, ipAddress string) error {
	search := &models.UserSearch{
		SearchType:  searchType,
		SearchQuery: query,
		UserAgent:   userAgent,
		IPAddress:   ipAddress,
	}
	return models.DB.Create(search).Error
}

// SearchAnalytics is the search activity summary for the dashboard.
type SearchAnalytics struct {
	TotalSearches  int                 `json:"totalSearches"`
	SearchesByType map[string]int      `json:"searchesByType"`
	RecentSearches []models.UserSearch `json:"recentSearches"`
	TopQueries     []QueryCount        `json:"topQueries"`
}

type QueryCount struct {
	Query string `json:"query"`
	Count int    `json:"count"`
}

// Analytics aggregates all recorded searches: totals, counts by type, the
// 50 most recent and the most repeated queries.
func (s *VehicleService) Analytics() (*SearchAnalytics, error) {
	var searches []models.UserSearch
	if err := models.DB.Order("created_at desc").Find(&searches).Error; err != nil {
		return nil, err
	}

	analytics := &SearchAnalytics{
		TotalSearches:  len(searches),
		SearchesByType: make(map[string]int),
	}

	queryCounts := make(map[string]int)
	for _, search := range searches {
		analytics.SearchesByType[search.SearchType]++
		queryCounts[search.SearchQuery]++
	}

	recent := searches
	if len(recent) > 50 {
		recent = recent[:50]
	}
	analytics.RecentSearches = recent

	for query, count := range queryCounts {
		analytics.TopQueries = append(analytics.TopQueries, QueryCount{Query: query, Count: count})
	}
	sort.Slice(analytics.TopQueries, func(i, j int) bool {
		if analytics.TopQueries[i].Count != analytics.TopQueries[j].Count {
			return analytics.TopQueries[i].Count > analytics.TopQueries[j].Count
		}
		return analytics.TopQueries[i].Query < analytics.TopQueries[j].Query
	})
	if len(analytics.TopQueries) > 20 {
		analytics.TopQueries = analytics.TopQueries[:20]
	}

	return analytics, nil
}
