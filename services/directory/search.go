package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	directoryRepo "legalaid/database/repository/directory"
	"legalaid/models"
	"legalaid/utils"

	"go.uber.org/zap"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
	searchCacheTTL  = 30 * time.Second
)

// Search runs the filtered, paginated directory query. All filters are
// optional and AND-combined; only approved listings are eligible, regardless
// of filters. Pages are cached briefly in Redis when a cache client is set.
func (s *DefaultDirectoryService) Search(ctx context.Context, criteria directoryRepo.DirectorySearchCriteria) (*models.DirectoryPage, error) {
	if criteria.Page < 0 {
		criteria.Page = 0
	}
	if criteria.PageSize <= 0 {
		criteria.PageSize = defaultPageSize
	}
	if criteria.PageSize > maxPageSize {
		criteria.PageSize = maxPageSize
	}
	if criteria.MinExperience < 0 {
		return nil, ValidationError{Field: "minExperience", Message: "must not be negative"}
	}

	cacheKey := searchCacheKey(criteria)
	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var page models.DirectoryPage
			if err := json.Unmarshal([]byte(cached), &page); err == nil {
				return &page, nil
			}
		}
	}

	entries, total, err := s.Listings.Search(criteria)
	if err != nil {
		return nil, fmt.Errorf("directory search failed: %w", err)
	}
	if entries == nil {
		entries = []models.DirectoryListing{}
	}

	totalPages := int(total) / criteria.PageSize
	if int(total)%criteria.PageSize != 0 {
		totalPages++
	}
	page := &models.DirectoryPage{
		Entries:    entries,
		TotalCount: total,
		Page:       criteria.Page,
		PageSize:   criteria.PageSize,
		TotalPages: totalPages,
	}

	if s.Cache != nil {
		if payload, err := json.Marshal(page); err == nil {
			if err := s.Cache.Set(ctx, cacheKey, payload, searchCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("failed to cache search page", zap.Error(err))
			}
		}
	}
	return page, nil
}

func searchCacheKey(c directoryRepo.DirectorySearchCriteria) string {
	return fmt.Sprintf("directory:search:%s:%s:%s:%s:%d:%d:%d",
		c.Kind, c.State, c.District, c.Specialization, c.MinExperience, c.Page, c.PageSize)
}
