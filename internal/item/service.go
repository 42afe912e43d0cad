package item

import (
	"context"
	"strings"
)

// usageLimit caps the recipe-usage list on the detail view.
const usageLimit = 50

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Search(ctx context.Context, query string, limit, offset int) (*SearchResult, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.Search(ctx, strings.TrimSpace(query), limit, offset)
}

// --------------------------------------------------
// Full inventory view of one item
// --------------------------------------------------
func (s *Service) GetDetail(ctx context.Context, itemID int64) (*Detail, error) {
	it, err := s.repo.Get(ctx, itemID)
	if err != nil {
		return nil, err
	}

	detail := &Detail{
		Item:          *it,
		PurchaseUnits: []PurchaseUnit{},
		Prices:        []VendorPrice{},
		Conversions:   []Conversion{},
		Usage:         []Usage{},
	}

	if units, err := s.repo.PurchaseUnits(ctx, itemID); err != nil {
		return nil, err
	} else if units != nil {
		detail.PurchaseUnits = units
	}

	if prices, err := s.repo.Prices(ctx, itemID); err != nil {
		return nil, err
	} else if prices != nil {
		detail.Prices = prices
	}

	if conversions, err := s.repo.Conversions(ctx, itemID); err != nil {
		return nil, err
	} else if conversions != nil {
		detail.Conversions = conversions
	}

	if usage, err := s.repo.Usage(ctx, itemID, usageLimit); err != nil {
		return nil, err
	} else if usage != nil {
		detail.Usage = usage
	}

	return detail, nil
}
