package recipe

import (
	"context"
	"strings"

	"github.com/winget-powershelll/fourchef/internal/costing"
)

type Service struct {
	repo   Repository
	engine *costing.Engine
}

func NewService(repo Repository, engine *costing.Engine) *Service {
	return &Service{repo: repo, engine: engine}
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
// Recipe detail with costed ingredient lines
// --------------------------------------------------
func (s *Service) GetDetail(ctx context.Context, recipeID int64) (*Detail, error) {
	rec, err := s.repo.Get(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	lines, err := s.repo.Lines(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	input := make([]costing.Line, len(lines))
	for i, line := range lines {
		input[i] = costing.Line{ItemID: line.ItemID, UnitID: line.UnitID, Qty: line.Qty}
	}

	result, err := s.engine.EvaluateAll(ctx, input)
	if err != nil {
		return nil, err
	}

	// results come back in input order, so zip the stored line ids with them
	ingredients := make([]Ingredient, len(lines))
	for i, line := range lines {
		ingredients[i] = Ingredient{
			RecipeItemID: line.RecipeItemID,
			LineResult:   result.Lines[i],
		}
	}

	return &Detail{
		Recipe:       *rec,
		ItemCount:    int64(len(lines)),
		TotalCost:    result.TotalCost,
		MissingCosts: result.MissingCosts,
		Ingredients:  ingredients,
	}, nil
}
