package recipe

import (
	"context"
	"sort"
	"strings"
)

// InMemoryRepository backs tests without a database.
type InMemoryRepository struct {
	recipes map[int64]*Recipe
	lines   map[int64][]Line
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		recipes: make(map[int64]*Recipe),
		lines:   make(map[int64][]Line),
	}
}

func (r *InMemoryRepository) Add(rec Recipe, lines ...Line) {
	r.recipes[rec.RecipeID] = &rec
	r.lines[rec.RecipeID] = lines
}

func (r *InMemoryRepository) Search(_ context.Context, query string, limit, offset int) (*SearchResult, error) {
	result := &SearchResult{Recipes: []ListItem{}, Total: int64(len(r.recipes))}

	var matched []ListItem
	for id, rec := range r.recipes {
		if query == "" || strings.Contains(strings.ToLower(rec.Name), strings.ToLower(query)) {
			matched = append(matched, ListItem{
				RecipeID:  id,
				Name:      rec.Name,
				ItemCount: int64(len(r.lines[id])),
			})
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Name < matched[j].Name })

	result.Filtered = int64(len(matched))
	for i := offset; i < len(matched) && i < offset+limit; i++ {
		result.Recipes = append(result.Recipes, matched[i])
	}
	return result, nil
}

func (r *InMemoryRepository) Get(_ context.Context, recipeID int64) (*Recipe, error) {
	rec, ok := r.recipes[recipeID]
	if !ok {
		return nil, ErrNotFound
	}
	return rec, nil
}

func (r *InMemoryRepository) Lines(_ context.Context, recipeID int64) ([]Line, error) {
	return r.lines[recipeID], nil
}

func (r *InMemoryRepository) ListAll(_ context.Context) ([]Recipe, error) {
	ids := make([]int64, 0, len(r.recipes))
	for id := range r.recipes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	recipes := make([]Recipe, 0, len(ids))
	for _, id := range ids {
		recipes = append(recipes, *r.recipes[id])
	}
	return recipes, nil
}
