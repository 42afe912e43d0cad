package recipe

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when a recipe id does not exist.
var ErrNotFound = errors.New("recipe not found")

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Search recipes by name or id substring
// --------------------------------------------------
func (r *PostgresRepository) Search(ctx context.Context, query string, limit, offset int) (*SearchResult, error) {
	result := &SearchResult{Recipes: []ListItem{}}

	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM recipes`).Scan(&result.Total); err != nil {
		return nil, err
	}

	like := "%" + query + "%"
	if query == "" {
		result.Filtered = result.Total
	} else {
		err := r.db.QueryRow(ctx, `
			SELECT COUNT(*)
			FROM recipes
			WHERE name ILIKE $1 OR CAST(recipe_id AS TEXT) LIKE $1
		`, like).Scan(&result.Filtered)
		if err != nil {
			return nil, err
		}
	}

	rows, err := r.db.Query(ctx, `
		SELECT r.recipe_id, COALESCE(r.name, ''),
		       (SELECT COUNT(*) FROM recipe_items ri WHERE ri.recipe_id = r.recipe_id)
		FROM recipes r
		WHERE $1 = '' OR r.name ILIKE $2 OR CAST(r.recipe_id AS TEXT) LIKE $2
		ORDER BY r.name
		LIMIT $3 OFFSET $4
	`, query, like, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var li ListItem
		if err := rows.Scan(&li.RecipeID, &li.Name, &li.ItemCount); err != nil {
			return nil, err
		}
		result.Recipes = append(result.Recipes, li)
	}
	return result, rows.Err()
}

func (r *PostgresRepository) Get(ctx context.Context, recipeID int64) (*Recipe, error) {
	var rec Recipe
	err := r.db.QueryRow(ctx, `
		SELECT recipe_id, COALESCE(name, ''), COALESCE(instructions, '')
		FROM recipes
		WHERE recipe_id = $1
	`, recipeID).Scan(&rec.RecipeID, &rec.Name, &rec.Instructions)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Lines returns the recipe's ingredient lines ordered by item name, the same
// order the detail view renders them in.
func (r *PostgresRepository) Lines(ctx context.Context, recipeID int64) ([]Line, error) {
	rows, err := r.db.Query(ctx, `
		SELECT ri.recipe_item_id, ri.item_id, COALESCE(ri.unit_id, 0), COALESCE(ri.qty, 0)
		FROM recipe_items ri
		LEFT JOIN items i ON i.item_id = ri.item_id
		WHERE ri.recipe_id = $1
		ORDER BY i.name
	`, recipeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []Line
	for rows.Next() {
		var line Line
		if err := rows.Scan(&line.RecipeItemID, &line.ItemID, &line.UnitID, &line.Qty); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]Recipe, error) {
	rows, err := r.db.Query(ctx, `
		SELECT recipe_id, COALESCE(name, ''), COALESCE(instructions, '')
		FROM recipes
		ORDER BY recipe_id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recipes []Recipe
	for rows.Next() {
		var rec Recipe
		if err := rows.Scan(&rec.RecipeID, &rec.Name, &rec.Instructions); err != nil {
			return nil, err
		}
		recipes = append(recipes, rec)
	}
	return recipes, rows.Err()
}
