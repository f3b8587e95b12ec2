package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListCategoriesQueryHandler serves the category directory listing.
type ListCategoriesQueryHandler struct {
	db *gorm.DB
}

// NewListCategoriesQueryHandler creates a handler for category listings.
func NewListCategoriesQueryHandler(db *gorm.DB) ListCategoriesQueryHandler {
	return ListCategoriesQueryHandler{db: db}
}

// Handle executes the listing, ordered by canonical name.
func (h ListCategoriesQueryHandler) Handle(
	ctx context.Context,
	query ListCategoriesQuery,
) ([]CategoryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			name,
			display_name,
			description,
			active,
			created_at,
			updated_at
		FROM categories
	`
	if query.ActiveOnly() {
		sql += ` WHERE active`
	}
	sql += ` ORDER BY name`

	categories := make([]CategoryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp CategoryResponse
		err = rows.Scan(
			&resp.Name,
			&resp.DisplayName,
			&resp.Description,
			&resp.Active,
			&resp.CreatedAt,
			&resp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		categories = append(categories, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}
