package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/wecareapp/wecare/internal/domain"
)

type TipStore struct {
	db *sql.DB
}

func NewTipStore(db *sql.DB) *TipStore {
	return &TipStore{db: db}
}

func (s *TipStore) List(ctx context.Context) ([]*domain.Tip, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, category, title, body, cadence FROM tips ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tips: %w", err)
	}
	defer rows.Close()

	var tips []*domain.Tip
	for rows.Next() {
		tip := &domain.Tip{}
		if err := rows.Scan(&tip.ID, &tip.Category, &tip.Title, &tip.Body, &tip.Cadence); err != nil {
			return nil, fmt.Errorf("failed to scan tip: %w", err)
		}
		tips = append(tips, tip)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tips: %w", err)
	}
	return tips, nil
}

// Categories returns the distinct tip categories in catalog order.
func (s *TipStore) Categories(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT category FROM tips GROUP BY category ORDER BY MIN(id) ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tip categories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}
	return categories, nil
}
