package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/wecareapp/wecare/internal/domain"
)

type ClinicStore struct {
	db *sql.DB
}

func NewClinicStore(db *sql.DB) *ClinicStore {
	return &ClinicStore{db: db}
}

func (s *ClinicStore) List(ctx context.Context) ([]*domain.Clinic, error) {
	return s.query(ctx, `
		SELECT id, name, type, distance, rating, address, phone, hours, services
		FROM clinics ORDER BY distance ASC
	`)
}

// Search filters the directory by a case-insensitive substring over name,
// address, and type.
func (s *ClinicStore) Search(ctx context.Context, query string) ([]*domain.Clinic, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	return s.query(ctx, `
		SELECT id, name, type, distance, rating, address, phone, hours, services
		FROM clinics
		WHERE lower(name) LIKE ? OR lower(address) LIKE ? OR lower(type) LIKE ?
		ORDER BY distance ASC
	`, pattern, pattern, pattern)
}

func (s *ClinicStore) query(ctx context.Context, q string, args ...any) ([]*domain.Clinic, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list clinics: %w", err)
	}
	defer rows.Close()

	var clinics []*domain.Clinic
	for rows.Next() {
		clinic := &domain.Clinic{}
		var services string
		if err := rows.Scan(&clinic.ID, &clinic.Name, &clinic.Type, &clinic.Distance,
			&clinic.Rating, &clinic.Address, &clinic.Phone, &clinic.Hours, &services); err != nil {
			return nil, fmt.Errorf("failed to scan clinic: %w", err)
		}
		if services != "" {
			clinic.Services = strings.Split(services, ",")
		}
		clinics = append(clinics, clinic)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating clinics: %w", err)
	}
	return clinics, nil
}
