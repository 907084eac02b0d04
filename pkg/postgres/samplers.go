package postgres

import (
	"context"
	"fmt"

	"github.com/portside-labs/vessel-ops/pkg/db"
)

// GetSamplers retrieves all sampler records ordered by name
func (d *DB) GetSamplers(ctx context.Context) ([]db.Sampler, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name, email, phone, has_24_hour_restriction, restricted_days, is_active
		FROM sampler
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query samplers: %w", err)
	}
	defer rows.Close()

	var samplers []db.Sampler
	for rows.Next() {
		var s db.Sampler
		var email, phone *string
		var restrictedDays []int32
		if err := rows.Scan(&s.ID, &s.Name, &email, &phone, &s.Has24HourRestriction, &restrictedDays, &s.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan sampler: %w", err)
		}
		if email != nil {
			s.Email = *email
		}
		if phone != nil {
			s.Phone = *phone
		}
		s.RestrictedDays = make([]int, len(restrictedDays))
		for i, day := range restrictedDays {
			s.RestrictedDays[i] = int(day)
		}
		samplers = append(samplers, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating samplers: %w", err)
	}

	return samplers, nil
}
