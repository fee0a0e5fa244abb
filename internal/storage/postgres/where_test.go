package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"posyandu/internal/models"
)

func strPtr(s string) *string { return &s }

func TestBuildWhere(t *testing.T) {
	testCases := []struct {
		name       string
		filter     *models.PosyanduFilter
		wantWhere  string
		wantParams []any
	}{
		{
			name:      "nil filter",
			filter:    nil,
			wantWhere: "",
		},
		{
			name:      "empty values are ignored",
			filter:    &models.PosyanduFilter{Name: strPtr(""), Kecamatan: nil},
			wantWhere: "",
		},
		{
			name:       "name only",
			filter:     &models.PosyanduFilter{Name: strPtr("melati")},
			wantWhere:  " WHERE name ILIKE $1",
			wantParams: []any{"%melati%"},
		},
		{
			name: "all fields",
			filter: &models.PosyanduFilter{
				Name:      strPtr("melati"),
				Kecamatan: strPtr("Cibinong"),
				Kelurahan: strPtr("Pakansari"),
			},
			wantWhere:  " WHERE name ILIKE $1 AND kecamatan ILIKE $2 AND kelurahan = $3",
			wantParams: []any{"%melati%", "%Cibinong%", "Pakansari"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			where, params := buildWhere(tc.filter)
			assert.Equal(t, tc.wantWhere, where)
			assert.Equal(t, tc.wantParams, params)
		})
	}
}
