package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"posyandu/internal/lib/logger/utils"
	"posyandu/internal/models"
	"posyandu/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// DB is satisfied by both *pgx.Conn and *pgxpool.Pool.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const posyanduColumns = `id, name, address, kelurahan, kecamatan, created_at, updated_at`

type PgStorage struct {
	db DB
}

func NewPgStorage(db DB) *PgStorage {
	return &PgStorage{db: db}
}

var _ storage.PosyanduStorage = (*PgStorage)(nil)

func scanPosyandu(row pgx.Row, p *models.Posyandu) error {
	return row.Scan(&p.ID, &p.Name, &p.Address, &p.Kelurahan, &p.Kecamatan, &p.CreatedAt, &p.UpdatedAt)
}

func (s *PgStorage) Create(ctx context.Context, posyandu *models.Posyandu) (*models.Posyandu, error) {
	query := `
        INSERT INTO posyandu (name, address, kelurahan, kecamatan)
        VALUES ($1, $2, $3, $4)
        RETURNING ` + posyanduColumns

	var created models.Posyandu
	err := scanPosyandu(s.db.QueryRow(ctx, query, posyandu.Name, posyandu.Address, posyandu.Kelurahan, posyandu.Kecamatan), &created)
	if err != nil {
		utils.Logger.Error("PgStorage.Create - queryRow failed", zap.Error(err))
		return nil, fmt.Errorf("PgStorage.Create - queryRow failed: %w", err)
	}
	return &created, nil
}

func (s *PgStorage) GetByID(ctx context.Context, id int) (*models.Posyandu, error) {
	query := `SELECT ` + posyanduColumns + ` FROM posyandu WHERE id = $1`

	var posyandu models.Posyandu
	err := scanPosyandu(s.db.QueryRow(ctx, query, id), &posyandu)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrPosyanduNotFound
		}
		utils.Logger.Error("PgStorage.GetByID - queryRow failed", zap.Error(err), zap.Int("id", id))
		return nil, fmt.Errorf("PgStorage.GetByID - queryRow failed: %w", err)
	}
	return &posyandu, nil
}

// buildWhere renders the filter as a WHERE clause with positional params.
func buildWhere(filter *models.PosyanduFilter) (string, []any) {
	var (
		conds  []string
		params []any
	)
	add := func(cond string, param any) {
		params = append(params, param)
		conds = append(conds, fmt.Sprintf(cond, len(params)))
	}

	if filter != nil {
		if filter.Name != nil && *filter.Name != "" {
			add("name ILIKE $%d", "%"+*filter.Name+"%")
		}
		if filter.Kecamatan != nil && *filter.Kecamatan != "" {
			add("kecamatan ILIKE $%d", "%"+*filter.Kecamatan+"%")
		}
		if filter.Kelurahan != nil && *filter.Kelurahan != "" {
			add("kelurahan = $%d", *filter.Kelurahan)
		}
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), params
}

func (s *PgStorage) List(ctx context.Context, filter *models.PosyanduFilter, pagination *models.Pagination) ([]models.Posyandu, int, error) {
	where, params := buildWhere(filter)

	var total int
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM posyandu`+where, params...).Scan(&total); err != nil {
		utils.Logger.Error("PgStorage.List - count failed", zap.Error(err), zap.Any("filter", filter))
		return nil, 0, fmt.Errorf("PgStorage.List - count failed: %w", err)
	}

	query := `SELECT ` + posyanduColumns + ` FROM posyandu` + where +
		fmt.Sprintf(" ORDER BY id LIMIT %d OFFSET %d", pagination.GetLimit(), pagination.GetOffset())

	rows, err := s.db.Query(ctx, query, params...)
	if err != nil {
		utils.Logger.Error("PgStorage.List - query failed", zap.Error(err), zap.Any("filter", filter), zap.Any("pagination", pagination))
		return nil, 0, fmt.Errorf("PgStorage.List - query failed: %w", err)
	}
	defer rows.Close()

	items := []models.Posyandu{}
	for rows.Next() {
		var posyandu models.Posyandu
		if err := scanPosyandu(rows, &posyandu); err != nil {
			utils.Logger.Error("PgStorage.List - rows.Scan failed", zap.Error(err))
			return nil, 0, fmt.Errorf("PgStorage.List - rows.Scan failed: %w", err)
		}
		items = append(items, posyandu)
	}

	if err := rows.Err(); err != nil {
		utils.Logger.Error("PgStorage.List - rows.Err failed", zap.Error(err))
		return nil, 0, fmt.Errorf("PgStorage.List - rows.Err failed: %w", err)
	}

	return items, total, nil
}

func (s *PgStorage) Update(ctx context.Context, posyandu *models.Posyandu) (*models.Posyandu, error) {
	query := `
        UPDATE posyandu
        SET name = $1, address = $2, kelurahan = $3, kecamatan = $4, updated_at = CURRENT_TIMESTAMP
        WHERE id = $5
        RETURNING ` + posyanduColumns

	var updated models.Posyandu
	err := scanPosyandu(s.db.QueryRow(ctx, query,
		posyandu.Name, posyandu.Address, posyandu.Kelurahan, posyandu.Kecamatan, posyandu.ID,
	), &updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrPosyanduNotFound
		}
		utils.Logger.Error("PgStorage.Update - queryRow failed", zap.Error(err), zap.Int("id", posyandu.ID))
		return nil, fmt.Errorf("PgStorage.Update - queryRow failed: %w", err)
	}
	return &updated, nil
}

func (s *PgStorage) Delete(ctx context.Context, id int) error {
	result, err := s.db.Exec(ctx, "DELETE FROM posyandu WHERE id = $1", id)
	if err != nil {
		utils.Logger.Error("PgStorage.Delete - exec failed", zap.Error(err), zap.Int("id", id))
		return fmt.Errorf("PgStorage.Delete - exec failed: %w", err)
	}
	if result.RowsAffected() == 0 {
		return storage.ErrPosyanduNotFound
	}
	return nil
}
