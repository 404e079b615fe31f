package repo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"tirecatalog/src/core/domain"
	"tirecatalog/src/core/ports"
	"tirecatalog/src/infra/db"
)

// tireColumns is the fixed select list, kept in scan order.
const tireColumns = `id, brand, model, size, layer_index, layers,
		max_pressure, min_pressure, max_depth, min_depth, wear_type,
		profitability, performance, temperature, speed, speed_number,
		braking, load_type, _load, road_type, terrain_type, position,
		created_at, updated_at`

const conflictMessage = "A tire with this brand, model, size, and position already exists"

// PostgresTireRepository implements ports.TireRepository using pgx.
type PostgresTireRepository struct {
	db  *db.Postgres
	log *slog.Logger
}

// NewPostgresTireRepository constructs a repository backed by Postgres.
func NewPostgresTireRepository(pg *db.Postgres, log *slog.Logger) *PostgresTireRepository {
	return &PostgresTireRepository{
		db:  pg,
		log: log,
	}
}

var _ ports.TireRepository = (*PostgresTireRepository)(nil)

func (r *PostgresTireRepository) Health(ctx context.Context) error {
	return r.db.Health(ctx)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

// buildListQueries renders the count and data statements for a list request.
// Condition order is fixed (search, brand, model, size, position) for
// readable SQL; correctness does not depend on it since fragments AND-join.
// The data statement reuses the filter values and appends limit and offset
// as two more bound parameters.
func buildListQueries(filter domain.TireFilter, page domain.PageRequest) (countSQL, dataSQL string, countArgs, dataArgs []any) {
	b := &whereBuilder{}

	if filter.Search != "" {
		// One wrapped value bound once per occurrence.
		term := "%" + filter.Search + "%"
		b.and(fmt.Sprintf("(brand ILIKE %s OR model ILIKE %s OR size ILIKE %s)",
			b.bind(term), b.bind(term), b.bind(term)))
	}
	if filter.Brand != "" {
		b.and("brand = " + b.bind(filter.Brand))
	}
	if filter.Model != "" {
		b.and("model = " + b.bind(filter.Model))
	}
	if filter.Size != "" {
		b.and("size = " + b.bind(filter.Size))
	}
	if filter.Position != "" {
		b.and("position = " + b.bind(filter.Position))
	}

	clause := b.clause()
	countSQL = "SELECT COUNT(*) FROM tires_catalog" + clause
	countArgs = append([]any(nil), b.args...)

	dataSQL = fmt.Sprintf("SELECT %s FROM tires_catalog%s ORDER BY id DESC LIMIT %s OFFSET %s",
		tireColumns, clause, b.bind(page.Limit), b.bind(page.Offset()))
	dataArgs = b.args

	return countSQL, dataSQL, countArgs, dataArgs
}

// ListTires runs the count statement and then the data statement, holding a
// pooled connection for each round trip in turn.
func (r *PostgresTireRepository) ListTires(ctx context.Context, filter domain.TireFilter, page domain.PageRequest) (*ports.TireList, error) {
	countSQL, dataSQL, countArgs, dataArgs := buildListQueries(filter, page)

	var total int
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, dataSQL, dataArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tires []domain.Tire
	for rows.Next() {
		t, err := scanTire(rows)
		if err != nil {
			return nil, err
		}
		tires = append(tires, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &ports.TireList{Tires: tires, Total: total}, nil
}

func (r *PostgresTireRepository) GetTireByID(ctx context.Context, id int64) (*domain.Tire, error) {
	q := fmt.Sprintf("SELECT %s FROM tires_catalog WHERE id = $1", tireColumns)
	t, err := scanTire(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("tire")
		}
		return nil, err
	}
	return t, nil
}

func (r *PostgresTireRepository) CreateTire(ctx context.Context, tire *domain.Tire) (int64, error) {
	const q = `
		INSERT INTO tires_catalog (
			brand, model, size, layer_index, layers, max_pressure, min_pressure,
			max_depth, min_depth, wear_type, profitability, performance,
			temperature, speed, speed_number, braking, load_type, _load,
			road_type, terrain_type, position
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21)
		RETURNING id
	`
	var id int64
	if err := r.db.QueryRow(ctx, q, writeArgs(tire)...).Scan(&id); err != nil {
		if isUniqueViolation(err) {
			return 0, domain.NewConflictError(conflictMessage)
		}
		return 0, err
	}
	return id, nil
}

func (r *PostgresTireRepository) UpdateTire(ctx context.Context, id int64, tire *domain.Tire) error {
	const q = `
		UPDATE tires_catalog SET
			brand = $1, model = $2, size = $3, layer_index = $4, layers = $5,
			max_pressure = $6, min_pressure = $7, max_depth = $8, min_depth = $9,
			wear_type = $10, profitability = $11, performance = $12,
			temperature = $13, speed = $14, speed_number = $15, braking = $16,
			load_type = $17, _load = $18, road_type = $19, terrain_type = $20,
			position = $21,
			updated_at = (extract(epoch FROM now()) * 1000)::bigint
		WHERE id = $22
	`
	res, err := r.db.Exec(ctx, q, append(writeArgs(tire), id)...)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewConflictError(conflictMessage)
		}
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.NewNotFoundError("tire")
	}
	return nil
}

func (r *PostgresTireRepository) DeleteTire(ctx context.Context, id int64) error {
	res, err := r.db.Exec(ctx, `DELETE FROM tires_catalog WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.NewNotFoundError("tire")
	}
	return nil
}

func (r *PostgresTireRepository) GetFilterFacets(ctx context.Context) (*domain.FilterFacets, error) {
	facets := &domain.FilterFacets{}

	for _, f := range []struct {
		query string
		dst   *[]string
	}{
		{`SELECT DISTINCT brand FROM tires_catalog ORDER BY brand`, &facets.Brands},
		{`SELECT DISTINCT model FROM tires_catalog ORDER BY model`, &facets.Models},
		{`SELECT DISTINCT size FROM tires_catalog ORDER BY size`, &facets.Sizes},
		{`SELECT DISTINCT position FROM tires_catalog WHERE position IS NOT NULL ORDER BY position`, &facets.Positions},
	} {
		values, err := r.queryStrings(ctx, f.query)
		if err != nil {
			return nil, err
		}
		*f.dst = values
	}

	return facets, nil
}

func (r *PostgresTireRepository) queryStrings(ctx context.Context, q string) ([]string, error) {
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

// writeArgs enumerates every mutable column in statement order. Optional
// fields that were absent from the request carry their documented defaults
// here (nil for categorical text, zero for numerics), so a write always
// sets every column.
func writeArgs(t *domain.Tire) []any {
	return []any{
		t.Brand, t.Model, t.Size, t.LayerIndex, t.Layers,
		t.MaxPressure, t.MinPressure, t.MaxDepth, t.MinDepth,
		t.WearType, t.Profitability, t.Performance,
		t.Temperature, t.Speed, t.SpeedNumber, t.Braking,
		t.LoadType, t.LoadValue, t.RoadType, t.TerrainType, t.Position,
	}
}

func scanTire(row pgx.Row) (*domain.Tire, error) {
	var t domain.Tire
	err := row.Scan(
		&t.ID, &t.Brand, &t.Model, &t.Size, &t.LayerIndex, &t.Layers,
		&t.MaxPressure, &t.MinPressure, &t.MaxDepth, &t.MinDepth, &t.WearType,
		&t.Profitability, &t.Performance, &t.Temperature, &t.Speed, &t.SpeedNumber,
		&t.Braking, &t.LoadType, &t.LoadValue, &t.RoadType, &t.TerrainType, &t.Position,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
