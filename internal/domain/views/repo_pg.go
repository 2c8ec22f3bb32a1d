package views

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/evalhub/evalhub/internal/platform/odata"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const viewCols = `id, name, entity, owner_id, shared, filter, sort, created_at, updated_at`

func scanView(row pgx.Row) (*View, error) {
	var (
		v      View
		filter []byte
		sort   []byte
	)
	err := row.Scan(&v.ID, &v.Name, &v.Entity, &v.OwnerID, &v.Shared,
		&filter, &sort, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if len(filter) > 0 {
		if err := json.Unmarshal(filter, &v.Filter); err != nil {
			return nil, fmt.Errorf("decode filter: %w", err)
		}
	}
	if len(sort) > 0 {
		if err := json.Unmarshal(sort, &v.Sort); err != nil {
			return nil, fmt.Errorf("decode sort: %w", err)
		}
	}
	return &v, nil
}

func encodeView(v *View) (filter, sort []byte, err error) {
	filter, err = json.Marshal(v.Filter)
	if err != nil {
		return nil, nil, fmt.Errorf("encode filter: %w", err)
	}
	if v.Sort == nil {
		v.Sort = []odata.SortItem{}
	}
	sort, err = json.Marshal(v.Sort)
	if err != nil {
		return nil, nil, fmt.Errorf("encode sort: %w", err)
	}
	return filter, sort, nil
}

func (r *repoPG) Create(ctx context.Context, v *View) error {
	v.ID = uuid.New()
	filter, sort, err := encodeView(v)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO grid_view (id, name, entity, owner_id, shared, filter, sort)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		v.ID, v.Name, v.Entity, v.OwnerID, v.Shared, filter, sort)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*View, error) {
	return scanView(r.pool.QueryRow(ctx, `SELECT `+viewCols+` FROM grid_view WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, v *View) error {
	filter, sort, err := encodeView(v)
	if err != nil {
		return err
	}
	tag, err := r.pool.Exec(ctx, `
		UPDATE grid_view SET name=$2, shared=$3, filter=$4, sort=$5, updated_at=NOW()
		WHERE id = $1`,
		v.ID, v.Name, v.Shared, filter, sort)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM grid_view WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) ListForOwner(ctx context.Context, ownerID, entity string, limit, offset int) ([]*View, int, error) {
	where := `WHERE (owner_id = $1 OR shared)`
	args := []interface{}{ownerID}
	if entity != "" {
		where += ` AND entity = $2`
		args = append(args, entity)
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM grid_view `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT %s FROM grid_view %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		viewCols, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*View
	for rows.Next() {
		v, err := scanView(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, v)
	}
	return items, total, rows.Err()
}
