package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/xid"

	"github.com/sakif/travel-blog/internal/apperror"
	"github.com/sakif/travel-blog/internal/model"
	"github.com/sakif/travel-blog/internal/repository"
)

var _ repository.DestinationRepository = (*DestinationDB)(nil)

// DestinationDB stores destinations in the destinations table.
type DestinationDB struct {
	conn *sql.DB
}

func (d *DestinationDB) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := d.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM destinations`).Scan(&n); err != nil {
		return 0, fmt.Errorf("sqlite: counting destinations: %w", err)
	}
	return n, nil
}

// InsertMany inserts every destination in one transaction so a failed seed
// leaves the table empty and the next boot retries it.
func (d *DestinationDB) InsertMany(ctx context.Context, destinations []model.Destination) error {
	tx, err := d.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite: beginning destination insert: %w", err)
	}
	defer tx.Rollback() // no-op after Commit

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO destinations (id, title, description, img_src, is_popular)
		 VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("sqlite: preparing destination insert: %w", err)
	}
	defer stmt.Close()

	ids := make([]string, len(destinations))
	for i := range destinations {
		dest := &destinations[i]
		ids[i] = xid.New().String()
		if _, err := stmt.ExecContext(ctx,
			ids[i],
			dest.Title,
			dest.Description,
			dest.ImgSrc,
			dest.IsPopular,
		); err != nil {
			return fmt.Errorf("sqlite: inserting destination %q: %w", dest.Title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite: committing destinations: %w", err)
	}

	for i := range destinations {
		destinations[i].ID = ids[i]
	}
	return nil
}

func (d *DestinationDB) List(ctx context.Context, filter repository.DestinationFilter) ([]model.Destination, error) {
	query := `SELECT id, title, description, img_src, is_popular FROM destinations`
	if filter.PopularOnly {
		query += ` WHERE is_popular = 1`
	}
	query += ` ORDER BY rowid`

	rows, err := d.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing destinations: %w", err)
	}
	// rows MUST be closed or the connection never returns to the pool.
	defer rows.Close()

	// Start with an empty slice, not nil, so the JSON encoding is [] rather than null.
	destinations := []model.Destination{}
	for rows.Next() {
		var dest model.Destination
		if err := rows.Scan(&dest.ID, &dest.Title, &dest.Description, &dest.ImgSrc, &dest.IsPopular); err != nil {
			return nil, fmt.Errorf("sqlite: scanning destination: %w", err)
		}
		destinations = append(destinations, dest)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating destinations: %w", err)
	}

	return destinations, nil
}

func (d *DestinationDB) GetByID(ctx context.Context, id string) (*model.Destination, error) {
	if !validID(id) {
		return nil, apperror.NotFound("destination", id)
	}

	var dest model.Destination
	err := d.conn.QueryRowContext(ctx,
		`SELECT id, title, description, img_src, is_popular FROM destinations WHERE id = ?`,
		id,
	).Scan(&dest.ID, &dest.Title, &dest.Description, &dest.ImgSrc, &dest.IsPopular)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("destination", id)
		}
		return nil, fmt.Errorf("sqlite: getting destination %s: %w", id, err)
	}

	return &dest, nil
}
