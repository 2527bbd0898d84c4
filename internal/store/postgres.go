package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hrms-dev/hrms_service/internal/entity"
)

// DB is the subset of pgx.Conn the postgres backend needs.
type DB interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

// Migrate creates the single record table. Every collection shares it,
// seq preserves insertion order across restarts.
func Migrate(ctx context.Context, db DB) error {
	query := `CREATE TABLE IF NOT EXISTS hr_records (
                  collection text NOT NULL,
                  id         text NOT NULL,
                  data       jsonb NOT NULL,
                  seq        bigserial,
                  PRIMARY KEY (collection, id)
              )`

	if _, err := db.Exec(ctx, query); err != nil {
		return fmt.Errorf("migrate hr_records: %w", err)
	}

	return nil
}

type postgresCollection[T any] struct {
	db   DB
	name string
}

func newPostgresCollection[T any](db DB, name string) *postgresCollection[T] {
	return &postgresCollection[T]{db: db, name: name}
}

func (c *postgresCollection[T]) List(ctx context.Context) ([]T, error) {
	rows, err := c.db.Query(ctx, "SELECT data FROM hr_records WHERE collection = $1 ORDER BY seq", c.name)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", c.name, err)
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan %s: %w", c.name, err)
		}

		var rec T
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("decode %s record: %w", c.name, err)
		}
		out = append(out, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list %s: %w", c.name, err)
	}

	return out, nil
}

func (c *postgresCollection[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T

	var raw []byte
	err := c.db.QueryRow(ctx, "SELECT data FROM hr_records WHERE collection = $1 AND id = $2", c.name, id).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return zero, ErrNotFound
	}
	if err != nil {
		return zero, fmt.Errorf("get %s/%s: %w", c.name, id, err)
	}

	var rec T
	if err := json.Unmarshal(raw, &rec); err != nil {
		return zero, fmt.Errorf("decode %s/%s: %w", c.name, id, err)
	}

	return rec, nil
}

func (c *postgresCollection[T]) Put(ctx context.Context, id string, rec T) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode %s/%s: %w", c.name, id, err)
	}

	query := `INSERT INTO hr_records (collection, id, data) VALUES ($1, $2, $3)
              ON CONFLICT (collection, id) DO UPDATE SET data = EXCLUDED.data`

	if _, err := c.db.Exec(ctx, query, c.name, id, raw); err != nil {
		return fmt.Errorf("put %s/%s: %w", c.name, id, err)
	}

	return nil
}

func (c *postgresCollection[T]) Delete(ctx context.Context, id string) error {
	tag, err := c.db.Exec(ctx, "DELETE FROM hr_records WHERE collection = $1 AND id = $2", c.name, id)
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", c.name, id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// NewPostgresStore returns the durable backend over the shared record
// table. Call Migrate first.
func NewPostgresStore(db DB) *Store {
	return &Store{
		Users:         newPostgresCollection[entity.User](db, KeyUsers),
		Attendance:    newPostgresCollection[entity.AttendanceRecord](db, KeyAttendance),
		Leaves:        newPostgresCollection[entity.LeaveRequest](db, KeyLeaves),
		Payroll:       newPostgresCollection[entity.PayrollRecord](db, KeyPayroll),
		Files:         newPostgresCollection[entity.UploadedFile](db, KeyFiles),
		Announcements: newPostgresCollection[entity.Announcement](db, KeyAnnouncements),
	}
}
