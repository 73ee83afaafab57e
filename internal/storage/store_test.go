package storage

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRows struct {
	rows [][]any
	idx  int
	err  error
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.idx >= len(r.rows) {
		return false
	}
	r.idx++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	return assignRow(r.rows[r.idx-1], dest)
}

type fakeRow struct {
	row []any
	err error
}

func (r *fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return assignRow(r.row, dest)
}

func assignRow(row []any, dest []any) error {
	for i, d := range dest {
		switch out := d.(type) {
		case *string:
			*out = row[i].(string)
		case *sql.NullInt64:
			if v, ok := row[i].(int64); ok {
				*out = sql.NullInt64{Int64: v, Valid: true}
			} else {
				*out = sql.NullInt64{}
			}
		case *sql.NullFloat64:
			if v, ok := row[i].(float64); ok {
				*out = sql.NullFloat64{Float64: v, Valid: true}
			} else {
				*out = sql.NullFloat64{}
			}
		default:
			return errors.New("unsupported scan destination")
		}
	}
	return nil
}

type fakeQuerier struct {
	rows     *fakeRows
	row      *fakeRow
	queryErr error
}

func (f *fakeQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (f *fakeQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.rows, nil
}

func (f *fakeQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return f.row
}

func TestListTrackedUsers(t *testing.T) {
	db := &fakeQuerier{rows: &fakeRows{rows: [][]any{
		{"u-1", "alice"},
		{"u-2", "bob"},
	}}}

	users, err := NewStore(db).ListTrackedUsers(context.Background())

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "u-1", users[0].UserID)
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, "bob", users[1].Username)
}

func TestListTrackedUsers_Empty(t *testing.T) {
	db := &fakeQuerier{rows: &fakeRows{}}

	users, err := NewStore(db).ListTrackedUsers(context.Background())

	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestListTrackedUsers_QueryError(t *testing.T) {
	db := &fakeQuerier{queryErr: errors.New("connection refused")}

	_, err := NewStore(db).ListTrackedUsers(context.Background())
	require.Error(t, err)
}

func TestGetProblemStats(t *testing.T) {
	db := &fakeQuerier{row: &fakeRow{row: []any{
		"alice", int64(3), int64(2), int64(1), int64(6), 60.0,
	}}}

	rec, err := NewStore(db).GetProblemStats(context.Background(), "u-1")

	require.NoError(t, err)
	assert.Equal(t, "alice", rec.Username)
	assert.Equal(t, 6, rec.TotalSolved)
	require.NotNil(t, rec.AcceptanceRate)
	assert.Equal(t, 60.0, *rec.AcceptanceRate)
}

func TestGetProblemStats_NullRate(t *testing.T) {
	db := &fakeQuerier{row: &fakeRow{row: []any{
		"alice", int64(0), int64(0), int64(0), int64(0), nil,
	}}}

	rec, err := NewStore(db).GetProblemStats(context.Background(), "u-1")

	require.NoError(t, err)
	assert.Nil(t, rec.AcceptanceRate)
}
