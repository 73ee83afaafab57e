package storage

import (
	"context"
	"fmt"

	model "github.com/Kart8ik/LeetCode-Analytics-Platform/internal/models"
	"github.com/Kart8ik/LeetCode-Analytics-Platform/internal/scanner"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Execer est la surface minimale d'écriture, satisfaite par *pgxpool.Pool.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Querier ajoute la lecture, toujours satisfaite par *pgxpool.Pool.
type Querier interface {
	Execer
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store lit la liste des utilisateurs suivis depuis la table users.
type Store struct {
	db Querier
}

func NewStore(db Querier) *Store {
	return &Store{db: db}
}

// ListTrackedUsers renvoie tous les utilisateurs connus (user_id + username).
func (s *Store) ListTrackedUsers(ctx context.Context) ([]model.TrackedUser, error) {
	rows, err := s.db.Query(ctx, `SELECT user_id, username FROM users ORDER BY username`)
	if err != nil {
		return nil, fmt.Errorf("could not query tracked users: %w", err)
	}
	defer rows.Close()

	var users []model.TrackedUser
	for rows.Next() {
		u, err := scanner.ScanTrackedUser(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan tracked user row: %w", err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("tracked users iteration failed: %w", err)
	}

	return users, nil
}

// GetProblemStats relit les compteurs stockés pour un utilisateur.
func (s *Store) GetProblemStats(ctx context.Context, userID string) (*model.UserRecord, error) {
	row := s.db.QueryRow(ctx,
		`SELECT u.username, p.easy_solved, p.medium_solved, p.hard_solved, p.total_solved, p.acceptance_rate
		 FROM problem_stats p
		 JOIN users u ON u.user_id = p.user_id
		 WHERE p.user_id = $1`,
		userID,
	)

	rec, err := scanner.ScanProblemStats(row)
	if err != nil {
		return nil, fmt.Errorf("could not read problem stats: %w", err)
	}
	return rec, nil
}
