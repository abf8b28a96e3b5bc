package session

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore keeps sessions in the sessions table created by pkg/db.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

const (
	selectSession = `SELECT id, data, created_at, expires_at FROM sessions WHERE token = $1`
	upsertSession = `INSERT INTO sessions (token, id, data, created_at, expires_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (token) DO UPDATE SET data = EXCLUDED.data, expires_at = EXCLUDED.expires_at, updated_at = now()`
	deleteSession = `DELETE FROM sessions WHERE token = $1`
)

func (p *PostgresStore) Get(ctx context.Context, token string) (*Session, error) {
	s := Session{Token: token}
	var data []byte
	err := p.pool.QueryRow(ctx, selectSession, token).Scan(&s.ID, &data, &s.CreatedAt, &s.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(data, &s.Values); err != nil {
		return nil, errors.Join(ErrDecode, err)
	}
	if s.IsExpired() {
		return nil, ErrExpired
	}
	return &s, nil
}

func (p *PostgresStore) Save(ctx context.Context, s *Session) error {
	data, err := json.Marshal(s.Values)
	if err != nil {
		return errors.Join(ErrEncode, err)
	}
	if _, err := p.pool.Exec(ctx, upsertSession, s.Token, s.ID, data, s.CreatedAt, s.ExpiresAt); err != nil {
		return err
	}
	s.ClearDirty()
	return nil
}

func (p *PostgresStore) Delete(ctx context.Context, token string) error {
	_, err := p.pool.Exec(ctx, deleteSession, token)
	return err
}
