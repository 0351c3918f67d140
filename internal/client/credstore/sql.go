package credstore

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/vehiclehub/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/vehiclehub/internal/dbx"
	"github.com/dmitrijs2005/vehiclehub/internal/logging"
)

// SQLStore keeps credentials in the metadata table of the local database.
type SQLStore struct {
	db   *sql.DB
	repo metadata.Repository
	log  logging.Logger
}

func NewSQLStore(db *sql.DB, log logging.Logger) *SQLStore {
	return &SQLStore{
		db:   db,
		repo: metadata.NewSQLiteRepository(db),
		log:  log.With("component", "credstore"),
	}
}

func (s *SQLStore) Load(ctx context.Context, key string) (string, bool) {
	v, err := s.repo.Get(ctx, key)
	if err != nil {
		s.log.Warn(ctx, "credential load failed", "key", key, "error", err)
		return "", false
	}
	if v == nil {
		return "", false
	}
	return string(v), true
}

func (s *SQLStore) Save(ctx context.Context, key, value string) {
	if err := s.repo.Set(ctx, key, []byte(value)); err != nil {
		s.log.Warn(ctx, "credential save failed", "key", key, "error", err)
	}
}

func (s *SQLStore) Clear(ctx context.Context, key string) {
	if err := s.repo.Delete(ctx, key); err != nil {
		s.log.Warn(ctx, "credential clear failed", "key", key, "error", err)
	}
}

// SaveAll writes every pair in one transaction; either all of them land or
// none do.
func (s *SQLStore) SaveAll(ctx context.Context, values map[string]string) {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		for k, v := range values {
			if err := repo.Set(ctx, k, []byte(v)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.log.Warn(ctx, "credential save failed", "keys", len(values), "error", err)
	}
}

// ClearAll removes every key in one transaction.
func (s *SQLStore) ClearAll(ctx context.Context, keys ...string) {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		for _, k := range keys {
			if err := repo.Delete(ctx, k); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.log.Warn(ctx, "credential clear failed", "keys", len(keys), "error", err)
	}
}
