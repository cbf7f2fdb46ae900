package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// Transactor runs a unit of work inside a single serializable transaction on
// the write pool.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context, tx *sqlx.Tx) error) error
}

type transactorImpl struct {
	db *Connection
}

func NewTransactor(db *Connection) Transactor {
	return &transactorImpl{db: db}
}

// WithinTransaction commits when fn returns nil and rolls back otherwise.
// The error returned by fn is passed through unwrapped.
func (t *transactorImpl) WithinTransaction(ctx context.Context, fn func(ctx context.Context, tx *sqlx.Tx) error) (err error) {
	tx, err := t.db.Write.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		log.Error().Err(err).Msg("failed to begin transaction")

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()

			panic(p)
		}
	}()

	if err = fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Error().Err(rbErr).Msg("failed to rollback transaction")
		}

		return err
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit transaction")

		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
