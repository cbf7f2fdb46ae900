package mocks

import (
	"context"
	"roombook/infras/postgres"

	"github.com/jmoiron/sqlx"
)

type transactorImpl struct {
}

// WithinTransaction implements postgres.Transactor without a database. fn
// receives a nil transaction.
func (t *transactorImpl) WithinTransaction(ctx context.Context, fn func(ctx context.Context, tx *sqlx.Tx) error) error {
	return fn(ctx, nil)
}

func NewTransactor() postgres.Transactor {
	return &transactorImpl{}
}
