package database

import (
	"context"

	"gorm.io/gorm"
)

type txKey struct{}

// WithTx returns a context carrying the given transaction handle.
func WithTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// FromContext returns the transaction bound to ctx, or fallback when the call
// runs outside a request scope (tests, startup tasks).
func FromContext(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return fallback
}

// TxManager opens the single logical transaction scope that surrounds each
// request: commit when fn returns nil, rollback otherwise. A repository
// called inside fn joins the same transaction via FromContext. Do itself
// joins too: called under an existing scope it continues that transaction
// (a gorm savepoint) instead of opening a second one on another connection.
type TxManager struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return FromContext(ctx, m.db).WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(WithTx(ctx, tx))
	})
}
