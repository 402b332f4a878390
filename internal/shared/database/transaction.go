package database

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// TxFunc runs inside a transaction; a non-nil error rolls it back
type TxFunc func(tx *gorm.DB) error

var errNilTxFunc = errors.New("database: transaction function is nil")

// WithTransaction runs fn in a transaction bound to ctx. Called on a tx it
// nests through a savepoint.
//
//	err := database.WithTransaction(ctx, db, func(tx *gorm.DB) error {
//	    return tx.Create(member).Error
//	})
func WithTransaction(ctx context.Context, db *gorm.DB, fn TxFunc) error {
	if fn == nil {
		return errNilTxFunc
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return db.WithContext(ctx).Transaction(fn)
}
