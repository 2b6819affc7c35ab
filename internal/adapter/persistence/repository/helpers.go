package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"agency_backoffice/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type txKey struct{}

// GormTransactor implements interfaces.ITransactor on top of gorm.
//
// The open transaction travels in the context; nested calls join it instead of
// opening a second one.
type GormTransactor struct {
	db *gorm.DB
}

var _ interfaces.ITransactor = (*GormTransactor)(nil)

func NewGormTransactor(db *gorm.DB) *GormTransactor {
	return &GormTransactor{db: db}
}

func (t *GormTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// conn returns the transaction bound to ctx, or the root handle.
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok && tx != nil {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}

// translate maps driver errors onto the interfaces sentinels.
func translate(err error, what string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%s: %w", what, interfaces.ErrDuplicateKey)
	}
	return fmt.Errorf("%s: %w", what, err)
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func utcNow() time.Time {
	return time.Now().UTC()
}
