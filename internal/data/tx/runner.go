package tx

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/gradadmin-backend/internal/platform/dbctx"
)

// Runner provides a shared transaction boundary for multi-repo writes. The
// whole status transition (verification update, history append, record
// fan-out) runs inside one InTx so a mid-sequence failure leaves nothing
// half-applied.
type Runner interface {
	InTx(ctx context.Context, fn func(dbc dbctx.Context) error) error
}

type gormRunner struct {
	db *gorm.DB
}

// NewGormRunner returns a transaction runner backed by GORM transactions.
func NewGormRunner(db *gorm.DB) Runner {
	return &gormRunner{db: db}
}

func (r *gormRunner) InTx(ctx context.Context, fn func(dbc dbctx.Context) error) error {
	if fn == nil {
		return nil
	}
	if r == nil || r.db == nil {
		return fmt.Errorf("transaction runner has nil db")
	}
	return r.db.WithContext(ctx).Transaction(func(t *gorm.DB) error {
		return fn(dbctx.Context{Ctx: ctx, Tx: t})
	})
}
