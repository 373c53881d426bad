package composables

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/campuskit/campuskit/pkg/configuration"
	"github.com/campuskit/campuskit/pkg/constants"
)

// InTenantTx joins an existing transaction when one is already on the
// context, otherwise it opens a new one. Either way the tenant RLS
// setting is applied before fn runs.
func InTenantTx(ctx context.Context, fn func(context.Context) error) error {
	if existing, ok := ctx.Value(constants.TxKey).(pgx.Tx); ok && existing != nil {
		if err := applyTenantRLS(ctx, existing); err != nil {
			return err
		}
		return fn(ctx)
	}

	pool, err := UsePool(ctx)
	if err != nil {
		return err
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}

	txCtx := WithTx(ctx, tx)
	if err := applyTenantRLS(txCtx, tx); err != nil {
		return rollbackJoin(ctx, tx, err)
	}
	if err := fn(txCtx); err != nil {
		return rollbackJoin(ctx, tx, err)
	}
	return tx.Commit(ctx)
}

// InTenantTxResult is InTenantTx for callers that produce a value.
func InTenantTxResult[T any](ctx context.Context, fn func(context.Context) (T, error)) (T, error) {
	var out T
	err := InTenantTx(ctx, func(txCtx context.Context) error {
		var innerErr error
		out, innerErr = fn(txCtx)
		return innerErr
	})
	return out, err
}

// applyTenantRLS pins the context tenant on the transaction through the
// app.current_tenant setting. A no-op unless RLS_ENFORCE=enforce.
func applyTenantRLS(ctx context.Context, tx pgx.Tx) error {
	if configuration.Use().RLSEnforce != "enforce" {
		return nil
	}
	tenantID, err := UseTenantID(ctx)
	if err != nil {
		return fmt.Errorf("rls requires tenant in context: %w", err)
	}
	if _, err := tx.Exec(ctx, "SELECT set_config('app.current_tenant', $1, true)", tenantID.String()); err != nil {
		return fmt.Errorf("failed to set rls tenant context: %w", err)
	}
	return nil
}

func rollbackJoin(ctx context.Context, tx pgx.Tx, err error) error {
	if rErr := tx.Rollback(ctx); rErr != nil {
		return errors.Join(err, rErr)
	}
	return err
}
