package persistence

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/campuskit/campuskit/pkg/serrors"
)

// mapPgError folds driver-level failures into the service error
// taxonomy. Anything unrecognized passes through unchanged.
func mapPgError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return serrors.NewNotFound("org_unit_not_found", "org unit not found").WithCause(err)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case "23505": // unique_violation
		switch pgErr.ConstraintName {
		case "org_units_tenant_id_code_key":
			return serrors.NewConflict("org_unit_code_conflict", "code already exists").WithCause(err)
		default:
			return serrors.NewConflict("org_unit_conflict", "unique constraint violated").WithCause(err)
		}
	case "23503": // foreign_key_violation
		return serrors.NewValidation("org_unit_invalid_reference", "referenced record does not exist").WithCause(err)
	default:
		return err
	}
}
