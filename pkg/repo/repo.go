package repo

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Tx is the minimal query surface shared by pgxpool.Pool and pgx.Tx, so
// repositories can run inside or outside an explicit transaction.
type Tx interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Join concatenates non-empty SQL fragments with single spaces.
func Join(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, " ")
}

// JoinWhere builds a WHERE clause AND-ing the given predicates.
func JoinWhere(predicates ...string) string {
	if len(predicates) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(predicates, " AND ")
}

// FormatLimitOffset renders LIMIT/OFFSET, omitting non-positive values.
func FormatLimitOffset(limit, offset int) string {
	if limit > 0 && offset > 0 {
		return fmt.Sprintf("LIMIT %d OFFSET %d", limit, offset)
	}
	if limit > 0 {
		return fmt.Sprintf("LIMIT %d", limit)
	}
	if offset > 0 {
		return fmt.Sprintf("OFFSET %d", offset)
	}
	return ""
}

// BatchPlaceholders renders "($1,$2),($3,$4),..." for a multi-row insert of
// `rows` tuples with `cols` columns each, starting at placeholder $1.
func BatchPlaceholders(rows, cols int) string {
	var b strings.Builder
	placeholder := 1
	for r := 0; r < rows; r++ {
		if r > 0 {
			b.WriteString(", ")
		}
		b.WriteString("(")
		for c := 0; c < cols; c++ {
			if c > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "$%d", placeholder)
			placeholder++
		}
		b.WriteString(")")
	}
	return b.String()
}
