package application

import (
	"context"
	"fmt"
	"io/fs"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/pressly/goose/v3/database"
)

type schemaSource struct {
	module string
	fsys   fs.FS
	dir    string
}

// MigrationManager applies module schemas in registration order. Each
// module gets its own goose tracking table so version numbers never
// collide across modules.
type MigrationManager interface {
	RegisterSchema(module string, fsys fs.FS, dir string)
	Up(ctx context.Context) error
	Down(ctx context.Context) error
}

func NewMigrationManager(pool *pgxpool.Pool) MigrationManager {
	return &migrationManager{pool: pool}
}

type migrationManager struct {
	pool    *pgxpool.Pool
	sources []schemaSource
}

func (m *migrationManager) RegisterSchema(module string, fsys fs.FS, dir string) {
	m.sources = append(m.sources, schemaSource{module: module, fsys: fsys, dir: dir})
}

func (m *migrationManager) Up(ctx context.Context) error {
	return m.run(ctx, func(p *goose.Provider) error {
		_, err := p.Up(ctx)
		return err
	})
}

func (m *migrationManager) Down(ctx context.Context) error {
	return m.run(ctx, func(p *goose.Provider) error {
		_, err := p.DownTo(ctx, 0)
		return err
	})
}

// trackingTable derives the per-module goose table name. Modules can
// share an on-disk schema dir layout; the module name is what keys the
// version history.
func trackingTable(module string) string {
	sanitized := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '_'
		}
	}, module)
	return "goose_version_" + sanitized
}

func (m *migrationManager) run(ctx context.Context, fn func(*goose.Provider) error) error {
	db := stdlib.OpenDBFromPool(m.pool)
	defer func() { _ = db.Close() }()

	for _, src := range m.sources {
		sub, err := fs.Sub(src.fsys, src.dir)
		if err != nil {
			return fmt.Errorf("schema dir %q: %w", src.dir, err)
		}
		store, err := database.NewStore(database.DialectPostgres, trackingTable(src.module))
		if err != nil {
			return fmt.Errorf("goose store for %q: %w", src.module, err)
		}
		provider, err := goose.NewProvider("", db, sub, goose.WithStore(store))
		if err != nil {
			return fmt.Errorf("goose provider for %q: %w", src.module, err)
		}
		if err := fn(provider); err != nil {
			return fmt.Errorf("migrate %q: %w", src.module, err)
		}
	}
	return nil
}
