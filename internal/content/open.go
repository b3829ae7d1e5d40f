package content

import (
	"context"
	"fmt"

	"github.com/lucasaraujonrt/portfolio/internal/database"
	"github.com/lucasaraujonrt/portfolio/internal/models"
)

// Options describes which store to open
type Options struct {
	Kind        Kind
	File        string // optional YAML file replacing the built-in content
	SQLitePath  string
	DatabaseURL string
}

// Source returns the content a store should be seeded with
func (o Options) Source() (models.Content, error) {
	if o.File == "" {
		return Seed(), nil
	}
	return LoadFile(o.File)
}

// Open builds the configured store. SQL stores are seeded when empty.
func Open(ctx context.Context, opts Options) (Store, error) {
	src, err := opts.Source()
	if err != nil {
		return nil, err
	}

	switch opts.Kind {
	case KindMemory, "":
		return NewMemoryStore(src), nil

	case KindSQLite:
		db, err := database.OpenSQLite(opts.SQLitePath)
		if err != nil {
			return nil, err
		}
		store := NewSQLStore(db, DialectSQLite)
		if err := store.Seed(ctx, src); err != nil {
			store.Close()
			return nil, fmt.Errorf("seeding sqlite store: %w", err)
		}
		return store, nil

	case KindPostgres:
		db, err := database.Open(opts.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		// schema is owned by `portfolio migrate`; seeding happens there too
		return NewSQLStore(db, DialectPostgres), nil

	default:
		return nil, fmt.Errorf("unknown content store %q", opts.Kind)
	}
}
