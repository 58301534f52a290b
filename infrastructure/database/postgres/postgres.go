package postgres

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq"

	"github.com/emanuelkel/dash-delivery-wiz/internal/config"
)

// o pooler do Supabase derruba conexões ociosas antes disso
const connMaxIdleTime = 5 * time.Minute

// Queryer é o que os repositórios de leitura precisam de *sql.DB
type Queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Connection é usada só para leitura das coleções quando SUPABASE_DATABASE_URL está definido
type Connection struct {
	*sql.DB
}

var _ Queryer = (*Connection)(nil)

func NewConnection(ctx context.Context, cfg config.Database) (*Connection, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, err
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MaxOpenConns)
	}
	db.SetConnMaxIdleTime(connMaxIdleTime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Connection{DB: db}, nil
}
