package db

import (
	"database/sql"
	"fmt"

	// Registers the "pgx" driver with database/sql for the migration run.
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Migrate executes all pending goose migrations against the database.
//
// goose works on database/sql, so the pool's configuration is bridged
// through pgx's stdlib adapter for the duration of the migration run.
func (p *Postgres) Migrate() error {
	conn, err := sql.Open("pgx", p.cfg.DSN())
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer conn.Close()

	goose.SetBaseFS(EmbedMigrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose set dialect: %w", err)
	}

	if err := goose.Up(conn, "migrations"); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	p.log.Info("database migrations applied")
	return nil
}
