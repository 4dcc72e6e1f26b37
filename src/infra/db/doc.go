// Package db provides database connection and schema management.
//
// This package is responsible for:
//   - PostgreSQL connection pool initialization
//   - Connection health checks
//   - Schema migrations via goose (embedded SQL files)
//
// Example usage:
//
//	pg, err := db.New(ctx, cfg.Database, log)
//	if err != nil {
//	    return err
//	}
//	defer pg.Close()
//
//	if err := pg.Migrate(); err != nil {
//	    return err
//	}
package db
