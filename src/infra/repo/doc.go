// Package repo contains PostgreSQL implementations of repository interfaces.
//
// This package implements the ports defined in src/core/ports.
// All repositories receive the database pool via constructor injection
// and implement the corresponding interface from src/core/ports.
//
// Conventions:
//   - SQL lives in `const q` blocks next to the method that runs it
//   - pgx.ErrNoRows maps to domain.NewNotFoundError
//   - unique violations (23505) map to domain.NewConflictError
//   - multi-statement work runs inside Begin / defer Rollback / Commit
package repo
