// Package domain contains the core domain model for the application.
//
// This package defines:
//   - Entities: Core business objects with identity (Employee, Department)
//   - Domain Errors: Business rule violation errors
//
// Rules for this package:
//   - No external dependencies except the standard library
//   - No infrastructure concerns (database, HTTP, etc.)
//   - Entities should validate their own invariants
//
// Example:
//
//	emp := &domain.Employee{FirstName: "Ada", LastName: "Lovelace"}
//	emp.FullName() // "Ada Lovelace"
package domain
