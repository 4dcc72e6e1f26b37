// Package dto contains Data Transfer Objects for HTTP requests.
//
// DTOs are separate from domain entities to:
//   - Control what data is accepted by the API
//   - Handle JSON deserialization
//   - Add validation tags for request binding
//   - Version the API without changing domain models
//
// Naming convention:
//   - Request types: <Action><Resource>Request (e.g., CreateEmployeeRequest)
package dto
