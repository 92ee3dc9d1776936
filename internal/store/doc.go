// Package store defines the persistence interfaces and error types used
// by the service layer. Concrete implementations live under
// internal/platform (postgres, memory).
package store
