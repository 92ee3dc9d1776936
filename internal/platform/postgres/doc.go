// Package postgres provides PostgreSQL-backed implementations of the
// storage interfaces defined in the store package. It uses database/sql
// with the pgx stdlib driver and maps driver errors to the store error
// taxonomy.
package postgres
