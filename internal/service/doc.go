// Package service implements the business layer between the HTTP handlers
// and the storage interfaces.
package service
