// Package api contains the HTTP handlers and request/response types for
// the task API. Handlers translate between the JSON wire format and the
// service layer; they hold no business logic of their own.
package api
