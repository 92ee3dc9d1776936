// Package domain contains the core entities of the task API.
//
// Domain types are plain structs with no knowledge of storage or
// transport. The store layer owns the canonical copy of every entity;
// the service and API layers only hold request-scoped copies.
package domain
