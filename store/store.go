// Package store wraps the MongoDB collections behind typed repositories.
// Controllers depend on these through narrow interfaces so tests can swap
// in fakes without a live database.
package store

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrNotFound is returned when a lookup matches no document, or an
	// update modifies nothing.
	ErrNotFound = errors.New("store: not found")

	// ErrDuplicateEmail is returned when inserting a user violates the
	// unique email index.
	ErrDuplicateEmail = errors.New("store: email already registered")
)

// Store bundles the per-collection repositories.
type Store struct {
	Reports  *ReportStore
	Users    *UserStore
	Contacts *ContactStore
}

// New builds the repositories over db.
func New(db *mongo.Database) *Store {
	return &Store{
		Reports:  &ReportStore{col: db.Collection("reports")},
		Users:    &UserStore{col: db.Collection("users")},
		Contacts: &ContactStore{col: db.Collection("contacts")},
	}
}

// pageWindow converts 1-based page/limit into skip/limit, falling back to
// the endpoint default when limit is unset or out of range.
func pageWindow(page, limit, defLimit int) (skip, lim int64) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = defLimit
	}
	return int64((page - 1) * limit), int64(limit)
}

// Pages computes the page count for a paginated listing.
func Pages(total, limit int64) int64 {
	if limit < 1 {
		return 0
	}
	return (total + limit - 1) / limit
}
