// Package store provides the persistence components for games and reviews.
// The two record types are related one-to-many; the wiring between them is
// declared once below and resolved through the naming convention in assoc.
package store

import (
	"errors"

	"gamereviews/assoc"
)

// ErrNotFound is returned when a lookup does not match any record.
var ErrNotFound = errors.New("store: record not found")

// gameReviews is the single association in the schema: a Review belongs to
// a Game, a Game has many Reviews. Every reverse lookup and attach operation
// uses the column names resolved here instead of hardcoding them.
var gameReviews = assoc.MustResolve("game", "reviews")
