// Package assoc derives the wiring between two record types related
// one-to-many from their declared accessor names, the way convention-driven
// ORMs infer it, but resolved once at startup instead of reflected on every
// access.
package assoc

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/jinzhu/inflection"
)

// ErrConvention is returned when a pair of declarations does not follow the
// naming convention and the wiring cannot be inferred.
var ErrConvention = errors.New("assoc: declaration does not match naming convention")

// Association is the resolved wiring for one belongs-to / has-many pair.
// ForeignKey is a column of ChildTable referencing ParentTable's PrimaryKey.
type Association struct {
	ParentTable string
	ChildTable  string
	ForeignKey  string
	PrimaryKey  string
}

// Resolve computes the table and column names for a pair of declarations:
// belongsTo is the forward accessor declared on the child (singular, e.g.
// "game"), hasMany the reverse accessor declared on the parent (plural,
// e.g. "reviews").
//
// The convention is the sole matching strategy: the belongs-to name must be
// singular, the has-many name must be plural, the child table is the
// has-many name itself, the parent table is the pluralized belongs-to name,
// and the foreign key is the belongs-to name suffixed with "_id". Any
// mismatch is a configuration error, not something to guess around.
func Resolve(belongsTo, hasMany string) (Association, error) {
	belongsTo = normalize(belongsTo)
	hasMany = normalize(hasMany)

	if belongsTo == "" || hasMany == "" {
		return Association{}, fmt.Errorf("%w: empty declaration", ErrConvention)
	}
	if inflection.Singular(belongsTo) != belongsTo {
		return Association{}, fmt.Errorf("%w: belongs-to name %q must be singular", ErrConvention, belongsTo)
	}
	if inflection.Singular(hasMany) == hasMany {
		return Association{}, fmt.Errorf("%w: has-many name %q must be plural", ErrConvention, hasMany)
	}

	parent := inflection.Plural(belongsTo)
	if inflection.Singular(parent) != belongsTo {
		return Association{}, fmt.Errorf("%w: cannot derive table for %q", ErrConvention, belongsTo)
	}

	return Association{
		ParentTable: parent,
		ChildTable:  hasMany,
		ForeignKey:  belongsTo + "_id",
		PrimaryKey:  "id",
	}, nil
}

// MustResolve is Resolve for static declarations; a convention mismatch in
// statically declared wiring is a programming error.
func MustResolve(belongsTo, hasMany string) Association {
	a, err := Resolve(belongsTo, hasMany)
	if err != nil {
		panic(err)
	}
	return a
}

// normalize lowers a CamelCase type name to the snake_case form used in
// declarations, so Resolve("Game", "Reviews") and Resolve("game", "reviews")
// wire identically.
func normalize(s string) string {
	runes := []rune(strings.TrimSpace(s))
	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && unicode.IsLower(runes[i-1]) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
