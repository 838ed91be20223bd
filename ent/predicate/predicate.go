// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Item is the predicate function for item builders.
type Item func(*sql.Selector)

// ReviewEvent is the predicate function for reviewevent builders.
type ReviewEvent func(*sql.Selector)

// Setting is the predicate function for setting builders.
type Setting func(*sql.Selector)

// UnlockEvent is the predicate function for unlockevent builders.
type UnlockEvent func(*sql.Selector)
