package services

import "errors"

// ErrNotFound marks structural addressing failures: a program, day,
// meal or item id the caller tried to edit does not exist within the
// owner's scope. Controllers map it to 404. Lookup misses inside the
// macro engine are NOT this error — those degrade to zero totals.
var ErrNotFound = errors.New("not found")

// ErrValidation marks a missing/invalid required field on a create or
// update. Controllers map it to 400.
var ErrValidation = errors.New("invalid input")
