// Package store is the data access layer for the lab backend. Every function
// takes an open *gorm.DB session supplied by the caller and performs a single
// query or mutation against it. Absence is reported as a nil entity (or false
// for deletes), never as an error; storage failures propagate as errors.
package store

import (
	"errors"

	"gorm.io/gorm"
)

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
