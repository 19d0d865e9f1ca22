package profile

import "smartcart/internal/apperr"

// Repository holds the single current profile. There is no history and no
// per-user multiplicity; Save replaces the whole document.
type Repository interface {
	Save(doc Document) error
	Load() (Document, error)
	Delete() error
}

// ErrNoProfile is returned by Load when the slot is empty.
var ErrNoProfile = apperr.New(apperr.NotFound, "no profile found")
