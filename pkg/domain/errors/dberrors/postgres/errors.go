package postgres

import (
	"fmt"

	"github.com/cartload/cartload/pkg/domain"
)

// requested record is missing.
type Missing struct {
	Table    string
	Identity string
}

var _ error = Missing{}

func (m Missing) Error() string {
	return fmt.Sprintf("%s is not found in %s", m.Identity, m.Table)
}
func (m Missing) Unwrap() error {
	return domain.ErrMissing
}

// a record with the same identity is already stored.
type Conflict struct {
	Table    string
	Identity string
}

var _ error = Conflict{}

func (c Conflict) Error() string {
	return fmt.Sprintf("%s is already in %s", c.Identity, c.Table)
}
func (c Conflict) Unwrap() error {
	return domain.ErrConflict
}
