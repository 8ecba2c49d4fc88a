package sqlite

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// isUniqueConstraintViolation reports whether err comes from a UNIQUE
// constraint. GORM's translated sentinel is checked first; the raw SQLite
// message covers drivers/paths the translation misses.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return strings.Contains(strings.ToLower(err.Error()), "unique constraint")
}
