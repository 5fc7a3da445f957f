package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/vinhph2/quizhub-api/internal/repository"
)

// translateError maps gorm errors to the repository package's storage
// errors. Requires connections opened with TranslateError enabled so unique
// constraint violations arrive as gorm.ErrDuplicatedKey regardless of
// driver.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return repository.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return repository.ErrDuplicate
	default:
		return err
	}
}
