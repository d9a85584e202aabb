package postgres

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	violations := []error{
		gorm.ErrDuplicatedKey,
		errors.Wrap(gorm.ErrDuplicatedKey, "create user"),
		errors.New(`duplicate key value violates unique constraint "idx_users_email"`),
		errors.New("ERROR: duplicate key value (SQLSTATE 23505)"),
	}
	for _, err := range violations {
		assert.True(t, isUniqueConstraintViolation(err), "expected %v to classify as unique violation", err)
	}

	others := []error{
		gorm.ErrRecordNotFound,
		errors.New("connection refused"),
	}
	for _, err := range others {
		assert.False(t, isUniqueConstraintViolation(err), "expected %v not to classify as unique violation", err)
	}
}
