package pgerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestConstraint(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pq.Error{Code: CodeExclusionViolation, Constraint: "sessions_trainer_no_overlap"})

	name, ok := Constraint(err, CodeExclusionViolation)
	assert.True(t, ok)
	assert.Equal(t, "sessions_trainer_no_overlap", name)

	_, ok = Constraint(err, CodeUniqueViolation)
	assert.False(t, ok)

	_, ok = Constraint(errors.New("plain"), CodeExclusionViolation)
	assert.False(t, ok)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pq.Error{Code: CodeUniqueViolation}))
	assert.False(t, IsUniqueViolation(&pq.Error{Code: CodeForeignKeyViolation}))
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, IsForeignKeyViolation(fmt.Errorf("insert: %w", &pq.Error{Code: CodeForeignKeyViolation})))
	assert.False(t, IsForeignKeyViolation(&pq.Error{Code: CodeUniqueViolation}))
	assert.False(t, IsForeignKeyViolation(errors.New("plain")))
}
