package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"taskboard-api/internal/domain"
)

func TestStatusIsValid(t *testing.T) {
	for s := domain.StatusToDo; s <= domain.StatusCancelled; s++ {
		assert.True(t, s.IsValid(), s.String())
	}
	assert.False(t, domain.Status(-1).IsValid())
	assert.False(t, domain.Status(5).IsValid())
}

func TestPriorityIsValid(t *testing.T) {
	for p := domain.PriorityNone; p <= domain.PriorityCritical; p++ {
		assert.True(t, p.IsValid(), p.String())
	}
	assert.False(t, domain.Priority(-1).IsValid())
	assert.False(t, domain.Priority(5).IsValid())
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "todo", domain.StatusToDo.String())
	assert.Equal(t, "cancelled", domain.StatusCancelled.String())
	assert.Equal(t, "unknown", domain.Status(42).String())

	assert.Equal(t, "none", domain.PriorityNone.String())
	assert.Equal(t, "critical", domain.PriorityCritical.String())
	assert.Equal(t, "unknown", domain.Priority(42).String())
}

func TestNewCategory(t *testing.T) {
	category := domain.NewCategory("Work")
	assert.Equal(t, "Work", category.CategoryName)
	assert.Zero(t, category.ID)
	assert.True(t, category.Created.IsZero())
}
