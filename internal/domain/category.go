package domain

import "time"

// MaxCategoryNameLength is the longest category name accepted by the
// command layer.
const MaxCategoryNameLength = 200

// Category groups task items into a single board column.
// It owns its tasks: deleting a category cascades to them.
type Category struct {
	ID             int64     `db:"id"`
	CategoryName   string    `db:"category_name"`
	Created        time.Time `db:"created"`
	CreatedBy      string    `db:"created_by"`
	LastModified   time.Time `db:"last_modified"`
	LastModifiedBy string    `db:"last_modified_by"`

	// Tasks is populated by read queries that embed the category's
	// items; write paths leave it nil.
	Tasks []*TaskItem `db:"-"`
}

// NewCategory creates a Category with the given name. The ID and audit
// fields are assigned at persistence time.
func NewCategory(name string) *Category {
	return &Category{CategoryName: name}
}
