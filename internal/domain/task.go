package domain

import "time"

// MaxTaskTitleLength is the longest task title accepted by the command layer.
const MaxTaskTitleLength = 200

// Status represents the board column state of a task item.
type Status int

// Possible task status values. The integer values are part of the wire
// format consumed by the board UI.
const (
	StatusToDo Status = iota
	StatusInProgress
	StatusCompleted
	StatusOnHold
	StatusCancelled
)

// IsValid reports whether the status is one of the declared values.
func (s Status) IsValid() bool {
	return s >= StatusToDo && s <= StatusCancelled
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	switch s {
	case StatusToDo:
		return "todo"
	case StatusInProgress:
		return "in_progress"
	case StatusCompleted:
		return "completed"
	case StatusOnHold:
		return "on_hold"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Priority represents the urgency of a task item.
type Priority int

// Possible task priority values, also serialized as integers.
const (
	PriorityNone Priority = iota
	PriorityLow
	PriorityMedium
	PriorityHigh
	PriorityCritical
)

// IsValid reports whether the priority is one of the declared values.
func (p Priority) IsValid() bool {
	return p >= PriorityNone && p <= PriorityCritical
}

// String returns the human-readable name of the priority.
func (p Priority) String() string {
	switch p {
	case PriorityNone:
		return "none"
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	case PriorityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// TaskItem is a single card on the board. It belongs to exactly one
// Category and owns its comments (cascade delete).
type TaskItem struct {
	ID         int64  `db:"id"`
	CategoryID int64  `db:"category_id"`
	Title      string `db:"title"`

	// Description and DueDate are pointers because absent and empty are
	// distinct on update: a nil value leaves the stored one alone.
	// Stored rows always carry a non-nil description.
	Description    *string    `db:"description"`
	Status         Status     `db:"status"`
	Priority       Priority   `db:"priority"`
	DueDate        *time.Time `db:"due_date"`
	Created        time.Time  `db:"created"`
	CreatedBy      string     `db:"created_by"`
	LastModified   time.Time  `db:"last_modified"`
	LastModifiedBy string     `db:"last_modified_by"`
}
