package domain

import "time"

// MaxCommentLength is the longest comment text accepted by the command layer.
const MaxCommentLength = 1000

// TaskComment is a note attached to a task item. Deleting the task
// removes its comments.
type TaskComment struct {
	ID             int64     `db:"id"`
	TaskID         int64     `db:"task_id"`
	Comment        string    `db:"comment"`
	Created        time.Time `db:"created"`
	CreatedBy      string    `db:"created_by"`
	LastModified   time.Time `db:"last_modified"`
	LastModifiedBy string    `db:"last_modified_by"`
}
