package service

import (
	"time"

	"taskboard-api/internal/domain"
)

// DTOs are the shapes exposed across the HTTP boundary, distinct from
// the internal entities. Field names are camelCase on the wire; status
// and priority serialize as integers for the board UI.

// CategoryDTO is a board column together with its tasks.
type CategoryDTO struct {
	ID           int64     `json:"id"`
	CategoryName string    `json:"categoryName"`
	Tasks        []TaskDTO `json:"tasks"`
}

// TaskDTO is a single card.
type TaskDTO struct {
	ID          int64           `json:"id"`
	CategoryID  int64           `json:"categoryId"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Priority    domain.Priority `json:"priority"`
	Status      domain.Status   `json:"status"`
	DueDate     *time.Time      `json:"dueDate"`
}

// CommentDTO is a note on a card, with its audit trail.
type CommentDTO struct {
	ID             int64     `json:"id"`
	Comment        string    `json:"comment"`
	Created        time.Time `json:"created"`
	CreatedBy      string    `json:"createdBy"`
	LastModified   time.Time `json:"lastModified"`
	LastModifiedBy string    `json:"lastModifiedBy"`
}

// categoryToDTO maps a category and its (possibly nil) tasks.
func categoryToDTO(category *domain.Category) CategoryDTO {
	tasks := make([]TaskDTO, 0, len(category.Tasks))
	for _, t := range category.Tasks {
		tasks = append(tasks, taskToDTO(t))
	}
	return CategoryDTO{
		ID:           category.ID,
		CategoryName: category.CategoryName,
		Tasks:        tasks,
	}
}

func taskToDTO(task *domain.TaskItem) TaskDTO {
	return TaskDTO{
		ID:          task.ID,
		CategoryID:  task.CategoryID,
		Title:       task.Title,
		Description: deref(task.Description),
		Priority:    task.Priority,
		Status:      task.Status,
		DueDate:     task.DueDate,
	}
}

func commentToDTO(comment *domain.TaskComment) CommentDTO {
	return CommentDTO{
		ID:             comment.ID,
		Comment:        comment.Comment,
		Created:        comment.Created,
		CreatedBy:      comment.CreatedBy,
		LastModified:   comment.LastModified,
		LastModifiedBy: comment.LastModifiedBy,
	}
}
