// Package domain defines the core entities of the task board: categories,
// task items and task comments, plus their enumerated status and priority
// values. Entities are plain records; behavior lives in the command layer.
package domain
