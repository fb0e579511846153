// Package service holds the command and query handlers: one operation
// per use case, each validating its input, delegating to a repository on
// a request-scoped unit of work, and mapping entities to DTOs.
package service
