// Package sqlite implements the store contracts against a SQLite
// database: the unit of work with its pending-change set, the generic
// transactional repository base, the three entity repositories, and the
// connection/migration lifecycle for the shared-cache in-memory store.
package sqlite
