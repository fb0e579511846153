// Package store provides abstractions for data persistence: the unit of
// work owning the transaction boundary, per-entity repository contracts,
// and the shared error taxonomy.
package store
