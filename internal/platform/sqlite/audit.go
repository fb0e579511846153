package sqlite

import (
	"context"
	"time"
)

// DefaultActor is recorded on audit fields when no actor is present in
// the context. The HTTP surface carries no authentication, so in
// practice every request writes as this actor.
const DefaultActor = "system"

type actorKey struct{}

// WithActor returns a copy of ctx carrying the acting user recorded on
// audit fields.
func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// actorFromContext returns the acting user from ctx, or DefaultActor.
func actorFromContext(ctx context.Context) string {
	if actor, ok := ctx.Value(actorKey{}).(string); ok && actor != "" {
		return actor
	}
	return DefaultActor
}

// auditStamp holds the values written to an entity's audit columns.
type auditStamp struct {
	at time.Time
	by string
}

// newAuditStamp captures the current time and acting user for a write.
func newAuditStamp(ctx context.Context) auditStamp {
	return auditStamp{at: time.Now().UTC(), by: actorFromContext(ctx)}
}
