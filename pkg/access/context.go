package access

import "context"

type actorCtxKey struct{}

// SetActorToContext stores the actor in the context for downstream checks.
func SetActorToContext(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorCtxKey{}, actor)
}

// GetActorFromContext retrieves the actor from the context, if present.
func GetActorFromContext(ctx context.Context) (Actor, bool) {
	actor, ok := ctx.Value(actorCtxKey{}).(Actor)
	return actor, ok
}
