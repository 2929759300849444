// Package auth carries the authenticated actor identity through the request
// context. Authentication itself is an upstream concern; this service trusts
// the X-Actor-Id header set by the gateway.
package auth

import (
	"context"

	"github.com/gin-gonic/gin"
)

type actorKey struct{}

const actorHeader = "X-Actor-Id"

func WithActor(ctx context.Context, actorID string) context.Context {
	return context.WithValue(ctx, actorKey{}, actorID)
}

// ActorID returns the actor attached to ctx, or "" when none is present.
func ActorID(ctx context.Context) string {
	if v, ok := ctx.Value(actorKey{}).(string); ok {
		return v
	}
	return ""
}

// Middleware copies the actor header into the request context so usecases
// can attribute mutations without touching transport types.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if actor := c.GetHeader(actorHeader); actor != "" {
			c.Request = c.Request.WithContext(WithActor(c.Request.Context(), actor))
		}
		c.Next()
	}
}
