package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/logifin/wallet-ledger/internal/domain/entity"
	errs "github.com/logifin/wallet-ledger/internal/domain/error"
	"github.com/logifin/wallet-ledger/internal/infrastructure/adapter/auth"
)

const actorKey = "actor"

// AnonymousActor is used for every request when authentication is disabled
var AnonymousActor = entity.Actor{ID: "anonymous", Role: entity.RoleSuperAdmin}

// TokenVerifier turns a bearer token into an actor
type TokenVerifier interface {
	Verify(token string) (entity.Actor, error)
}

// Auth resolves the calling actor from the Authorization header. A nil
// verifier disables authentication.
func Auth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if verifier == nil {
			c.Set(actorKey, AnonymousActor)
			c.Next()
			return
		}

		token, ok := auth.BearerToken(c.GetHeader("Authorization"))
		if !ok {
			_ = c.Error(fmt.Errorf("%w: missing bearer token", errs.ErrUnauthorized))
			c.Abort()
			return
		}

		actor, err := verifier.Verify(token)
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}

		c.Set(actorKey, actor)
		c.Next()
	}
}

// ActorFrom returns the actor stored by Auth
func ActorFrom(c *gin.Context) (entity.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return entity.Actor{}, false
	}
	actor, ok := v.(entity.Actor)
	return actor, ok
}
