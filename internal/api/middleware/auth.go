package middleware

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/elections-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/elections-api/internal/pkg/jwthelper"
)

const (
	ContextKeyUserID = "userID"
	ContextKeyClaims = "claims"
)

var (
	errMissingToken = errors.New("missing bearer token")
	errRevokedToken = errors.New("token has been revoked")
)

type TokenChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type Authenticator struct {
	key      []byte
	denylist TokenChecker
}

func NewAuthenticator(key string, denylist TokenChecker) *Authenticator {
	return &Authenticator{
		key:      []byte(key),
		denylist: denylist,
	}
}

// VerifyJWT rejects requests without a valid, unrevoked bearer token and
// stores the caller's id and claims on the context.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			response.RenderErr(ctx, response.ErrUnauthorized(errMissingToken))
			return
		}

		claims, err := jwthelper.ParseToken(a.key, tokenString)
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized(jwthelper.ErrInvalidToken))
			return
		}

		revoked, err := a.denylist.IsRevoked(ctx.Request.Context(), claims.ID)
		if err != nil {
			err = fmt.Errorf("middleware.VerifyJWT -> a.denylist.IsRevoked -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
			return
		}
		if revoked {
			response.RenderErr(ctx, response.ErrUnauthorized(errRevokedToken))
			return
		}

		ctx.Set(ContextKeyUserID, claims.UserID)
		ctx.Set(ContextKeyClaims, claims)
		ctx.Next()
	}
}
