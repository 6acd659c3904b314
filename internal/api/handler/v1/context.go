package v1

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/elections-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/elections-api/internal/api/middleware"
	"github.com/vietanh2810/elections-api/internal/domain"
	"github.com/vietanh2810/elections-api/internal/pkg/jwthelper"
	"github.com/vietanh2810/elections-api/internal/service"
)

var errMissingClaims = errors.New("request is not authenticated")

type UserService interface {
	GetUser(ctx context.Context, id uint) (domain.User, error)
}

func getUserIDFromContext(ctx *gin.Context) (uint, *response.Err) {
	userID := ctx.GetUint(middleware.ContextKeyUserID)
	if userID == 0 {
		return 0, response.ErrUnauthorized(errMissingClaims)
	}

	return userID, nil
}

func getUserFromContext(ctx *gin.Context, uSvc UserService) (domain.User, *response.Err) {
	userID, respErr := getUserIDFromContext(ctx)
	if respErr != nil {
		return domain.User{}, respErr
	}

	user, err := uSvc.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			// The account behind a still-valid token is gone.
			return domain.User{}, response.ErrUnauthorized(errMissingClaims)
		}

		err = fmt.Errorf("getUserFromContext -> uSvc.GetUser -> %w", err)
		return domain.User{}, response.ErrInternalServerError(err)
	}

	return user, nil
}

func getClaimsFromContext(ctx *gin.Context) (*jwthelper.Claims, *response.Err) {
	value, ok := ctx.Get(middleware.ContextKeyClaims)
	if !ok {
		return nil, response.ErrUnauthorized(errMissingClaims)
	}

	claims, ok := value.(*jwthelper.Claims)
	if !ok {
		return nil, response.ErrUnauthorized(errMissingClaims)
	}

	return claims, nil
}

func parseIDParam(ctx *gin.Context, name string) (uint, *response.Err) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, response.ErrBadRequest(fmt.Errorf("invalid %s", name))
	}

	return uint(id), nil
}
