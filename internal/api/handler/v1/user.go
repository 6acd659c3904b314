package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/elections-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/elections-api/internal/domain"
)

type VoteHistoryService interface {
	ListVoterHistory(ctx context.Context, voterID uint) ([]domain.VoteHistoryEntry, error)
}

type UserHandler struct {
	svc   UserService
	votes VoteHistoryService
}

func NewUserHandler(svc UserService, votes VoteHistoryService) *UserHandler {
	return &UserHandler{
		svc:   svc,
		votes: votes,
	}
}

// HandleGetMe godoc
// @Summary      Get the authenticated user
// @Tags         users
// @Produce      json
// @Success      200  {object}  domain.User
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /users/me [get]
// @Security BearerAuth
func (h *UserHandler) HandleGetMe(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.svc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// HandleGetMyVotes godoc
// @Summary      List the authenticated user's votes
// @Description  Newest first.
// @Tags         users
// @Produce      json
// @Success      200  {array}   domain.VoteHistoryEntry
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /users/me/votes [get]
// @Security BearerAuth
func (h *UserHandler) HandleGetMyVotes(ctx *gin.Context) {
	userID, respErr := getUserIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	history, err := h.votes.ListVoterHistory(ctx.Request.Context(), userID)
	if err != nil {
		response.RenderErr(ctx, response.ErrFromService("v1.HandleGetMyVotes -> h.votes.ListVoterHistory", err))
		return
	}

	if history == nil {
		history = []domain.VoteHistoryEntry{}
	}

	ctx.JSON(http.StatusOK, history)
}
