package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/elections-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/elections-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/elections-api/internal/domain"
)

type PositionService interface {
	CreatePosition(ctx context.Context, name string) (domain.Position, error)
	ListPositions(ctx context.Context) ([]domain.Position, error)
}

type PositionHandler struct {
	svc PositionService
}

func NewPositionHandler(svc PositionService) *PositionHandler {
	return &PositionHandler{
		svc: svc,
	}
}

// HandleCreatePosition godoc
// @Summary      Create a position
// @Tags         positions
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreatePositionRequest  true  "request body"
// @Success      201      {object}  domain.Position
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /positions [post]
// @Security BearerAuth
func (h *PositionHandler) HandleCreatePosition(ctx *gin.Context) {
	var req request.CreatePositionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	position, err := h.svc.CreatePosition(ctx.Request.Context(), req.Name)
	if err != nil {
		response.RenderErr(ctx, response.ErrFromService("v1.HandleCreatePosition -> h.svc.CreatePosition", err))
		return
	}

	ctx.JSON(http.StatusCreated, position)
}

// HandleListPositions godoc
// @Summary      List positions
// @Tags         positions
// @Produce      json
// @Success      200  {array}   domain.Position
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /positions [get]
// @Security BearerAuth
func (h *PositionHandler) HandleListPositions(ctx *gin.Context) {
	positions, err := h.svc.ListPositions(ctx.Request.Context())
	if err != nil {
		response.RenderErr(ctx, response.ErrFromService("v1.HandleListPositions -> h.svc.ListPositions", err))
		return
	}

	if positions == nil {
		positions = []domain.Position{}
	}

	ctx.JSON(http.StatusOK, positions)
}
