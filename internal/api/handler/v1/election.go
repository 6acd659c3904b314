package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/elections-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/elections-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/elections-api/internal/domain"
)

type ElectionService interface {
	CreateElection(ctx context.Context, election domain.Election) (domain.Election, error)
	GetElection(ctx context.Context, id uint) (domain.Election, error)
	ListElections(ctx context.Context) ([]domain.Election, error)
	UpdateElectionStatus(ctx context.Context, id uint, status domain.ElectionStatus) (domain.Election, error)
}

type ResultService interface {
	GetResults(ctx context.Context, electionID uint) ([]domain.PositionResult, error)
}

type ElectionHandler struct {
	svc     ElectionService
	results ResultService
}

func NewElectionHandler(svc ElectionService, results ResultService) *ElectionHandler {
	return &ElectionHandler{
		svc:     svc,
		results: results,
	}
}

// HandleCreateElection godoc
// @Summary      Create an election
// @Description  Status defaults to pending.
// @Tags         elections
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateElectionRequest  true  "request body"
// @Success      201      {object}  domain.Election
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /elections [post]
// @Security BearerAuth
func (h *ElectionHandler) HandleCreateElection(ctx *gin.Context) {
	var req request.CreateElectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	election, err := h.svc.CreateElection(ctx.Request.Context(), domain.Election{
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Status:    domain.ElectionStatus(req.Status),
	})
	if err != nil {
		response.RenderErr(ctx, response.ErrFromService("v1.HandleCreateElection -> h.svc.CreateElection", err))
		return
	}

	ctx.JSON(http.StatusCreated, election)
}

// HandleListElections godoc
// @Summary      List elections
// @Tags         elections
// @Produce      json
// @Success      200  {array}   domain.Election
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /elections [get]
// @Security BearerAuth
func (h *ElectionHandler) HandleListElections(ctx *gin.Context) {
	elections, err := h.svc.ListElections(ctx.Request.Context())
	if err != nil {
		response.RenderErr(ctx, response.ErrFromService("v1.HandleListElections -> h.svc.ListElections", err))
		return
	}

	if elections == nil {
		elections = []domain.Election{}
	}

	ctx.JSON(http.StatusOK, elections)
}

// HandleGetElection godoc
// @Summary      Get an election
// @Tags         elections
// @Produce      json
// @Param        electionID  path      int  true  "election ID"
// @Success      200         {object}  domain.Election
// @Failure      400         {object}  response.Err
// @Failure      404         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /elections/{electionID} [get]
// @Security BearerAuth
func (h *ElectionHandler) HandleGetElection(ctx *gin.Context) {
	electionID, respErr := parseIDParam(ctx, "electionID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	election, err := h.svc.GetElection(ctx.Request.Context(), electionID)
	if err != nil {
		response.RenderErr(ctx, response.ErrFromService("v1.HandleGetElection -> h.svc.GetElection", err))
		return
	}

	ctx.JSON(http.StatusOK, election)
}

// HandleUpdateElectionStatus godoc
// @Summary      Change an election's status
// @Description  Allowed: pending to active, active to completed, pending to completed.
// @Tags         elections
// @Accept       json
// @Produce      json
// @Param        electionID  path      int                                  true  "election ID"
// @Param        request     body      request.UpdateElectionStatusRequest  true  "request body"
// @Success      200         {object}  domain.Election
// @Failure      400         {object}  response.Err
// @Failure      404         {object}  response.Err
// @Failure      409         {object}  response.Err
// @Failure      422         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /elections/{electionID}/status [patch]
// @Security BearerAuth
func (h *ElectionHandler) HandleUpdateElectionStatus(ctx *gin.Context) {
	electionID, respErr := parseIDParam(ctx, "electionID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.UpdateElectionStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	election, err := h.svc.UpdateElectionStatus(ctx.Request.Context(), electionID, domain.ElectionStatus(req.Status))
	if err != nil {
		response.RenderErr(ctx, response.ErrFromService("v1.HandleUpdateElectionStatus -> h.svc.UpdateElectionStatus", err))
		return
	}

	ctx.JSON(http.StatusOK, election)
}

// HandleGetResults godoc
// @Summary      Election results
// @Description  One entry per position, with vote counts per candidate name computed from the cast votes.
// @Tags         elections
// @Produce      json
// @Param        electionID  path      int  true  "election ID"
// @Success      200         {array}   response.PositionResult
// @Failure      400         {object}  response.Err
// @Failure      404         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /elections/{electionID}/results [get]
// @Security BearerAuth
func (h *ElectionHandler) HandleGetResults(ctx *gin.Context) {
	electionID, respErr := parseIDParam(ctx, "electionID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	results, err := h.results.GetResults(ctx.Request.Context(), electionID)
	if err != nil {
		response.RenderErr(ctx, response.ErrFromService("v1.HandleGetResults -> h.results.GetResults", err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewResults(results))
}
