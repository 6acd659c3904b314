package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/elections-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/elections-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/elections-api/internal/domain"
)

type CandidateService interface {
	RegisterCandidate(ctx context.Context, userID, positionID uint, name string, profilePicture *string) (domain.Candidate, error)
	ListCandidates(ctx context.Context) ([]domain.Candidate, error)
	ListCandidatesByPosition(ctx context.Context, positionID uint) ([]domain.Candidate, error)
}

type VoteService interface {
	CastVote(ctx context.Context, electionID, positionID, candidateID, voterID uint) (domain.Vote, error)
}

type CandidateHandler struct {
	svc   CandidateService
	votes VoteService
}

func NewCandidateHandler(svc CandidateService, votes VoteService) *CandidateHandler {
	return &CandidateHandler{
		svc:   svc,
		votes: votes,
	}
}

// HandleRegisterCandidate godoc
// @Summary      Stand for a position
// @Description  The authenticated user becomes a candidate. The name defaults to the user's full name.
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        request  body      request.RegisterCandidateRequest  true  "request body"
// @Success      201      {object}  domain.Candidate
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /candidates [post]
// @Security BearerAuth
func (h *CandidateHandler) HandleRegisterCandidate(ctx *gin.Context) {
	userID, respErr := getUserIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.RegisterCandidateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	candidate, err := h.svc.RegisterCandidate(ctx.Request.Context(), userID, req.PositionID, req.Name, req.ProfilePicture)
	if err != nil {
		response.RenderErr(ctx, response.ErrFromService("v1.HandleRegisterCandidate -> h.svc.RegisterCandidate", err))
		return
	}

	ctx.JSON(http.StatusCreated, candidate)
}

// HandleListCandidates godoc
// @Summary      List all candidates
// @Tags         candidates
// @Produce      json
// @Success      200  {array}   domain.Candidate
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /candidates [get]
// @Security BearerAuth
func (h *CandidateHandler) HandleListCandidates(ctx *gin.Context) {
	candidates, err := h.svc.ListCandidates(ctx.Request.Context())
	if err != nil {
		response.RenderErr(ctx, response.ErrFromService("v1.HandleListCandidates -> h.svc.ListCandidates", err))
		return
	}

	if candidates == nil {
		candidates = []domain.Candidate{}
	}

	ctx.JSON(http.StatusOK, candidates)
}

// HandleListCandidatesByPosition godoc
// @Summary      List the candidates of a position
// @Tags         candidates
// @Produce      json
// @Param        electionID  path      int  true  "election ID"
// @Param        positionID  path      int  true  "position ID"
// @Success      200         {array}   domain.Candidate
// @Failure      400         {object}  response.Err
// @Failure      401         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /elections/{electionID}/positions/{positionID}/candidates [get]
// @Security BearerAuth
func (h *CandidateHandler) HandleListCandidatesByPosition(ctx *gin.Context) {
	if _, respErr := parseIDParam(ctx, "electionID"); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	positionID, respErr := parseIDParam(ctx, "positionID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	candidates, err := h.svc.ListCandidatesByPosition(ctx.Request.Context(), positionID)
	if err != nil {
		response.RenderErr(ctx, response.ErrFromService("v1.HandleListCandidatesByPosition -> h.svc.ListCandidatesByPosition", err))
		return
	}

	if candidates == nil {
		candidates = []domain.Candidate{}
	}

	ctx.JSON(http.StatusOK, candidates)
}

// HandleCastVote godoc
// @Summary      Cast a vote
// @Description  One vote per voter, position and election. The election must be active.
// @Tags         votes
// @Accept       json
// @Produce      json
// @Param        electionID  path      int                      true  "election ID"
// @Param        positionID  path      int                      true  "position ID"
// @Param        request     body      request.CastVoteRequest  true  "request body"
// @Success      201         {object}  response.MessageResponse
// @Failure      400         {object}  response.Err
// @Failure      401         {object}  response.Err
// @Failure      404         {object}  response.Err
// @Failure      409         {object}  response.Err
// @Failure      422         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /elections/{electionID}/positions/{positionID}/candidates/vote [post]
// @Security BearerAuth
func (h *CandidateHandler) HandleCastVote(ctx *gin.Context) {
	voterID, respErr := getUserIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	electionID, respErr := parseIDParam(ctx, "electionID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	positionID, respErr := parseIDParam(ctx, "positionID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.CastVoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if _, err := h.votes.CastVote(ctx.Request.Context(), electionID, positionID, req.CandidateID, voterID); err != nil {
		response.RenderErr(ctx, response.ErrFromService("v1.HandleCastVote -> h.votes.CastVote", err))
		return
	}

	ctx.JSON(http.StatusCreated, response.MessageResponse{Message: "Vote cast successfully."})
}
