package v1

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/elections-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/elections-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/elections-api/internal/config"
	"github.com/vietanh2810/elections-api/internal/domain"
	"github.com/vietanh2810/elections-api/internal/pkg/jwthelper"
)

type AuthService interface {
	CreateAccount(ctx context.Context, account domain.Account) (domain.User, error)
	Login(ctx context.Context, username, password string) (domain.User, error)
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
}

type AuthHandler struct {
	conf *config.APIConfig
	svc  AuthService
}

func NewAuthHandler(conf *config.APIConfig, svc AuthService) *AuthHandler {
	return &AuthHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleRegister godoc
// @Summary      Register a student account
// @Description  The registration number and web mail must match one roster entry.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      request.RegisterRequest  true  "request body"
// @Success      201      {object}  domain.User
// @Failure      400      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /auth/register [post]
func (h *AuthHandler) HandleRegister(ctx *gin.Context) {
	var req request.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	user, err := h.svc.CreateAccount(ctx.Request.Context(), domain.Account{
		User: domain.User{
			Username:  req.Username,
			Email:     req.Email,
			Password:  req.Password,
			FirstName: req.FirstName,
			LastName:  req.LastName,
		},
		RegistrationNumber: req.RegistrationNumber,
		WebMail:            req.WebMail,
	})
	if err != nil {
		response.RenderErr(ctx, response.ErrFromService("v1.HandleRegister -> h.svc.CreateAccount", err))
		return
	}

	ctx.JSON(http.StatusCreated, user)
}

// HandleLogin godoc
// @Summary      Login a user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      request.LoginRequest  true  "request body"
// @Success      200      {object}  response.LoginResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /auth/login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	req := request.LoginRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	user, err := h.svc.Login(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		response.RenderErr(ctx, response.ErrFromService("v1.HandleLogin -> h.svc.Login", err))

		return
	}

	token, err := jwthelper.GenerateToken([]byte(h.conf.JWTSigningKey), user.ID, ctx.Request.UserAgent(), h.conf.JWTTTL)
	if err != nil {
		err = fmt.Errorf("v1.HandleLogin -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.LoginResponse{
		Token: token,
		User:  user,
	})
}

// HandleLogout godoc
// @Summary      Logout
// @Description  Revokes the bearer token used for this request.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.MessageResponse
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /auth/logout [delete]
// @Security BearerAuth
func (h *AuthHandler) HandleLogout(ctx *gin.Context) {
	claims, respErr := getClaimsFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if err := h.svc.Logout(ctx.Request.Context(), claims.ID, claims.ExpiresAt.Time); err != nil {
		response.RenderErr(ctx, response.ErrFromService("v1.HandleLogout -> h.svc.Logout", err))
		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "Logged out successfully."})
}
