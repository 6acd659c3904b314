package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/vietanh2810/elections-api/docs"
	v1 "github.com/vietanh2810/elections-api/internal/api/handler/v1"
	"github.com/vietanh2810/elections-api/internal/api/middleware"
	"github.com/vietanh2810/elections-api/internal/config"
	"github.com/vietanh2810/elections-api/internal/repository"
	"github.com/vietanh2810/elections-api/internal/repository/dao"
	"github.com/vietanh2810/elections-api/internal/service"
)

// TokenDenylist revokes tokens on logout and is consulted on every
// authenticated request.
type TokenDenylist interface {
	service.TokenDenylist
	middleware.TokenChecker
}

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine

	// Results is exposed so configuration reloads can reach it.
	Results *service.ResultService

	denylist TokenDenylist
}

type handlers struct {
	auth      *v1.AuthHandler
	user      *v1.UserHandler
	position  *v1.PositionHandler
	election  *v1.ElectionHandler
	candidate *v1.CandidateHandler
}

func NewServer(conf *config.AppConfig, db *gorm.DB, denylist TokenDenylist) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config:   conf,
		Router:   engine,
		denylist: denylist,
	}

	s.MountMiddlewares()

	repos := newRepositories(db)
	s.Results = service.NewResultService(repos.elections, repos.positions, repos.candidates, repos.votes, conf.Results.IncludeZeroVotes)

	s.MountHandlers(handlers{
		auth:      s.initAuthHandler(repos),
		user:      s.initUserHandler(repos),
		position:  s.initPositionHandler(repos),
		election:  s.initElectionHandler(repos),
		candidate: s.initCandidateHandler(repos),
	})

	return s
}

type repositories struct {
	users      *repository.UserRepository
	students   *repository.StudentRepository
	positions  *repository.PositionRepository
	elections  *repository.ElectionRepository
	candidates *repository.CandidateRepository
	votes      *repository.VoteRepository
}

func newRepositories(db *gorm.DB) repositories {
	return repositories{
		users:      repository.NewUserRepository(dao.NewUserDAO(db)),
		students:   repository.NewStudentRepository(dao.NewStudentDAO(db)),
		positions:  repository.NewPositionRepository(dao.NewPositionDAO(db)),
		elections:  repository.NewElectionRepository(dao.NewElectionDAO(db)),
		candidates: repository.NewCandidateRepository(dao.NewCandidateDAO(db)),
		votes:      repository.NewVoteRepository(dao.NewVoteDAO(db)),
	}
}

func (s *Server) initAuthHandler(repos repositories) *v1.AuthHandler {
	svc := service.NewAuthService(repos.users, repos.students, s.denylist)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initUserHandler(repos repositories) *v1.UserHandler {
	svc := service.NewUserService(repos.users)
	votes := service.NewVoteService(repos.votes)
	handler := v1.NewUserHandler(svc, votes)

	return handler
}

func (s *Server) initPositionHandler(repos repositories) *v1.PositionHandler {
	svc := service.NewPositionService(repos.positions)
	handler := v1.NewPositionHandler(svc)

	return handler
}

func (s *Server) initElectionHandler(repos repositories) *v1.ElectionHandler {
	svc := service.NewElectionService(repos.elections)
	handler := v1.NewElectionHandler(svc, s.Results)

	return handler
}

func (s *Server) initCandidateHandler(repos repositories) *v1.CandidateHandler {
	svc := service.NewCandidateService(repos.candidates, repos.positions, repos.users)
	votes := service.NewVoteService(repos.votes)
	handler := v1.NewCandidateHandler(svc, votes)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(h handlers) {
	const basePath = "/api/v1"

	verifyJWT := middleware.NewAuthenticator(s.Config.API.JWTSigningKey, s.denylist).VerifyJWT()

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/register", h.auth.HandleRegister)
		auth.POST("/auth/login", h.auth.HandleLogin)
	}

	api := s.Router.Group(basePath, verifyJWT)
	{
		api.DELETE("/auth/logout", h.auth.HandleLogout)

		api.GET("/users/me", h.user.HandleGetMe)
		api.GET("/users/me/votes", h.user.HandleGetMyVotes)

		api.POST("/positions", h.position.HandleCreatePosition)
		api.GET("/positions", h.position.HandleListPositions)

		api.POST("/elections", h.election.HandleCreateElection)
		api.GET("/elections", h.election.HandleListElections)
		api.GET("/elections/:electionID", h.election.HandleGetElection)
		api.PATCH("/elections/:electionID/status", h.election.HandleUpdateElectionStatus)
		api.GET("/elections/:electionID/results", h.election.HandleGetResults)

		api.GET("/candidates", h.candidate.HandleListCandidates)
		api.POST("/candidates", h.candidate.HandleRegisterCandidate)
		api.GET("/elections/:electionID/positions/:positionID/candidates", h.candidate.HandleListCandidatesByPosition)
		api.POST("/elections/:electionID/positions/:positionID/candidates/vote", h.candidate.HandleCastVote)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Elections API"
	docs.SwaggerInfo.Description = "Student elections: accounts, candidacies, voting and results."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
