package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"photocontest-api/docs"
	v1 "photocontest-api/internal/api/handler/v1"
	"photocontest-api/internal/api/middleware"
	"photocontest-api/internal/config"
	"photocontest-api/internal/platform/drive"
	"photocontest-api/internal/platform/notifier"
	"photocontest-api/internal/repository"
	"photocontest-api/internal/repository/dao"
	"photocontest-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	contestSvc := s.initContestService(db)

	authHandler := s.initAuthHandler(db)
	userHandler := s.initUserHandler(db)
	contestHandler := v1.NewContestHandler(contestSvc)
	pictureHandler := v1.NewPictureHandler(contestSvc)
	invitationHandler := v1.NewInvitationHandler(contestSvc)
	s.MountHandlers(authHandler, userHandler, contestHandler, pictureHandler, invitationHandler)

	return s
}

func (s *Server) initContestService(db *gorm.DB) *service.ContestService {
	contestDAO := dao.NewContestDAO(db)
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	repo := repository.NewContestRepository(contestDAO, userRepo)
	storage := drive.NewClient(s.Config.Drive)

	return service.NewContestService(repo, userRepo, storage, notifier.NewLogNotifier())
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initUserHandler(db *gorm.DB) *v1.UserHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewUserService(repo)
	handler := v1.NewUserHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	userHandler *v1.UserHandler,
	contestHandler *v1.ContestHandler,
	pictureHandler *v1.PictureHandler,
	invitationHandler *v1.InvitationHandler,
) {
	const basePath = "/api/v1"

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/signup", authHandler.HandleSignup)
		auth.POST("/auth/login", authHandler.HandleLogin)
	}

	verifyJWT := middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT()

	users := s.Router.Group(basePath, verifyJWT)
	{
		users.GET("/users/:userID", userHandler.HandleGetUser)
	}

	contests := s.Router.Group(basePath, verifyJWT)
	{
		contests.GET("/contests", contestHandler.HandleGetContests)
		contests.POST("/contests", contestHandler.HandleCreateContest)
		contests.GET("/contests/:contestID", contestHandler.HandleGetContest)
		contests.PUT("/contests/:contestID", contestHandler.HandleUpdateContest)
		contests.POST("/contests/:contestID/join", contestHandler.HandleJoinContest)
		contests.POST("/contests/:contestID/pictures", contestHandler.HandleUploadPictures)
		contests.POST("/contests/:contestID/invitations", contestHandler.HandleInviteUser)
		contests.POST("/contests/:contestID/committee/join", contestHandler.HandleJoinCommittee)
		contests.POST("/contests/:contestID/rewards", contestHandler.HandleAddRewards)
		contests.POST("/contests/:contestID/finalize", contestHandler.HandleFinalizeContest)
		contests.POST("/contests/:contestID/dismiss", contestHandler.HandleDismissContest)
		contests.GET("/contests/:contestID/winners", contestHandler.HandleGetContestWinners)
	}

	pictures := s.Router.Group(basePath, verifyJWT)
	{
		pictures.POST("/pictures/:pictureID/vote", pictureHandler.HandleVote)
		pictures.DELETE("/pictures/:pictureID", pictureHandler.HandleDeletePicture)
	}

	invitations := s.Router.Group(basePath, verifyJWT)
	{
		invitations.GET("/invitations", invitationHandler.HandleGetMyInvitations)
		invitations.POST("/invitations/:invitationID/decline", invitationHandler.HandleDeclineInvitation)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Photo Contest API"
	docs.SwaggerInfo.Description = "REST API for running photo contests."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
