package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/skillswap/backend/internal/infrastructure/auth"
	"github.com/skillswap/backend/internal/infrastructure/config"
	"github.com/skillswap/backend/internal/infrastructure/logger"
	"github.com/skillswap/backend/internal/interfaces/http/handler"
	"github.com/skillswap/backend/internal/interfaces/http/middleware"
)

// Handlers groups the route handlers the router wires up
type Handlers struct {
	Auth       *handler.AuthHandler
	User       *handler.UserHandler
	Skill      *handler.SkillHandler
	Mentorship *handler.MentorshipHandler
	Payment    *handler.PaymentHandler
	System     *handler.SystemHandler
}

// Dependencies carries everything the router needs beyond handlers
type Dependencies struct {
	Config         *config.Config
	Logger         *zap.Logger
	JWTService     *auth.JWTService
	TokenBlacklist auth.TokenBlacklist
	Handlers       Handlers
}

// New builds the gin engine with the middleware stack and all routes.
func New(deps Dependencies) *gin.Engine {
	if deps.Config.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(deps.Logger))
	engine.Use(logger.Recovery(deps.Logger))
	engine.Use(middleware.SecurityHeaders())

	corsCfg := middleware.DefaultCORSConfig()
	if len(deps.Config.HTTP.CORSAllowOrigins) > 0 {
		corsCfg.AllowOrigins = deps.Config.HTTP.CORSAllowOrigins
	}
	engine.Use(middleware.CORSWithConfig(corsCfg))

	jwtCfg := middleware.DefaultJWTConfig(deps.JWTService)
	jwtCfg.TokenBlacklist = deps.TokenBlacklist
	jwtCfg.Logger = deps.Logger
	engine.Use(middleware.JWTAuthMiddlewareWithConfig(jwtCfg))

	registerRoutes(engine, deps.Handlers)
	return engine
}

func registerRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", h.System.Health)
	engine.GET("/ready", h.System.Ready)

	v1 := engine.Group("/api/v1")

	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/login", h.Auth.Login)
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/logout", h.Auth.Logout)
		authGroup.GET("/me", h.Auth.Me)
		authGroup.POST("/password-reset/request", h.Auth.RequestPasswordReset)
		authGroup.POST("/password-reset/confirm", h.Auth.ConfirmPasswordReset)
	}

	users := v1.Group("/users")
	{
		users.GET("/:id", h.User.Get)
		users.PATCH("/:id", h.User.UpdateProfile)
		users.PATCH("/:id/balance", h.User.SetBalance)
		users.GET("/:id/transactions", h.User.ListTransactions)
		users.POST("/:id/skills", h.User.AddSkill)
		users.GET("/:id/skills", h.User.ListSkills)
		users.DELETE("/:id/skills/:skillId", h.User.RemoveSkill)
	}

	mentors := v1.Group("/mentors")
	{
		mentors.GET("", h.User.ListMentors)
		mentors.GET("/:id/reviews", h.Mentorship.ListMentorReviews)
		mentors.GET("/:id/rating", h.Mentorship.GetMentorRating)
	}

	skills := v1.Group("/skills")
	{
		skills.POST("", h.Skill.Create)
		skills.GET("", h.Skill.List)
		skills.GET("/:id", h.Skill.Get)
		skills.PUT("/:id", h.Skill.Update)
		skills.DELETE("/:id", h.Skill.Delete)
	}

	requests := v1.Group("/mentorship-requests")
	{
		requests.POST("", h.Mentorship.CreateRequest)
		requests.GET("", h.Mentorship.ListMyRequests)
		requests.GET("/:id", h.Mentorship.GetRequest)
		requests.POST("/:id/accept", h.Mentorship.AcceptRequest)
		requests.POST("/:id/reject", h.Mentorship.RejectRequest)
		requests.POST("/:id/cancel", h.Mentorship.CancelRequest)
	}

	sessions := v1.Group("/sessions")
	{
		sessions.POST("", h.Mentorship.CreateSession)
		sessions.GET("", h.Mentorship.ListMySessions)
		sessions.GET("/:id", h.Mentorship.GetSession)
		sessions.POST("/:id/complete", h.Mentorship.CompleteSession)
		sessions.POST("/:id/cancel", h.Mentorship.CancelSession)
	}

	reviews := v1.Group("/reviews")
	{
		reviews.POST("", h.Mentorship.CreateReview)
	}

	payments := v1.Group("/payments")
	{
		payments.POST("", h.Payment.Create)
		payments.GET("", h.Payment.ListMine)
		payments.GET("/:id", h.Payment.Get)
		payments.PATCH("/:id/status", h.Payment.UpdateStatus)
		payments.POST("/:id/settle", h.Payment.Settle)
	}
}
