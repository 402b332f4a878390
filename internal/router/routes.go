package router

import (
	"github.com/gin-gonic/gin"
	"github.com/ifclub/ifclub-api/internal/auth"
	"github.com/ifclub/ifclub-api/internal/club"
	"github.com/ifclub/ifclub-api/internal/config"
	"github.com/ifclub/ifclub-api/internal/member"
	"github.com/ifclub/ifclub-api/internal/meta"
	"github.com/ifclub/ifclub-api/internal/shared/database"
	"github.com/ifclub/ifclub-api/internal/shared/middleware"
	"github.com/ifclub/ifclub-api/internal/shared/token"
)

// Setup configures all application-specific routes using dependency injection
func Setup(router *gin.Engine, cfg *config.Config, db *database.DB) {
	// Meta handler (health check)
	metaHandler := meta.NewHandler(cfg, db)
	router.GET("/health", metaHandler.Health)

	// repository
	memberRepository := member.NewMemberRepository(db.DB)
	clubRepository := club.NewClubRepository(db.DB)

	// shared services
	tokenManager := token.NewJWTManager(cfg)
	passwordHasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	tokenIssuer := auth.NewTokenIssuer(tokenManager, memberRepository)

	// service
	memberService := member.NewMemberService(memberRepository, passwordHasher, tokenIssuer)
	clubService := club.NewClubService(clubRepository)

	// handler
	memberHandler := member.NewMemberHandler(memberService)
	clubHandler := club.NewClubHandler(clubService)

	// API v1 routes
	authV1 := router.Group("/api/v1/auth")
	authV1.Use(middleware.RateLimit(cfg.RateLimit))
	{
		authV1.POST("/signup", memberHandler.Signup)
		authV1.POST("/login", memberHandler.Login)
		authV1.POST("/refresh", memberHandler.Refresh)
	}

	memberV1 := router.Group("/api/v1/members")
	memberV1.Use(middleware.JWT(tokenManager))
	{
		memberV1.GET("", memberHandler.List)
		memberV1.GET("/me", memberHandler.GetProfile)
		memberV1.GET("/:id", memberHandler.GetByID)
		memberV1.PUT("/:id", memberHandler.Update)
		memberV1.DELETE("/:id", memberHandler.Delete)
	}

	clubV1 := router.Group("/api/v1/clubs")
	clubV1.Use(middleware.JWT(tokenManager))
	{
		clubV1.GET("/:id", clubHandler.GetByID)
	}
}
