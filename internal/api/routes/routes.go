package routes

import (
	"dealership-crm-backend/internal/api/handlers"
	"dealership-crm-backend/internal/api/middleware"
	"dealership-crm-backend/internal/assignment"
	"dealership-crm-backend/internal/auth"
	"dealership-crm-backend/internal/config"
	"dealership-crm-backend/internal/database/models"
	"dealership-crm-backend/internal/repository"
	"dealership-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	branchRepo := repository.NewBranchRepository(db)
	sourceRepo := repository.NewSourceRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	ruleRepo := repository.NewAssignmentRuleRepository(db)
	memberRepo := repository.NewRuleMemberRepository(db)
	cursorRepo := repository.NewRotationCursorRepository(db)
	logRepo := repository.NewAssignmentLogRepository(db)

	// Initialize the assignment engine
	engine := assignment.NewEngine(
		ruleRepo, memberRepo, cursorRepo, leadRepo, logRepo,
		assignment.WithMaxFallbackDepth(cfg.MaxFallbackDepth),
	)

	// Initialize services
	userService := service.NewUserService(userRepo, branchRepo, validator)
	branchService := service.NewBranchService(branchRepo, validator)
	sourceService := service.NewSourceService(sourceRepo, validator)
	leadService := service.NewLeadService(leadRepo, sourceRepo, userRepo, logRepo, engine, validator, cfg.BulkAssignWorkers)
	ruleService := service.NewRuleService(ruleRepo, memberRepo, cursorRepo, userRepo, sourceRepo, logRepo, engine, validator)
	authService := auth.NewAuthService(userRepo, cfg)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	branchHandler := handlers.NewBranchHandler(branchService)
	sourceHandler := handlers.NewSourceHandler(sourceService)
	leadHandler := handlers.NewLeadHandler(leadService)
	ruleHandler := handlers.NewRuleHandler(ruleService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Auth routes
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/login", authHandler.Login)
	}

	// API v1 routes - all endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(auth.RequireAuth(authService))

	manageRules := auth.RequireRole(models.UserRoleAdmin, models.UserRoleTeamLead)
	adminOnly := auth.RequireRole(models.UserRoleAdmin)

	{
		// User routes
		users := v1.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.GET("/:id", userHandler.GetUser)
			users.POST("", adminOnly, userHandler.CreateUser)
			users.PUT("/:id", adminOnly, userHandler.UpdateUser)
			users.DELETE("/:id", adminOnly, userHandler.DeleteUser)
		}

		// Branch routes
		branches := v1.Group("/branches")
		{
			branches.GET("", branchHandler.ListBranches)
			branches.GET("/:id", branchHandler.GetBranch)
			branches.POST("", adminOnly, branchHandler.CreateBranch)
			branches.PUT("/:id", adminOnly, branchHandler.UpdateBranch)
			branches.DELETE("/:id", adminOnly, branchHandler.DeleteBranch)
		}

		// Source routes
		sources := v1.Group("/sources")
		{
			sources.GET("", sourceHandler.ListSources)
			sources.GET("/:id", sourceHandler.GetSource)
			sources.POST("", manageRules, sourceHandler.CreateSource)
			sources.PUT("/:id", manageRules, sourceHandler.UpdateSource)
			sources.DELETE("/:id", manageRules, sourceHandler.DeleteSource)
			sources.POST("/reset-daily-counts", manageRules, sourceHandler.ResetTodaysCounts)
		}

		// Lead routes
		leads := v1.Group("/leads")
		{
			leads.GET("", leadHandler.ListLeads)
			leads.POST("", leadHandler.CreateLead)
			leads.POST("/assign", manageRules, leadHandler.ManualAssign)
			leads.POST("/assign/by-source", manageRules, leadHandler.BulkAssignBySource)
			leads.GET("/:id", leadHandler.GetLead)
			leads.PATCH("/:id/status", leadHandler.UpdateLeadStatus)
			leads.POST("/:id/auto-assign", manageRules, leadHandler.TriggerAutoAssign)
			leads.GET("/:id/logs", leadHandler.GetLeadLogs)
		}

		// Assignment rule routes
		rules := v1.Group("/assignment-rules")
		rules.Use(manageRules)
		{
			rules.GET("", ruleHandler.ListRules)
			rules.POST("", ruleHandler.CreateRule)
			rules.GET("/:id", ruleHandler.GetRule)
			rules.PUT("/:id", ruleHandler.UpdateRule)
			rules.DELETE("/:id", ruleHandler.DeleteRule)
			rules.POST("/:id/members", ruleHandler.AddMember)
			rules.PUT("/:id/members/:memberId", ruleHandler.UpdateMember)
			rules.DELETE("/:id/members/:memberId", ruleHandler.RemoveMember)
			rules.GET("/:id/stats", ruleHandler.GetRuleStats)
			rules.GET("/:id/logs", ruleHandler.GetRuleLogs)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
