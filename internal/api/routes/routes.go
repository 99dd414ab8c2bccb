package routes

import (
	"time"

	"office-management-backend/internal/api/handlers"
	"office-management-backend/internal/api/middleware"
	"office-management-backend/internal/auth"
	"office-management-backend/internal/config"
	"office-management-backend/internal/repository"
	"office-management-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
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
	organizationRepo := repository.NewOrganizationRepository(db)
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	leaveRepo := repository.NewLeaveRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	summaryRepo := repository.NewMonthlySummaryRepository(db)

	// Initialize services
	organizationService := service.NewOrganizationService(organizationRepo, validator)
	userService := service.NewUserService(userRepo, organizationRepo, validator)
	taskService := service.NewTaskService(taskRepo, userRepo, validator)
	attendanceService := service.NewAttendanceService(attendanceRepo, userRepo, validator)
	leaveService := service.NewLeaveService(leaveRepo, validator)
	expenseService := service.NewExpenseService(expenseRepo, validator)
	summaryService := service.NewSummaryService(summaryRepo, userRepo, taskRepo, attendanceRepo, expenseRepo, validator)

	// Initialize auth service, middleware and handler
	sessionTTL := time.Duration(cfg.SessionTTLHours) * time.Hour
	authService := auth.NewService(userRepo, sessionRepo, validator, cfg.SessionSecret, sessionTTL)
	authMiddleware := auth.NewMiddleware(authService)
	authHandler := auth.NewHandler(authService, int(sessionTTL.Seconds()), cfg.IsProduction())

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	organizationHandler := handlers.NewOrganizationHandler(organizationService)
	userHandler := handlers.NewUserHandler(userService)
	taskHandler := handlers.NewTaskHandler(taskService)
	attendanceHandler := handlers.NewAttendanceHandler(attendanceService)
	leaveHandler := handlers.NewLeaveHandler(leaveService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	summaryHandler := handlers.NewSummaryHandler(summaryService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/login", authHandler.Login)

		authenticated := authGroup.Group("")
		authenticated.Use(authMiddleware.RequireAuth())
		{
			authenticated.POST("/logout", authHandler.Logout)
			authenticated.GET("/me", authHandler.Me)
			authenticated.PATCH("/profile", authHandler.UpdateProfile)
			authenticated.POST("/change-password", authHandler.ChangePassword)
		}
	}

	// API routes - all endpoints require an authenticated session
	api := router.Group("/api")
	api.Use(authMiddleware.RequireAuth())
	{
		// Organization routes. Everyone can read, only administrators mutate
		organizations := api.Group("/organizations")
		{
			organizations.GET("", organizationHandler.ListOrganizations)
			organizations.GET("/:id", organizationHandler.GetOrganization)

			adminOrganizations := organizations.Group("")
			adminOrganizations.Use(authMiddleware.RequireAdmin())
			{
				adminOrganizations.POST("", organizationHandler.CreateOrganization)
				adminOrganizations.PATCH("/:id", organizationHandler.UpdateOrganization)
			}
		}

		// Task routes. Creation and deletion are administrative, updates are
		// scope-checked in the service so assignees can progress their own work
		tasks := api.Group("/tasks")
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.GET("/:id", taskHandler.GetTask)
			tasks.PATCH("/:id", taskHandler.UpdateTask)

			adminTasks := tasks.Group("")
			adminTasks.Use(authMiddleware.RequireAdmin())
			{
				adminTasks.POST("", taskHandler.CreateTask)
				adminTasks.DELETE("/:id", taskHandler.DeleteTask)
			}
		}

		// Attendance routes
		attendance := api.Group("/attendance")
		{
			attendance.GET("", attendanceHandler.ListAttendance)
			attendance.GET("/today", attendanceHandler.GetTodayAttendance)
			attendance.POST("", attendanceHandler.MarkAttendance)
			attendance.PATCH("/:id", authMiddleware.RequireAdmin(), attendanceHandler.UpdateAttendance)
		}

		// Leave routes. Approval decisions are administrative
		leaves := api.Group("/leaves")
		{
			leaves.GET("", leaveHandler.ListLeaves)
			leaves.POST("", leaveHandler.CreateLeave)
			leaves.PATCH("/:id/status", authMiddleware.RequireAdmin(), leaveHandler.UpdateLeaveStatus)
		}

		// Expense routes. Approval decisions are administrative
		expenses := api.Group("/expenses")
		{
			expenses.GET("", expenseHandler.ListExpenses)
			expenses.POST("", expenseHandler.CreateExpense)
			expenses.PATCH("/:id/status", authMiddleware.RequireAdmin(), expenseHandler.UpdateExpenseStatus)
		}

		// Employee management routes. Administrators only
		users := api.Group("/users")
		users.Use(authMiddleware.RequireAdmin())
		{
			users.GET("", userHandler.ListUsers)
			users.POST("", userHandler.CreateUser)
			users.GET("/:id", userHandler.GetUser)
			users.PATCH("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}

		// Monthly summary routes
		summaries := api.Group("/summaries")
		{
			summaries.GET("", summaryHandler.ListSummaries)
			summaries.GET("/user/:id", summaryHandler.GetUserSummaries)
			summaries.POST("/generate", authMiddleware.RequireAdmin(), summaryHandler.GenerateSummaries)
		}
	}

	return router
}
