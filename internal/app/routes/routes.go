// Package routes wires controllers onto the HTTP router
package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/IndiraMehta/EduTask/internal/app/controllers"
	"github.com/IndiraMehta/EduTask/internal/app/services"
	"github.com/IndiraMehta/EduTask/internal/middleware"
	"github.com/IndiraMehta/EduTask/internal/pkg/auth"
	"github.com/IndiraMehta/EduTask/internal/pkg/metrics"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	assignmentController *controllers.AssignmentController,
	testController *controllers.TestController,
	jwtService *auth.JWTService,
	userService *services.UserService,
	dbPool *pgxpool.Pool,
) {
	router.Use(middleware.MetricsMiddleware())

	// Operational endpoints outside the versioned API
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	v1 := router.Group("/api/v1")
	v1.GET("/health", healthHandler(dbPool))

	// --- Public auth routes ---
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", authController.Register)
		authGroup.POST("/login", authController.Login)
		authGroup.POST("/refresh", authController.RefreshToken)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(middleware.JWTAuthMiddleware(jwtService))

	// Profile routes only need a valid token; the profile may not exist yet
	users := authenticated.Group("/users")
	{
		users.POST("/save-profile", userController.SaveProfile)
		users.GET("/profile", userController.GetProfile)
	}

	// Everything below requires a saved profile
	withProfile := authenticated.Group("")
	withProfile.Use(middleware.ProfileMiddleware(userService))

	assignments := withProfile.Group("/assignments")
	{
		assignments.GET("", assignmentController.List)
		assignments.POST("", assignmentController.Create)
		assignments.GET("/teacher/submissions", assignmentController.TeacherOverview)
		assignments.GET("/:id/submissions", assignmentController.GetSubmissions)
		assignments.POST("/:id/submit", assignmentController.Submit)
		assignments.PUT("/submissions/:id/grade", assignmentController.GradeSubmission)
		assignments.GET("/:id/download/:filename", assignmentController.DownloadAttachment)
		assignments.GET("/submissions/:id/download/:filename", assignmentController.DownloadSubmissionFile)
	}

	tests := withProfile.Group("/tests")
	{
		tests.GET("", testController.List)
		tests.POST("", testController.Create)
		tests.GET("/teacher/grades", testController.TeacherOverview)
		tests.GET("/:id/grades", testController.GetRoster)
		tests.GET("/:id/grades/export", testController.ExportGrades)
		tests.PUT("/:id/grade", testController.Grade)
	}
}

func healthHandler(dbPool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := dbPool.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "down"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "up"})
	}
}
