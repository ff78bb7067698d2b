package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/questio/questio-backend/internal/config"
	"github.com/questio/questio-backend/internal/handler"
	"github.com/questio/questio-backend/internal/middleware"
	"github.com/questio/questio-backend/internal/response"
	"github.com/questio/questio-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth     *handler.AuthHandler
	Judge    *handler.JudgeHandler
	Question *handler.QuestionHandler
	Metrics  *handler.MetricsHandler
	WS       *handler.WSHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	counterService *service.CounterService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Every execution-shaped request bumps the global execution counter.
	countExecutions := middleware.CountExecutions(counterService)

	// Rate limiter for auth routes (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── 1. Auth Group (Public, Rate Limited) ──────────────────────────
	auth := router.Group("/api/v1/auth")
	auth.Use(authLimiter.Middleware())
	{
		auth.POST("/login", handlers.Auth.Login)
		auth.POST("/logout", middleware.RequireStudentJWT(authService), handlers.Auth.Logout)
		auth.GET("/me", middleware.RequireStudentJWT(authService), handlers.Auth.Me)
	}

	// ─── 2. Public Group (catalog + anonymous execution) ───────────────
	api := router.Group("/api/v1")
	{
		api.GET("/questions", handlers.Question.ListQuestions)
		api.GET("/tags", handlers.Question.ListTags)

		api.POST("/execute", countExecutions, handlers.Judge.Execute)
		api.POST("/questions/execute", countExecutions, handlers.Judge.ExecuteQuestion)
		api.POST("/exams/questions/execute", countExecutions, handlers.Judge.ExecuteExamQuestion)

		api.POST("/metrics/clicks/:feature", handlers.Metrics.FeatureClick)
	}

	// ─── 3. Student Group (JWT + Single Device) ────────────────────────
	studentAPI := router.Group("/api/v1")
	studentAPI.Use(middleware.RequireStudentJWT(authService))
	{
		studentAPI.POST("/questions/submit", countExecutions, handlers.Judge.Submit)
		studentAPI.POST("/exams/submit", countExecutions, handlers.Judge.SubmitExam)
		studentAPI.PUT("/drafts", handlers.Judge.SaveDraft)
		studentAPI.GET("/drafts/:question_id", handlers.Judge.GetDraft)
		studentAPI.GET("/submissions", handlers.Judge.ListSubmissions)
	}

	// ─── 4. WebSocket Group (Instructor WS Auth) ───────────────────────
	ws := router.Group("/ws/v1")
	ws.Use(middleware.RequireInstructorWSAuth(authService))
	{
		ws.GET("/monitor/submissions", handlers.WS.SubmissionFeedStream)
	}

	return router
}
