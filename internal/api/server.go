package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vinhph2/quizhub-api/internal/middleware"
	"github.com/vinhph2/quizhub-api/internal/service"
	"github.com/vinhph2/quizhub-api/pkg/logger"
)

const maxRequestBody = 1 << 20 // 1MB

type Server struct {
	tenant     *TenantHandler
	account    *AccountHandler
	question   *QuestionHandler
	quiz       *QuizHandler
	rateLimit  *middleware.RateLimitMiddleware
	validation *middleware.ValidationMiddleware
	logger     *logger.Logger

	globalRateLimit int
}

// NewServer wires handlers to services. rateLimit may be nil, in which case
// no rate limiting is applied (no redis configured).
func NewServer(
	tenantService *service.TenantService,
	accountService *service.AccountService,
	questionService *service.QuestionService,
	quizService *service.QuizService,
	rateLimit *middleware.RateLimitMiddleware,
	validation *middleware.ValidationMiddleware,
	logger *logger.Logger,
	globalRateLimit int,
) *Server {
	return &Server{
		tenant:          NewTenantHandler(tenantService),
		account:         NewAccountHandler(accountService),
		question:        NewQuestionHandler(questionService),
		quiz:            NewQuizHandler(quizService),
		rateLimit:       rateLimit,
		validation:      validation,
		logger:          logger,
		globalRateLimit: globalRateLimit,
	}
}

// SetupRoutes registers the full HTTP surface. Auth routes take the tenant
// in the body; admin and student routes take it as a path segment. The
// asymmetry is kept for wire compatibility with existing clients.
func (s *Server) SetupRoutes(router *gin.Engine) {
	// health stays outside middleware so probes never get throttled
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	router.Use(s.validation.ValidateRequestSize(maxRequestBody))
	router.Use(s.validation.ValidateContentType("application/json"))
	if s.rateLimit != nil {
		router.Use(s.rateLimit.GlobalRateLimit(s.globalRateLimit))
	}

	router.POST("/tenant/create", s.tenant.CreateTenant)
	router.GET("/tenant-check/:name", s.tenant.CheckTenant)
	router.POST("/signup", s.account.Signup)
	router.POST("/login", s.account.Login)

	tenant := router.Group("/:tenant")
	{
		admin := tenant.Group("/admin")
		{
			admin.POST("/set_questions", s.question.SetQuestions)
			admin.GET("/questions", s.question.AdminQuestions)
		}

		student := tenant.Group("/student")
		{
			student.GET("/questions", s.question.StudentQuestions)
			student.POST("/submit", s.quiz.Submit)
		}
	}
}
