package handlers

import (
	"github.com/casdoor/casdoor-go-sdk/casdoorsdk"
	"github.com/gin-gonic/gin"
	"github.com/studyforge/scoring-service/internal/services"
	"github.com/studyforge/scoring-service/internal/utils"
	"github.com/studyforge/scoring-service/internal/validator"
)

type HandlerManager struct {
	testHandler        *TestHandler
	leaderboardHandler *LeaderboardHandler
	attemptHandler     *AttemptHandler

	identity *casdoorsdk.Client
	logger   utils.Logger
}

func NewHandlerManager(
	testService services.TestService,
	exportService services.ExportService,
	v *validator.Validator,
	identity *casdoorsdk.Client,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		testHandler:        NewTestHandler(testService, v, logger),
		leaderboardHandler: NewLeaderboardHandler(testService, logger),
		attemptHandler:     NewAttemptHandler(testService, exportService, logger),
		identity:           identity,
		logger:             logger,
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/health", HealthCheck)

	v1 := router.Group("/api/v1")
	v1.Use(IdentityMiddleware(hm.identity, hm.logger))
	{
		tests := v1.Group("/tests")
		{
			tests.POST("", hm.testHandler.StartTest)
			tests.PUT("/:id/answers", hm.testHandler.SubmitAnswer)
			tests.POST("/:id/submit", hm.testHandler.SubmitTest)
			tests.GET("/:id/results", hm.testHandler.GetResults)
		}

		v1.GET("/leaderboard", hm.leaderboardHandler.GetLeaderboard)

		attempts := v1.Group("/attempts")
		{
			attempts.GET("", hm.attemptHandler.ListAttempts)
			attempts.GET("/export", hm.attemptHandler.ExportAttempts)
		}
	}
}
