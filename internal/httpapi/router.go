// Package httpapi exposes the pathwise services as a JSON API.
package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/alexanderramin/pathwise/internal/service"
	"github.com/gin-gonic/gin"
)

// Services bundles the use cases served over HTTP.
type Services struct {
	Auth         service.AuthService
	Assessment   service.AssessmentService
	Profile      service.ProfileService
	Goals        service.GoalService
	Roadmaps     service.RoadmapService
	Steps        service.StepService
	Resources    service.ResourceService
	Achievements service.AchievementService
	Imports      service.ImportService
}

type handler struct {
	svc Services
}

// NewRouter builds the gin engine with every route mounted.
func NewRouter(svc Services, tokens TokenValidator, logger *slog.Logger) *gin.Engine {
	SetupValidator()

	r := gin.New()
	r.Use(requestID(), requestLogger(logger), gin.Recovery())

	h := &handler{svc: svc}
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.POST("/auth/register", h.register)
	api.POST("/auth/login", h.login)

	authed := api.Group("", requireAuth(tokens))
	authed.GET("/auth/me", h.me)
	authed.GET("/users", h.listUsers)

	authed.GET("/assessment/questions", h.questions)
	authed.POST("/assessment/submit", h.submitAssessment)
	authed.GET("/profile", h.getProfile)
	authed.PUT("/profile", h.updateProfile)

	authed.GET("/goals", h.listGoals)
	authed.POST("/goals", h.createGoal)
	authed.POST("/goals/import", h.importPlan)
	authed.GET("/goals/:id", h.getGoal)
	authed.PUT("/goals/:id", h.updateGoal)
	authed.DELETE("/goals/:id", h.deleteGoal)
	authed.POST("/goals/:id/complete", h.completeGoal)
	authed.GET("/goals/:id/roadmap", h.goalRoadmap)
	authed.POST("/roadmap/generate", h.generateRoadmap)

	authed.GET("/steps", h.listSteps)
	authed.POST("/steps", h.createStep)
	authed.GET("/steps/:id", h.getStep)
	authed.PUT("/steps/:id", h.updateStep)
	authed.DELETE("/steps/:id", h.deleteStep)

	authed.GET("/resources", h.listResources)
	authed.POST("/resources", h.createResource)
	authed.GET("/resources/:id", h.getResource)
	authed.DELETE("/resources/:id", h.deleteResource)

	authed.GET("/achievements", h.achievements)

	return r
}

// optionalQuery returns a pointer to the query value, or nil when absent.
func optionalQuery(c *gin.Context, key string) *string {
	v, ok := c.GetQuery(key)
	if !ok || v == "" {
		return nil
	}
	return &v
}
