package httpapi

import (
	"net/http"

	"github.com/alexanderramin/pathwise/internal/importer"
	"github.com/alexanderramin/pathwise/internal/service"
	"github.com/gin-gonic/gin"
)

func (h *handler) listGoals(c *gin.Context) {
	goals, err := h.svc.Goals.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		handleError(c, err)
		return
	}
	out := make([]goalDTO, 0, len(goals))
	for _, g := range goals {
		out = append(out, toGoalDTO(g))
	}
	success(c, out)
}

func (h *handler) createGoal(c *gin.Context) {
	var req goalRequest
	if !bindJSON(c, &req) {
		return
	}
	g, err := h.svc.Goals.Create(c.Request.Context(), currentUserID(c), service.GoalInput(req))
	if err != nil {
		handleError(c, err)
		return
	}
	created(c, toGoalDTO(g))
}

// importPlan stores a goal with its steps and resources from a plan document.
// The body is decoded strictly, so unknown keys are rejected.
func (h *handler) importPlan(c *gin.Context) {
	schema, err := importer.DecodeImportSchema(c.Request.Body)
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return
	}
	plan, err := h.svc.Imports.Import(c.Request.Context(), currentUserID(c), schema)
	if err != nil {
		handleError(c, err)
		return
	}
	created(c, toPlanDTO(plan))
}

func (h *handler) getGoal(c *gin.Context) {
	g, err := h.svc.Goals.Get(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	success(c, toGoalDTO(g))
}

func (h *handler) updateGoal(c *gin.Context) {
	var req goalUpdateRequest
	if !bindJSON(c, &req) {
		return
	}
	g, err := h.svc.Goals.Update(c.Request.Context(), currentUserID(c), c.Param("id"), service.GoalInput(req))
	if err != nil {
		handleError(c, err)
		return
	}
	success(c, toGoalDTO(g))
}

func (h *handler) deleteGoal(c *gin.Context) {
	if err := h.svc.Goals.Delete(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handler) completeGoal(c *gin.Context) {
	res, err := h.svc.Goals.Complete(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	success(c, toCompletionDTO(res))
}

// goalRoadmap returns the generated roadmap text together with the goal's
// steps in order.
func (h *handler) goalRoadmap(c *gin.Context) {
	ctx := c.Request.Context()
	userID := currentUserID(c)
	goalID := c.Param("id")

	g, err := h.svc.Goals.Get(ctx, userID, goalID)
	if err != nil {
		handleError(c, err)
		return
	}
	steps, err := h.svc.Steps.List(ctx, userID, &goalID)
	if err != nil {
		handleError(c, err)
		return
	}
	out := make([]stepDTO, 0, len(steps))
	for _, s := range steps {
		out = append(out, toStepDTO(s))
	}
	success(c, gin.H{"goal": toGoalDTO(g), "steps": out})
}

func (h *handler) generateRoadmap(c *gin.Context) {
	var req generateRequest
	if !bindJSON(c, &req) {
		return
	}
	g, err := h.svc.Roadmaps.Generate(c.Request.Context(), currentUserID(c), service.GenerateRoadmapRequest{
		GoalID:      req.GoalID,
		Title:       req.Goal,
		Category:    req.Category,
		Description: req.Description,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	success(c, toGoalDTO(g))
}

func (h *handler) achievements(c *gin.Context) {
	stats, err := h.svc.Achievements.Get(c.Request.Context(), currentUserID(c))
	if err != nil {
		handleError(c, err)
		return
	}
	success(c, toStatsDTO(stats))
}
