package httpapi

import (
	"net/http"

	"github.com/alexanderramin/pathwise/internal/service"
	"github.com/gin-gonic/gin"
)

func (h *handler) listSteps(c *gin.Context) {
	steps, err := h.svc.Steps.List(c.Request.Context(), currentUserID(c), optionalQuery(c, "goal_id"))
	if err != nil {
		handleError(c, err)
		return
	}
	out := make([]stepDTO, 0, len(steps))
	for _, s := range steps {
		out = append(out, toStepDTO(s))
	}
	success(c, out)
}

func (h *handler) createStep(c *gin.Context) {
	var req stepRequest
	if !bindJSON(c, &req) {
		return
	}
	s, err := h.svc.Steps.Create(c.Request.Context(), currentUserID(c), service.StepInput(req))
	if err != nil {
		handleError(c, err)
		return
	}
	created(c, toStepDTO(s))
}

func (h *handler) getStep(c *gin.Context) {
	s, err := h.svc.Steps.Get(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	success(c, toStepDTO(s))
}

func (h *handler) updateStep(c *gin.Context) {
	var req stepRequest
	if !bindJSON(c, &req) {
		return
	}
	s, err := h.svc.Steps.Update(c.Request.Context(), currentUserID(c), c.Param("id"), service.StepInput(req))
	if err != nil {
		handleError(c, err)
		return
	}
	success(c, toStepDTO(s))
}

func (h *handler) deleteStep(c *gin.Context) {
	if err := h.svc.Steps.Delete(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
