package httpapi

import (
	"net/http"

	"github.com/alexanderramin/pathwise/internal/service"
	"github.com/gin-gonic/gin"
)

func (h *handler) listResources(c *gin.Context) {
	res, err := h.svc.Resources.List(c.Request.Context(), currentUserID(c), optionalQuery(c, "goal_id"))
	if err != nil {
		handleError(c, err)
		return
	}
	out := make([]resourceDTO, 0, len(res))
	for _, r := range res {
		out = append(out, toResourceDTO(r))
	}
	success(c, out)
}

func (h *handler) createResource(c *gin.Context) {
	var req resourceRequest
	if !bindJSON(c, &req) {
		return
	}
	r, err := h.svc.Resources.Create(c.Request.Context(), currentUserID(c), service.ResourceInput(req))
	if err != nil {
		handleError(c, err)
		return
	}
	created(c, toResourceDTO(r))
}

func (h *handler) getResource(c *gin.Context) {
	r, err := h.svc.Resources.Get(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	success(c, toResourceDTO(r))
}

func (h *handler) deleteResource(c *gin.Context) {
	if err := h.svc.Resources.Delete(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
