package httpapi

import (
	"github.com/alexanderramin/pathwise/internal/service"
	"github.com/gin-gonic/gin"
)

func toAuthDTO(r *service.AuthResult) authDTO {
	return authDTO{Token: r.Token, ExpiresAt: r.ExpiresAt, User: toUserDTO(r.User)}
}

func (h *handler) register(c *gin.Context) {
	var req registerRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.svc.Auth.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		handleError(c, err)
		return
	}
	created(c, toAuthDTO(res))
}

func (h *handler) login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.svc.Auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		handleError(c, err)
		return
	}
	success(c, toAuthDTO(res))
}

func (h *handler) me(c *gin.Context) {
	u, err := h.svc.Auth.Me(c.Request.Context(), currentUserID(c))
	if err != nil {
		handleError(c, err)
		return
	}
	success(c, toUserDTO(u))
}

func (h *handler) listUsers(c *gin.Context) {
	users, err := h.svc.Auth.ListUsers(c.Request.Context(), currentUserID(c))
	if err != nil {
		handleError(c, err)
		return
	}
	out := make([]userDTO, 0, len(users))
	for _, u := range users {
		out = append(out, toUserDTO(u))
	}
	success(c, out)
}
