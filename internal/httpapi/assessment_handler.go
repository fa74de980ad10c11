package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/alexanderramin/pathwise/internal/domain"
	"github.com/alexanderramin/pathwise/internal/service"
	"github.com/gin-gonic/gin"
)

func (h *handler) questions(c *gin.Context) {
	qs, err := h.svc.Assessment.Questions(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	out := make([]questionDTO, 0, len(qs))
	for _, q := range qs {
		out = append(out, toQuestionDTO(q))
	}
	success(c, out)
}

func (h *handler) submitAssessment(c *gin.Context) {
	var req submitRequest
	if !bindJSON(c, &req) {
		return
	}
	answers := make([]service.AnswerInput, 0, len(req.Answers))
	for _, a := range req.Answers {
		// the letter tag only admits a-d, so lowering is safe
		answers = append(answers, service.AnswerInput{
			QuestionID: a.QuestionID,
			Letter:     domain.OptionLetter(strings.ToLower(a.Answer)),
		})
	}
	p, err := h.svc.Assessment.Submit(c.Request.Context(), currentUserID(c), answers)
	if err != nil {
		handleError(c, err)
		return
	}
	success(c, toProfileDTO(p))
}

func (h *handler) getProfile(c *gin.Context) {
	p, err := h.svc.Profile.Get(c.Request.Context(), currentUserID(c))
	if errors.Is(err, service.ErrNotFound) {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "no profile yet: complete the assessment first")
		return
	}
	if err != nil {
		handleError(c, err)
		return
	}
	success(c, toProfileDTO(p))
}

// updateProfile takes a flat {"dimension": "value"} object. Key and value
// checks happen in the service so failures count against the edit limit.
func (h *handler) updateProfile(c *gin.Context) {
	var body map[string]string
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "body must be an object of dimension values")
		return
	}
	patch := make(domain.DimensionMap, len(body))
	for k, v := range body {
		patch[domain.Dimension(k)] = v
	}
	p, err := h.svc.Profile.Update(c.Request.Context(), currentUserID(c), patch)
	if err != nil {
		handleError(c, err)
		return
	}
	success(c, toProfileDTO(p))
}
