package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// LetterHandler serves generated letters of intent.
type LetterHandler struct {
	facade LetterFacade
}

// NewLetterHandler constructs LetterHandler.
func NewLetterHandler(facade LetterFacade) *LetterHandler {
	return &LetterHandler{facade: facade}
}

// Download handles GET /api/orders/:id/letter.
func (h *LetterHandler) Download(c *gin.Context) {
	pdf, filename, err := h.facade.Letter(c.Request.Context(), CurrentUserID(c), CurrentRole(c), c.Param("id"))
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
