package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/start94/-Code-of-Babel/internal/usecase"
)

// LanguageHandler handles language identification HTTP requests
type LanguageHandler struct {
	languageUC usecase.LanguageUsecase
}

// NewLanguageHandler creates a new language handler
func NewLanguageHandler(languageUC usecase.LanguageUsecase) *LanguageHandler {
	return &LanguageHandler{languageUC: languageUC}
}

// identifyRequest is the identify endpoint's body. Text is a pointer so
// binding distinguishes a missing field (422) from an empty string (400,
// decided by the usecase).
type identifyRequest struct {
	Text *string `json:"text" binding:"required"`
}

// IdentifyLanguage handles POST /identify-language
func (h *LanguageHandler) IdentifyLanguage(c *gin.Context) {
	var req identifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleValidationError(c, "text is required and must be a string")
		return
	}

	output, err := h.languageUC.Identify(c.Request.Context(), &usecase.IdentifyInput{Text: *req.Text})
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, output)
}

// ListLanguages handles GET /api/v1/languages
func (h *LanguageHandler) ListLanguages(c *gin.Context) {
	respondSuccess(c, http.StatusOK, gin.H{
		"languages": h.languageUC.Languages(c.Request.Context()),
	})
}
