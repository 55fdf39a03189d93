package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/langbridge-backend/internal/services"
)

type LocaleHandler struct {
	svc services.LocaleService
}

func NewLocaleHandler(svc services.LocaleService) *LocaleHandler {
	return &LocaleHandler{svc: svc}
}

// GET /api/v1/locales
func (h *LocaleHandler) List(c *gin.Context) {
	locales, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "locales_fetch_failed", err)
		return
	}
	RespondOK(c, gin.H{"locales": locales})
}

// POST /api/v1/locales
func (h *LocaleHandler) Create(c *gin.Context) {
	var input services.LocaleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_payload", err)
		return
	}
	if input.Code == "" {
		RespondError(c, http.StatusBadRequest, "invalid_payload", errors.New("locale code is required"))
		return
	}

	existing, err := h.svc.GetByCode(c.Request.Context(), input.Code)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "locale_create_failed", err)
		return
	}
	if existing != nil {
		RespondError(c, http.StatusConflict, "locale_exists", errors.New("locale code already registered"))
		return
	}

	locale, err := h.svc.Create(c.Request.Context(), input)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "locale_create_failed", err)
		return
	}
	c.JSON(http.StatusCreated, locale)
}

// PUT /api/v1/locales/:id
func (h *LocaleHandler) Update(c *gin.Context) {
	localeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_locale_id", err)
		return
	}
	var input services.LocaleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_payload", err)
		return
	}

	locale, err := h.svc.Update(c.Request.Context(), localeID, input)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "locale_update_failed", err)
		return
	}
	if locale == nil {
		RespondError(c, http.StatusNotFound, "locale_not_found", errors.New("locale does not exist"))
		return
	}
	RespondOK(c, locale)
}

// DELETE /api/v1/locales/:id
func (h *LocaleHandler) Delete(c *gin.Context) {
	localeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_locale_id", err)
		return
	}
	locale, err := h.svc.Delete(c.Request.Context(), localeID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "locale_delete_failed", err)
		return
	}
	if locale == nil {
		RespondError(c, http.StatusNotFound, "locale_not_found", errors.New("locale does not exist"))
		return
	}
	RespondOK(c, gin.H{"deleted": locale.ID})
}
