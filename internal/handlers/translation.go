package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/langbridge-backend/internal/services"
	"github.com/yungbote/langbridge-backend/internal/types"
)

type TranslationHandler struct {
	svc services.TranslationService
}

func NewTranslationHandler(svc services.TranslationService) *TranslationHandler {
	return &TranslationHandler{svc: svc}
}

// GET /api/v1/translations/:projectId/:locale
// GET /api/v1/translations/:projectId/:locale/:namespace
//
// The public read path never fails a consumer over a bad identifier: anything
// unresolvable answers an empty document set with 200 so UIs fall back to key
// literals instead of breaking.
func (h *TranslationHandler) GetTranslations(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		RespondOK(c, types.TranslationSet{})
		return
	}
	locale := c.Param("locale")
	namespace := c.Param("namespace")

	var result types.TranslationSet
	if namespace != "" {
		result, err = h.svc.GetTranslationsForProject(c.Request.Context(), projectID, locale, namespace)
	} else {
		result, err = h.svc.GetTranslationsForProject(c.Request.Context(), projectID, locale)
	}
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "translations_fetch_failed", err)
		return
	}
	RespondOK(c, result)
}

type batchUpsertRequest struct {
	Translations []types.TranslationEntry `json:"translations"`
}

// POST /api/v1/projects/:id/translations/batch
func (h *TranslationHandler) BatchUpsert(c *gin.Context) {
	project := MustProject(c)
	if project == nil {
		return
	}

	pathID, err := uuid.Parse(c.Param("id"))
	if err != nil || pathID != project.ID {
		RespondError(c, http.StatusForbidden, "project_mismatch", errors.New("API key does not belong to this project"))
		return
	}

	var req batchUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_payload", err)
		return
	}
	if len(req.Translations) == 0 {
		RespondError(c, http.StatusBadRequest, "invalid_payload", errors.New("translations array is empty"))
		return
	}

	rows, err := h.svc.UpsertTranslations(c.Request.Context(), project.ID, req.Translations)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "batch_upsert_failed", err)
		return
	}
	RespondOK(c, gin.H{
		"processed": len(rows),
		"submitted": len(req.Translations),
		"results":   rows,
	})
}

// GET /api/v1/namespaces/:id/translations
func (h *TranslationHandler) ListByNamespace(c *gin.Context) {
	namespaceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_namespace_id", err)
		return
	}
	rows, err := h.svc.GetByNamespaceID(c.Request.Context(), namespaceID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "translations_fetch_failed", err)
		return
	}
	RespondOK(c, gin.H{"translations": rows})
}

// POST /api/v1/translations
func (h *TranslationHandler) Create(c *gin.Context) {
	var input services.TranslationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_payload", err)
		return
	}
	if input.Key == "" || input.Locale == "" || input.NamespaceID == uuid.Nil {
		RespondError(c, http.StatusBadRequest, "invalid_payload", errors.New("key, locale and namespace_id are required"))
		return
	}

	existing, err := h.svc.Get(c.Request.Context(), input.Key, input.Locale, input.NamespaceID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "translation_create_failed", err)
		return
	}
	if existing != nil {
		RespondError(c, http.StatusConflict, "translation_exists", errors.New("translation already exists for this key, locale and namespace"))
		return
	}

	row, err := h.svc.Create(c.Request.Context(), input)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "translation_create_failed", err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

type translationUpdateRequest struct {
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
}

// PUT /api/v1/translations/:id
func (h *TranslationHandler) Update(c *gin.Context) {
	translationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_translation_id", err)
		return
	}
	var req translationUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_payload", err)
		return
	}

	row, err := h.svc.Update(c.Request.Context(), translationID, req.Value, req.Description)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "translation_update_failed", err)
		return
	}
	if row == nil {
		RespondError(c, http.StatusNotFound, "translation_not_found", errors.New("translation does not exist"))
		return
	}
	RespondOK(c, row)
}

// DELETE /api/v1/translations/:id
func (h *TranslationHandler) Delete(c *gin.Context) {
	translationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_translation_id", err)
		return
	}
	row, err := h.svc.Delete(c.Request.Context(), translationID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "translation_delete_failed", err)
		return
	}
	if row == nil {
		RespondError(c, http.StatusNotFound, "translation_not_found", errors.New("translation does not exist"))
		return
	}
	RespondOK(c, gin.H{"deleted": row.ID})
}

// GET /api/v1/clear-cache
//
// Registered only when the server runs in development mode.
func (h *TranslationHandler) ClearCache(c *gin.Context) {
	n, err := h.svc.ClearAllCache(c.Request.Context())
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "cache_clear_failed", err)
		return
	}
	RespondOK(c, gin.H{"cleared": n})
}
