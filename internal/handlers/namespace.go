package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/langbridge-backend/internal/services"
)

type NamespaceHandler struct {
	svc services.NamespaceService
}

func NewNamespaceHandler(svc services.NamespaceService) *NamespaceHandler {
	return &NamespaceHandler{svc: svc}
}

// GET /api/v1/namespaces
//
// Namespaces are scoped to the authenticated project.
func (h *NamespaceHandler) List(c *gin.Context) {
	project := MustProject(c)
	if project == nil {
		return
	}
	namespaces, err := h.svc.GetByProjectID(c.Request.Context(), project.ID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "namespaces_fetch_failed", err)
		return
	}
	RespondOK(c, gin.H{"namespaces": namespaces})
}

// POST /api/v1/namespaces
func (h *NamespaceHandler) Create(c *gin.Context) {
	project := MustProject(c)
	if project == nil {
		return
	}
	var input services.NamespaceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_payload", err)
		return
	}
	if input.Name == "" {
		RespondError(c, http.StatusBadRequest, "invalid_payload", errors.New("namespace name is required"))
		return
	}

	existing, err := h.svc.GetByName(c.Request.Context(), input.Name, project.ID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "namespace_create_failed", err)
		return
	}
	if existing != nil {
		RespondError(c, http.StatusConflict, "namespace_exists", errors.New("namespace name already used in this project"))
		return
	}

	namespace, err := h.svc.Create(c.Request.Context(), project.ID, input)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "namespace_create_failed", err)
		return
	}
	c.JSON(http.StatusCreated, namespace)
}

// PUT /api/v1/namespaces/:id
func (h *NamespaceHandler) Update(c *gin.Context) {
	project := MustProject(c)
	if project == nil {
		return
	}
	namespaceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_namespace_id", err)
		return
	}
	var input services.NamespaceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_payload", err)
		return
	}

	namespace, err := h.svc.GetByID(c.Request.Context(), namespaceID, project.ID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "namespace_update_failed", err)
		return
	}
	if namespace == nil {
		RespondError(c, http.StatusNotFound, "namespace_not_found", errors.New("namespace does not exist in this project"))
		return
	}

	if input.Name != "" {
		namespace.Name = input.Name
	}
	if input.Description != "" {
		namespace.Description = input.Description
	}
	updated, err := h.svc.Update(c.Request.Context(), namespace)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "namespace_update_failed", err)
		return
	}
	RespondOK(c, updated)
}

// DELETE /api/v1/namespaces/:id
//
// Deleting a namespace cascades to its translations at the database level.
func (h *NamespaceHandler) Delete(c *gin.Context) {
	project := MustProject(c)
	if project == nil {
		return
	}
	namespaceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_namespace_id", err)
		return
	}
	namespace, err := h.svc.GetByID(c.Request.Context(), namespaceID, project.ID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "namespace_delete_failed", err)
		return
	}
	if namespace == nil {
		RespondError(c, http.StatusNotFound, "namespace_not_found", errors.New("namespace does not exist in this project"))
		return
	}
	if err := h.svc.Delete(c.Request.Context(), namespaceID); err != nil {
		RespondError(c, http.StatusInternalServerError, "namespace_delete_failed", err)
		return
	}
	RespondOK(c, gin.H{"deleted": namespace.ID})
}
