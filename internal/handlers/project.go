package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/langbridge-backend/internal/services"
)

type ProjectHandler struct {
	svc services.ProjectService
}

func NewProjectHandler(svc services.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// GET /api/v1/projects
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "projects_fetch_failed", err)
		return
	}
	RespondOK(c, gin.H{"projects": projects})
}

// GET /api/v1/projects/:id
func (h *ProjectHandler) Get(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_project_id", err)
		return
	}
	project, err := h.svc.GetByID(c.Request.Context(), projectID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "project_fetch_failed", err)
		return
	}
	if project == nil {
		RespondError(c, http.StatusNotFound, "project_not_found", errors.New("project does not exist"))
		return
	}
	RespondOK(c, project)
}

// POST /api/v1/projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var input services.ProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_payload", err)
		return
	}
	if input.Name == "" {
		RespondError(c, http.StatusBadRequest, "invalid_payload", errors.New("project name is required"))
		return
	}
	project, err := h.svc.Create(c.Request.Context(), input)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "project_create_failed", err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

// PUT /api/v1/projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_project_id", err)
		return
	}
	var input services.ProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_payload", err)
		return
	}
	project, err := h.svc.Update(c.Request.Context(), projectID, input)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "project_update_failed", err)
		return
	}
	if project == nil {
		RespondError(c, http.StatusNotFound, "project_not_found", errors.New("project does not exist"))
		return
	}
	RespondOK(c, project)
}

// DELETE /api/v1/projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_project_id", err)
		return
	}
	project, err := h.svc.Delete(c.Request.Context(), projectID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "project_delete_failed", err)
		return
	}
	if project == nil {
		RespondError(c, http.StatusNotFound, "project_not_found", errors.New("project does not exist"))
		return
	}
	RespondOK(c, gin.H{"deleted": project.ID})
}

// POST /api/v1/projects/:id/regenerate-key
func (h *ProjectHandler) RegenerateAPIKey(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_project_id", err)
		return
	}
	project, err := h.svc.RegenerateAPIKey(c.Request.Context(), projectID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "project_key_rotation_failed", err)
		return
	}
	if project == nil {
		RespondError(c, http.StatusNotFound, "project_not_found", errors.New("project does not exist"))
		return
	}
	RespondOK(c, project)
}
