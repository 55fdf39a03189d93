package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/langbridge-backend/internal/logger"
	"github.com/yungbote/langbridge-backend/internal/services"
	"github.com/yungbote/langbridge-backend/internal/types"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubProjectService struct {
	services.ProjectService
	project *types.Project
}

func (s *stubProjectService) GetByAPIKey(ctx context.Context, apiKey string) (*types.Project, error) {
	if s.project != nil && s.project.APIKey == apiKey {
		return s.project, nil
	}
	return nil, nil
}

func newAuthRouter(t *testing.T, project *types.Project) *gin.Engine {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	router := gin.New()
	router.Use(APIKeyAuth(log, &stubProjectService{project: project}))
	router.GET("/protected", func(c *gin.Context) {
		value, _ := c.Get(ProjectContextKey)
		authed := value.(*types.Project)
		c.JSON(http.StatusOK, gin.H{"project": authed.ID})
	})
	return router
}

func TestAPIKeyAuthMissingHeader(t *testing.T) {
	t.Parallel()

	router := newAuthRouter(t, &types.Project{ID: uuid.New(), APIKey: "secret", IsActive: true})
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status: got=%d want=401", w.Code)
	}
}

func TestAPIKeyAuthUnknownKey(t *testing.T) {
	t.Parallel()

	router := newAuthRouter(t, &types.Project{ID: uuid.New(), APIKey: "secret", IsActive: true})
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("X-API-Key", "wrong")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status: got=%d want=401", w.Code)
	}
}

func TestAPIKeyAuthInactiveProject(t *testing.T) {
	t.Parallel()

	router := newAuthRouter(t, &types.Project{ID: uuid.New(), APIKey: "secret", IsActive: false})
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("X-API-Key", "secret")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("status: got=%d want=403", w.Code)
	}
}

func TestAPIKeyAuthValidKeyPassesProject(t *testing.T) {
	t.Parallel()

	project := &types.Project{ID: uuid.New(), APIKey: "secret", IsActive: true}
	router := newAuthRouter(t, project)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("X-API-Key", "secret")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status: got=%d want=200, body=%s", w.Code, w.Body.String())
	}
}
