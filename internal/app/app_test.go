package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go-talent/internal/config"
	"go-talent/internal/domain"
	"go-talent/internal/shared/apperror"
	"go-talent/internal/shared/idalloc"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryConfig() config.Config {
	return config.Config{
		StoreBackend:    config.BackendMemory,
		AllocatorPolicy: idalloc.PolicyMaxPlusOne,
		SeedDemoData:    true,
	}
}

func buildTestRouter(t *testing.T, cfg config.Config) *gin.Engine {
	t.Helper()
	apperror.Init()
	gin.SetMode(gin.TestMode)
	r := gin.New()

	cleanup, err := BuildApp(r, cfg)
	t.Cleanup(cleanup)
	require.NoError(t, err)
	return r
}

func serve(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestBuildApp_CreateThenRead(t *testing.T) {
	r := buildTestRouter(t, memoryConfig())

	w := serve(r, http.MethodPost, "/api/employees",
		`{"name":"Jane Doe","age":22,"affiliation":"Engineering","post":"Software Engineer","skills":["JavaScript","TypeScript"]}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	var created domain.Employee
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "4", created.ID)

	w = serve(r, http.MethodGet, "/api/employees/4", "")
	require.Equal(t, http.StatusOK, w.Code)
	var got domain.Employee
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, created, got)

	w = serve(r, http.MethodGet, "/api/employees?name=jane", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []domain.Employee
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 2)
}

func TestBuildApp_Errors(t *testing.T) {
	r := buildTestRouter(t, memoryConfig())

	t.Run("unsupported verb", func(t *testing.T) {
		w := serve(r, http.MethodDelete, "/api/employees/1", "")
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeMethodNotAllowed)
	})

	t.Run("unknown route", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/api/nothing", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unknown id", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/api/employees/999", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeNotFound)
	})

	t.Run("age out of range", func(t *testing.T) {
		w := serve(r, http.MethodPost, "/api/employees",
			`{"name":"Old","age":101,"affiliation":"HR","post":"HR Manager","skills":["Excel"]}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"field":"age"`)
	})
}

func TestBuildApp_Operational(t *testing.T) {
	r := buildTestRouter(t, memoryConfig())

	w := serve(r, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	serve(r, http.MethodGet, "/api/employees", "")
	w = serve(r, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "talent_http_requests_total")
}

func TestBuildApp_FormOptionsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.yaml")
	require.NoError(t, os.WriteFile(path, []byte("affiliations: [Lab]\nposts: [Researcher]\nskills: [Go]\n"), 0o600))

	cfg := memoryConfig()
	cfg.FormOptionsFile = path
	cfg.StrictFormOptions = true
	cfg.SeedDemoData = false
	r := buildTestRouter(t, cfg)

	w := serve(r, http.MethodGet, "/api/form-options", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"affiliations":["Lab"],"posts":["Researcher"],"skills":["Go"]}`, w.Body.String())

	w = serve(r, http.MethodPost, "/api/employees",
		`{"name":"A","age":30,"affiliation":"Engineering","post":"Researcher","skills":["Go"]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"field":"affiliation"`)

	w = serve(r, http.MethodGet, "/api/employees", "")
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestBuildApp_BadFormOptionsFile(t *testing.T) {
	cfg := memoryConfig()
	cfg.FormOptionsFile = filepath.Join(t.TempDir(), "missing.yaml")

	cleanup, err := BuildApp(gin.New(), cfg)
	cleanup()

	assert.Error(t, err)
}
