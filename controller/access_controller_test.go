// api/controller/access_controller_test.go
package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	access_model "github.com/helioshr/helios/api/access/model"
	"github.com/helioshr/helios/api/controller"
	helios_errors "github.com/helioshr/helios/api/errors"
	logger "github.com/helioshr/helios/api/logging"
	"github.com/helioshr/helios/api/model"
	mock_service "github.com/helioshr/helios/api/test/service_mock"
)

func setupRouter(ac *controller.AccessController) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// Stand-in for the auth middleware.
	r.Use(func(c *gin.Context) {
		c.Set("userID", "u1")
		c.Next()
	})
	api := r.Group("/")
	ac.RegisterRoutes(api)
	return r
}

func TestAccessController(t *testing.T) {
	dir, err := os.MkdirTemp("", "helios-test-logs")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	logger.InitLogger(dir)
	defer logger.Sync()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccessService := mock_service.NewMockIAccessService(ctrl)
	accessController := controller.NewAccessController(mockAccessService)
	router := setupRouter(accessController)

	t.Run("CheckAccess_Allowed", func(t *testing.T) {
		mockAccessService.EXPECT().
			CheckAccess(gomock.Any(), "u1", "sys-jira").
			Return(&access_model.CheckResult{
				Decision: access_model.AccessDecision{Allowed: true, Blockers: []string{}},
				System:   model.WorkSystemView{ID: "sys-jira", Name: "Jira", URL: "https://jira.internal.example.com"},
			}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/work-systems/sys-jira/access", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var result access_model.CheckResult
		json.NewDecoder(w.Body).Decode(&result)
		assert.True(t, result.Decision.Allowed)
		assert.Equal(t, "https://jira.internal.example.com", result.System.URL)
	})

	t.Run("CheckAccess_SystemNotFound", func(t *testing.T) {
		mockAccessService.EXPECT().
			CheckAccess(gomock.Any(), "u1", "missing").
			Return(nil, helios_errors.ErrWorkSystemNotFound)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/work-systems/missing/access", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("CheckAccess_StoreUnavailable", func(t *testing.T) {
		mockAccessService.EXPECT().
			CheckAccess(gomock.Any(), "u1", "sys-jira").
			Return(nil, helios_errors.ErrStoreUnavailable)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/work-systems/sys-jira/access", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("GrantAccess_Granted", func(t *testing.T) {
		mockAccessService.EXPECT().
			GrantAccess(gomock.Any(), "u1", "sys-jira", gomock.Any()).
			Return(&access_model.GrantResult{
				Granted:  true,
				URL:      "https://jira.internal.example.com",
				Blockers: []string{},
			}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/work-systems/sys-jira/access", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var result access_model.GrantResult
		json.NewDecoder(w.Body).Decode(&result)
		assert.True(t, result.Granted)
		assert.Equal(t, "https://jira.internal.example.com", result.URL)
	})

	t.Run("GrantAccess_DeniedReturnsForbiddenWithBlockers", func(t *testing.T) {
		mockAccessService.EXPECT().
			GrantAccess(gomock.Any(), "u1", "sys-payroll", gomock.Any()).
			Return(&access_model.GrantResult{
				Granted:  false,
				Blockers: []string{"Role restriction: STAFF not allowed"},
			}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/work-systems/sys-payroll/access", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)

		var result access_model.GrantResult
		json.NewDecoder(w.Body).Decode(&result)
		assert.False(t, result.Granted)
		assert.Empty(t, result.URL)
		assert.Equal(t, []string{"Role restriction: STAFF not allowed"}, result.Blockers)
	})

	t.Run("GrantAccess_UserNotFound", func(t *testing.T) {
		mockAccessService.EXPECT().
			GrantAccess(gomock.Any(), "u1", "sys-jira", gomock.Any()).
			Return(nil, helios_errors.ErrUserNotFound)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/work-systems/sys-jira/access", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("ListWorkSystems_Success", func(t *testing.T) {
		mockAccessService.EXPECT().
			ListWorkSystems(gomock.Any(), "u1").
			Return([]access_model.SystemAccess{
				{System: model.WorkSystemView{ID: "sys-jira", Name: "Jira", URL: "https://jira.internal.example.com"}, Allowed: true, Blockers: []string{}},
				{System: model.WorkSystemView{ID: "sys-payroll", Name: "Payroll"}, Allowed: false, Blockers: []string{"Role restriction: STAFF not allowed"}},
			}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/work-systems", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var results []access_model.SystemAccess
		json.NewDecoder(w.Body).Decode(&results)
		assert.Len(t, results, 2)
		assert.Empty(t, results[1].System.URL)
	})

	t.Run("GetAccessStats_Success", func(t *testing.T) {
		mockAccessService.EXPECT().
			GetAccessStats(gomock.Any(), "u1").
			Return([]model.AccessCounterRecord{
				{UserID: "u1", WorkSystemID: "sys-jira", AccessCount: 4},
			}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/access-stats", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
