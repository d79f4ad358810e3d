// api/controller/access_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	helios_errors "github.com/helioshr/helios/api/errors"
	"github.com/helioshr/helios/api/service"
	"github.com/helioshr/helios/api/util"
	helper_util "github.com/helioshr/helios/api/util/helper"
)

type AccessController struct {
	accessService service.IAccessService
}

func NewAccessController(accessService service.IAccessService) *AccessController {
	return &AccessController{
		accessService: accessService,
	}
}

// RegisterRoutes registers the API routes
func (ac *AccessController) RegisterRoutes(r *gin.RouterGroup) {
	systems := r.Group("/work-systems")
	{
		systems.GET("", ac.ListWorkSystems)
		systems.GET("/:id/access", ac.CheckAccess)
		systems.POST("/:id/access", ac.GrantAccess)
	}
	r.GET("/access-stats", ac.GetAccessStats)
}

// ListWorkSystems returns every active system evaluated for the caller.
func (ac *AccessController) ListWorkSystems(c *gin.Context) {
	userID, err := util.GetUserIDFromContext(c)
	if err != nil || userID == "" {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", helios_errors.ErrUnauthorized)
		return
	}

	systems, err := ac.accessService.ListWorkSystems(c, userID)
	if err != nil {
		ac.respondWithAccessError(c, err, "Failed to list work systems")
		return
	}

	c.JSON(http.StatusOK, systems)
}

// CheckAccess is the read-only eligibility check.
func (ac *AccessController) CheckAccess(c *gin.Context) {
	userID, err := util.GetUserIDFromContext(c)
	if err != nil || userID == "" {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", helios_errors.ErrUnauthorized)
		return
	}

	result, err := ac.accessService.CheckAccess(c, userID, c.Param("id"))
	if err != nil {
		ac.respondWithAccessError(c, err, "Failed to check access")
		return
	}

	c.JSON(http.StatusOK, result)
}

// GrantAccess records a grant and returns the target URL, or 403 with the
// full blocker list when the caller is not eligible.
func (ac *AccessController) GrantAccess(c *gin.Context) {
	userID, err := util.GetUserIDFromContext(c)
	if err != nil || userID == "" {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", helios_errors.ErrUnauthorized)
		return
	}

	result, err := ac.accessService.GrantAccess(c, userID, c.Param("id"), helper_util.NetworkMetaFromRequest(c))
	if err != nil {
		ac.respondWithAccessError(c, err, "Failed to grant access")
		return
	}

	if !result.Granted {
		c.JSON(http.StatusForbidden, result)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetAccessStats returns the caller's access counters.
func (ac *AccessController) GetAccessStats(c *gin.Context) {
	userID, err := util.GetUserIDFromContext(c)
	if err != nil || userID == "" {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", helios_errors.ErrUnauthorized)
		return
	}

	stats, err := ac.accessService.GetAccessStats(c, userID)
	if err != nil {
		ac.respondWithAccessError(c, err, "Failed to read access stats")
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (ac *AccessController) respondWithAccessError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, helios_errors.ErrUserNotFound):
		util.RespondWithError(c, http.StatusNotFound, "User not found", err)
	case errors.Is(err, helios_errors.ErrWorkSystemNotFound):
		util.RespondWithError(c, http.StatusNotFound, "Work system not found", err)
	case errors.Is(err, helios_errors.ErrStoreUnavailable):
		util.RespondWithError(c, http.StatusServiceUnavailable, "Access store unavailable", err)
	default:
		util.RespondWithError(c, http.StatusInternalServerError, message, helios_errors.ErrInternalServer)
	}
}
