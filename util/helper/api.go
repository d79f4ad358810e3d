package helper_util

import (
	"github.com/gin-gonic/gin"

	access_model "github.com/helioshr/helios/api/access/model"
)

// NetworkMetaFromRequest captures the request metadata recorded alongside a
// grant in the audit trail.
func NetworkMetaFromRequest(c *gin.Context) access_model.NetworkMeta {
	return access_model.NetworkMeta{
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
}
