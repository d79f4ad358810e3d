// api/controller/controllers.go
package controller

import "github.com/helioshr/helios/api/service"

type Controllers struct {
	Access *AccessController
}

func InitializeControllers(services *service.Services) *Controllers {
	return &Controllers{
		Access: NewAccessController(services.Access),
	}
}
