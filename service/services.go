// api/service/services.go
package service

import (
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/helioshr/helios/api/audit"
	"github.com/helioshr/helios/api/dao"
	"github.com/helioshr/helios/api/util"
)

type Services struct {
	Access IAccessService
}

func InitializeServices(
	driver neo4j.Driver,
	auditService audit.Service,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
) (*Services, error) {
	userDAO := dao.NewUserDAO(driver)
	ledgerDAO := dao.NewLedgerDAO(driver)
	workSystemDAO := dao.NewWorkSystemDAO(driver)
	accessDAO := dao.NewAccessDAO(driver)

	services := &Services{
		Access: NewAccessService(userDAO, ledgerDAO, workSystemDAO, accessDAO, auditService, notificationSvc, eventBus),
	}

	return services, nil
}
