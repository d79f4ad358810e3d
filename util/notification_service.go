// api/util/notification_service.go

package util

import (
	"context"

	"go.uber.org/zap"

	logger "github.com/helioshr/helios/api/logging"
)

// NotificationService fans access events out to the compliance team. The
// delivery channel (email, chat webhook) is owned by the portal's
// notification module; this service only hands events over.
type NotificationService struct{}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

// NotifyAccessDenied surfaces a denied grant attempt so compliance admins can
// spot staff repeatedly blocked on missing prerequisites.
func (n *NotificationService) NotifyAccessDenied(ctx context.Context, systemID string, blockers []string) error {
	logger.Info("NOTIFICATION: Work system access denied",
		zap.String("systemID", systemID),
		zap.Strings("blockers", blockers))
	return nil
}

// NotifyAdmins notifies portal administrators of an operational condition.
func (n *NotificationService) NotifyAdmins(ctx context.Context, message string) error {
	logger.Info("Notifying admins", zap.String("message", message))
	return nil
}
