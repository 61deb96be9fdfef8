package infrastructure

import (
	"fmt"
	"os/exec"

	"go.uber.org/zap"

	"github.com/yourusername/mdload/internal/domain"
)

// NotificationService sends an optional desktop notification when a batch
// finishes. Disabled by default.
type NotificationService struct {
	config *domain.NotificationConfig
	logger *zap.Logger
}

// NewNotificationService creates a new notification service
func NewNotificationService(config *domain.NotificationConfig, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		config: config,
		logger: logger,
	}
}

// NotifyBatchFinished reports the run's outcome counts via the configured
// desktop notification method.
func (n *NotificationService) NotifyBatchFinished(succeeded, failed int) {
	message := fmt.Sprintf("%d downloaded, %d failed", succeeded, failed)
	if err := n.send("mdload", message); err != nil {
		n.logger.Warn("Failed to send notification", zap.Error(err))
	}
}

func (n *NotificationService) send(title, message string) error {
	if !n.config.Enabled {
		return nil
	}

	switch n.config.Method {
	case "osascript":
		script := fmt.Sprintf(`display notification %q with title %q`, message, title)
		return exec.Command("osascript", "-e", script).Run()
	case "notify-send":
		return exec.Command("notify-send", title, message).Run()
	default:
		n.logger.Warn("Unknown notification method", zap.String("method", n.config.Method))
		return nil
	}
}
