package providers

import "iconpicker/internal/cms"

// LogNotifier delivers operator notices and alerts to the application log.
type LogNotifier struct {
	logger Logger
}

func NewNotifier(logger Logger) cms.Notifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notice(message string) {
	n.logger.Infof(TypeApp, "notice: %s", message)
}

func (n *LogNotifier) Alert(message string) {
	n.logger.Warnf(TypeApp, "alert: %s", message)
}
