package dispatch

import (
	"github.com/sirupsen/logrus"

	"bitbucket.org/mmdatafocus/console_backend/config"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notification is a transient toast. Persistent per-field validation
// messages travel separately on the Result, not through here.
type Notification struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

type Notifier interface {
	Notify(n Notification)
}

// LogNotifier is the default sink; the HTTP layer additionally folds the
// notification into its response envelope.
type LogNotifier struct{}

func (LogNotifier) Notify(n Notification) {
	entry := config.GetLogger().WithFields(logrus.Fields{
		"module": "dispatch",
		"level":  string(n.Level),
	})
	if n.Level == LevelError {
		entry.Warn(n.Message)
		return
	}
	entry.Info(n.Message)
}
