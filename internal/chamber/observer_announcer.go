package chamber

import (
	"log/slog"
)

const (
	regretLine = "okay, look, we both said a lot of things that you're going to regret"
	messLine   = "sorry about the mess, I've really let the place go since you killed me"
)

// Announcer comments on the first chamber only
type Announcer struct {
	logger *slog.Logger
}

func NewAnnouncer(logger *slog.Logger) *Announcer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Announcer{logger: logger}
}

func (a *Announcer) WillChange(property string, newValue int) {
	a.logger.Debug("will change event fired", "property", property, "new_value", newValue)
	if newValue == 1 {
		a.logger.Info(regretLine, "property", property)
	}
}

func (a *Announcer) DidChange(property string, oldValue int) {
	a.logger.Debug("did change event fired", "property", property, "old_value", oldValue)
	if oldValue == 0 {
		a.logger.Info(messLine, "property", property)
	}
}
