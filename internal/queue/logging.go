package queue

import "github.com/sirupsen/logrus"

// LogHandler returns a subscriber that records each action and does
// nothing else.
func LogHandler(logger *logrus.Logger) func(Action) error {
	return func(action Action) error {
		logger.WithFields(logrus.Fields{
			"action_id": action.ID,
			"kind":      action.Kind,
			"role":      action.Role,
			"payload":   action.Payload,
			"at":        action.At,
		}).Info("Received action (not persisted)")
		return nil
	}
}
