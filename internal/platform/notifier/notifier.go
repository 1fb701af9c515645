// Package notifier delivers invitation signals to users. Delivery is best
// effort; failures are logged and never bubble up to the caller.
package notifier

import (
	"go.uber.org/zap"
)

type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) NotifyInvitation(username string, invitationID uint) {
	zap.L().Info("invitation created",
		zap.String("invited_username", username),
		zap.Uint("invitation_id", invitationID))
}
