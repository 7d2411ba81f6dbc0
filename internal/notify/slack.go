package notify

import (
	"fmt"
	"log"
	"os"

	"github.com/nlopes/slack"

	"github.com/yourorg/wayfindsg/internal/models"
)

// Notifier pushes deviation alerts to a caregiver Slack channel. It is
// optional: without SLACK_TOKEN it is disabled and every call is a no-op.
type Notifier struct {
	api     *slack.Client
	channel string
}

// NewFromEnv builds a notifier from SLACK_TOKEN and SLACK_CHANNEL.
func NewFromEnv() *Notifier {
	token := os.Getenv("SLACK_TOKEN")
	if token == "" {
		return &Notifier{}
	}
	channel := os.Getenv("SLACK_CHANNEL")
	if channel == "" {
		channel = "#caregiver-alerts"
	}
	return &Notifier{api: slack.New(token), channel: channel}
}

// Enabled reports whether a Slack client is configured.
func (n *Notifier) Enabled() bool {
	return n.api != nil
}

// DeviationAlert posts a route deviation notice. Failures are logged, not
// returned: alerting must never break position tracking.
func (n *Notifier) DeviationAlert(alert models.DeviationAlert) {
	if !n.Enabled() {
		return
	}
	msg := fmt.Sprintf(
		"Route deviation: user %d is %.0f m off the planned route (threshold %.0f m) at %.6f,%.6f. Share %s.",
		alert.UserID, alert.DistanceMeters, alert.ThresholdM,
		alert.Latitude, alert.Longitude, alert.ShareID,
	)
	if _, _, err := n.api.PostMessage(n.channel, slack.MsgOptionText(msg, false)); err != nil {
		log.Printf("slack deviation alert failed: %v", err)
	}
}
