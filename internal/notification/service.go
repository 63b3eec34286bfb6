package notification

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/varoOP/tvseriesdb/internal/domain"
)

// NewService picks the notifier for the configured webhook. Without one,
// notifications are dropped and the service never touches the network.
func NewService(log zerolog.Logger, webhookURL string) domain.NotificationService {
	if webhookURL == "" {
		log.Debug().Str("module", "notification").Msg("No webhook configured, notifications disabled")
		return Discard{}
	}

	return NewDiscordService(log, webhookURL)
}

// Discard is a NotificationService that drops every notification
type Discard struct{}

var _ domain.NotificationService = Discard{}

func (Discard) SendImported(context.Context, int, string) error { return nil }

func (Discard) SendDeleted(context.Context, domain.Series) error { return nil }
