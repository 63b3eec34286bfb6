package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/varoOP/tvseriesdb/internal/domain"
	"github.com/varoOP/tvseriesdb/internal/format"
)

// DiscordService implements NotificationService for Discord webhooks
type DiscordService struct {
	log        zerolog.Logger
	webhookURL string
	httpClient *http.Client
}

var _ domain.NotificationService = (*DiscordService)(nil)

// NewDiscordService creates a new Discord notification service
func NewDiscordService(log zerolog.Logger, webhookURL string) *DiscordService {
	return &DiscordService{
		log:        log.With().Str("module", "notification").Str("type", "discord").Logger(),
		webhookURL: webhookURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SendImported sends a notification describing a completed import
func (s *DiscordService) SendImported(ctx context.Context, count int, path string) error {
	if s.webhookURL == "" {
		return nil
	}

	embed := discordEmbed{
		Title:       "TV series imported",
		Description: fmt.Sprintf("Imported %d series from `%s`", count, path),
		Color:       0x00ff00, // Green
		Timestamp:   time.Now().Format(time.RFC3339),
		Fields: []discordField{
			{
				Name:   "Series",
				Value:  fmt.Sprintf("%d", count),
				Inline: true,
			},
		},
	}

	return s.sendWebhook(ctx, discordWebhook{Embeds: []discordEmbed{embed}})
}

// SendDeleted sends a notification describing a deleted series
func (s *DiscordService) SendDeleted(ctx context.Context, series domain.Series) error {
	if s.webhookURL == "" {
		return nil
	}

	embed := discordEmbed{
		Title:       "TV series deleted",
		Description: series.Title,
		Color:       0xff0000, // Red
		Timestamp:   time.Now().Format(time.RFC3339),
		Fields: []discordField{
			{Name: "ID", Value: series.ID.Hex(), Inline: false},
			{Name: "Genre", Value: series.Genre, Inline: true},
			{Name: "Country", Value: series.Country, Inline: true},
			{Name: "Rating", Value: format.Rating(series.Rating) + "/10", Inline: true},
		},
	}

	return s.sendWebhook(ctx, discordWebhook{Embeds: []discordEmbed{embed}})
}

// sendWebhook sends a webhook payload to Discord
func (s *DiscordService) sendWebhook(ctx context.Context, payload discordWebhook) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "failed to marshal webhook payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return errors.Wrap(err, "failed to create webhook request")
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to send webhook request")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook request failed with status %d", resp.StatusCode)
	}

	s.log.Debug().Msg("Discord notification sent successfully")
	return nil
}

// discordWebhook represents a Discord webhook payload
type discordWebhook struct {
	Embeds []discordEmbed `json:"embeds"`
}

// discordEmbed represents a Discord embed
type discordEmbed struct {
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Color       int            `json:"color"`
	Timestamp   string         `json:"timestamp,omitempty"`
	Fields      []discordField `json:"fields,omitempty"`
}

// discordField represents a Discord embed field
type discordField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}
