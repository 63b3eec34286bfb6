package domain

import "context"

// NotificationService defines the interface for catalog change notifications
type NotificationService interface {
	// SendImported reports a successful bulk import
	SendImported(ctx context.Context, count int, path string) error

	// SendDeleted reports a deleted series
	SendDeleted(ctx context.Context, series Series) error
}
