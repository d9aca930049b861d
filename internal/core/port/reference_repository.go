package port

import (
	"context"

	"adpulse/internal/core/domain"
)

// ReferenceRepository supplies client and campaign reference data. The
// engine treats it as read-only apart from UpdateCampaign, which backs
// the campaign settings endpoint.
type ReferenceRepository interface {
	ListClients(ctx context.Context) ([]domain.Client, error)
	// GetClient returns ErrNotFound for unknown ids.
	GetClient(ctx context.Context, id string) (domain.Client, error)
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	// GetCampaign returns ErrNotFound for unknown ids.
	GetCampaign(ctx context.Context, id string) (domain.Campaign, error)
	UpdateCampaign(ctx context.Context, id string, upd domain.CampaignUpdate) (domain.Campaign, error)
}
