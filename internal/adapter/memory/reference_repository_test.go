package memory

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adpulse/internal/core/domain"
	"adpulse/internal/core/port"
)

const referenceYAML = `
clients:
  - id: c1
    name: TechCorp Solutions
    industry: SaaS
    status: active
campaigns:
  - id: camp1
    clientId: c1
    name: Q4 SaaS Lead Gen
    platform: google
    status: active
    budget: 15000
  - id: camp2
    clientId: c1
    name: Brand Awareness
    status: paused
    budget: 8000
`

func TestLoadReferenceFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reference.yaml")
	require.NoError(t, os.WriteFile(path, []byte(referenceYAML), 0o600))

	data, err := LoadReferenceFile(path)
	require.NoError(t, err)
	require.Len(t, data.Clients, 1)
	require.Len(t, data.Campaigns, 2)
	assert.Equal(t, "c1", data.Campaigns[0].ClientID)
	assert.Equal(t, 15000.0, data.Campaigns[0].Budget)
	assert.Equal(t, domain.UnknownPlatform, data.Campaigns[1].PlatformKey())
}

func TestReferenceRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewReferenceRepository(ReferenceData{
		Clients:   []domain.Client{{ID: "c1", Name: "A"}},
		Campaigns: []domain.Campaign{{ID: "x", ClientID: "c1", Status: domain.StatusActive, Budget: 10}},
	})

	_, err := repo.GetClient(ctx, "nope")
	assert.ErrorIs(t, err, port.ErrNotFound)

	paused := domain.StatusPaused
	c, err := repo.UpdateCampaign(ctx, "x", domain.CampaignUpdate{Status: &paused})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPaused, c.Status)
	assert.Equal(t, 10.0, c.Budget)

	got, err := repo.GetCampaign(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPaused, got.Status)

	_, err = repo.UpdateCampaign(ctx, "nope", domain.CampaignUpdate{})
	assert.ErrorIs(t, err, port.ErrNotFound)
}
