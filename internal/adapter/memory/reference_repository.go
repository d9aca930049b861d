package memory

import (
	"context"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"adpulse/internal/core/domain"
	"adpulse/internal/core/port"
)

// ReferenceData is the on-disk shape of a reference file.
type ReferenceData struct {
	Clients   []domain.Client   `yaml:"clients"`
	Campaigns []domain.Campaign `yaml:"campaigns"`
}

// ReferenceRepository implements port.ReferenceRepository over a fixed
// set of clients and campaigns. List order is insertion order.
type ReferenceRepository struct {
	mu        sync.RWMutex
	clients   []domain.Client
	campaigns []domain.Campaign
}

// NewReferenceRepository copies data into a new repository.
func NewReferenceRepository(data ReferenceData) *ReferenceRepository {
	return &ReferenceRepository{
		clients:   append([]domain.Client(nil), data.Clients...),
		campaigns: append([]domain.Campaign(nil), data.Campaigns...),
	}
}

// LoadReferenceFile reads a YAML reference file.
func LoadReferenceFile(path string) (ReferenceData, error) {
	var data ReferenceData
	b, err := os.ReadFile(path)
	if err != nil {
		return data, fmt.Errorf("read reference file: %w", err)
	}
	if err = yaml.Unmarshal(b, &data); err != nil {
		return data, fmt.Errorf("parse reference file: %w", err)
	}
	return data, nil
}

func (r *ReferenceRepository) ListClients(_ context.Context) ([]domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.Client(nil), r.clients...), nil
}

func (r *ReferenceRepository) GetClient(_ context.Context, id string) (domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.clients {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Client{}, port.ErrNotFound
}

func (r *ReferenceRepository) ListCampaigns(_ context.Context) ([]domain.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.Campaign(nil), r.campaigns...), nil
}

func (r *ReferenceRepository) GetCampaign(_ context.Context, id string) (domain.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.campaigns {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Campaign{}, port.ErrNotFound
}

func (r *ReferenceRepository) UpdateCampaign(_ context.Context, id string, upd domain.CampaignUpdate) (domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.campaigns {
		if c.ID == id {
			r.campaigns[i] = upd.Apply(c)
			return r.campaigns[i], nil
		}
	}
	return domain.Campaign{}, port.ErrNotFound
}
