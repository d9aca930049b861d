package memory

import (
	"context"
	"sort"
	"sync"

	"adpulse/internal/core/domain"
)

// MetricStore implements port.MetricStore in process memory. Each
// campaign owns a date-sorted series behind its own lock, so writes to
// different campaigns never contend and writes to the same campaign
// merge atomically. Reads return copies.
type MetricStore struct {
	mu     sync.RWMutex
	series map[string]*series
}

type series struct {
	mu      sync.RWMutex
	records []domain.DailyMetricRecord // sorted by Date ascending
}

// NewMetricStore returns an empty store.
func NewMetricStore() *MetricStore {
	return &MetricStore{series: make(map[string]*series)}
}

// Upsert creates or merges the record for (campaignID, date). Unknown
// campaigns get a fresh series. It never fails.
func (s *MetricStore) Upsert(_ context.Context, campaignID string, date domain.Date, patch domain.MetricPatch) (domain.DailyMetricRecord, error) {
	sr := s.seriesFor(campaignID)

	sr.mu.Lock()
	defer sr.mu.Unlock()

	i := sort.Search(len(sr.records), func(i int) bool {
		return !sr.records[i].Date.Before(date)
	})
	if i < len(sr.records) && sr.records[i].Date.Equal(date) {
		sr.records[i] = patch.Merge(sr.records[i])
		return sr.records[i].Clone(), nil
	}

	rec := domain.NewRecord(campaignID, date, patch)
	sr.records = append(sr.records, domain.DailyMetricRecord{})
	copy(sr.records[i+1:], sr.records[i:])
	sr.records[i] = rec
	return rec.Clone(), nil
}

// RecordsInWindow returns the latest days records, oldest first.
func (s *MetricStore) RecordsInWindow(_ context.Context, campaignID string, days int) ([]domain.DailyMetricRecord, error) {
	if days <= 0 {
		return []domain.DailyMetricRecord{}, nil
	}
	sr := s.lookup(campaignID)
	if sr == nil {
		return []domain.DailyMetricRecord{}, nil
	}

	sr.mu.RLock()
	defer sr.mu.RUnlock()

	start := len(sr.records) - days
	if start < 0 {
		start = 0
	}
	return cloneAll(sr.records[start:]), nil
}

// RecordsBetween returns the records dated within [from, to].
func (s *MetricStore) RecordsBetween(_ context.Context, campaignID string, from, to domain.Date) ([]domain.DailyMetricRecord, error) {
	sr := s.lookup(campaignID)
	if sr == nil || to.Before(from) {
		return []domain.DailyMetricRecord{}, nil
	}

	sr.mu.RLock()
	defer sr.mu.RUnlock()

	lo := sort.Search(len(sr.records), func(i int) bool {
		return !sr.records[i].Date.Before(from)
	})
	hi := sort.Search(len(sr.records), func(i int) bool {
		return sr.records[i].Date.After(to)
	})
	return cloneAll(sr.records[lo:hi]), nil
}

// AllCampaignIDs returns the sorted ids of campaigns with records.
func (s *MetricStore) AllCampaignIDs(_ context.Context) ([]string, error) {
	s.mu.RLock()
	ids := make([]string, 0, len(s.series))
	for id, sr := range s.series {
		sr.mu.RLock()
		n := len(sr.records)
		sr.mu.RUnlock()
		if n > 0 {
			ids = append(ids, id)
		}
	}
	s.mu.RUnlock()

	sort.Strings(ids)
	return ids, nil
}

func (s *MetricStore) lookup(campaignID string) *series {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.series[campaignID]
}

func (s *MetricStore) seriesFor(campaignID string) *series {
	if sr := s.lookup(campaignID); sr != nil {
		return sr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sr, ok := s.series[campaignID]
	if !ok {
		sr = &series{}
		s.series[campaignID] = sr
	}
	return sr
}

func cloneAll(rs []domain.DailyMetricRecord) []domain.DailyMetricRecord {
	out := make([]domain.DailyMetricRecord, len(rs))
	for i, r := range rs {
		out[i] = r.Clone()
	}
	return out
}
