package cache

import (
	"certcomply/pkg/models"
)

// NoOpStore satisfies Store without caching anything.
type NoOpStore struct{}

func NewNoOpStore() *NoOpStore {
	return &NoOpStore{}
}

func (n *NoOpStore) Get(key string) (*models.ComplianceReport, bool) {
	// Always a miss
	return nil, false
}

func (n *NoOpStore) Set(key string, report *models.ComplianceReport) {}

func (n *NoOpStore) Delete(key string) {}

func (n *NoOpStore) Clear() {}

func (n *NoOpStore) Size() int {
	return 0
}
