package cache

import (
	"log/slog"
	"sync"
	"time"

	"certcomply/internal/logger"
	"certcomply/pkg/models"
)

type cacheEntry struct {
	report    *models.ComplianceReport
	timestamp time.Time
	ttl       time.Duration
}

func (e *cacheEntry) isExpired() bool {
	if e.ttl == 0 {
		return false
	}
	return time.Since(e.timestamp) > e.ttl
}

type MemoryStore struct {
	entries map[string]*cacheEntry
	mutex   sync.RWMutex
	ttl     time.Duration
}

// NewMemoryStore builds an in-memory store. A ttl of zero disables expiry.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	store := &MemoryStore{
		entries: make(map[string]*cacheEntry),
		ttl:     ttl,
	}

	if ttl > 0 {
		go store.cleanupExpired()
	}

	return store
}

func (m *MemoryStore) Get(key string) (*models.ComplianceReport, bool) {
	m.mutex.RLock()
	entry, exists := m.entries[key]
	m.mutex.RUnlock()

	if !exists {
		logger.Get().Debug("cache miss",
			slog.String("key", key),
			slog.String("reason", "not_found"))
		return nil, false
	}

	if entry.isExpired() {
		logger.Get().Debug("cache miss",
			slog.String("key", key),
			slog.String("reason", "expired"),
			slog.Duration("age", time.Since(entry.timestamp)))

		m.mutex.Lock()
		delete(m.entries, key)
		m.mutex.Unlock()
		return nil, false
	}

	logger.Get().Debug("cache hit",
		slog.String("key", key),
		slog.Duration("age", time.Since(entry.timestamp)))

	return entry.report, true
}

func (m *MemoryStore) Set(key string, report *models.ComplianceReport) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.entries[key] = &cacheEntry{
		report:    report,
		timestamp: time.Now(),
		ttl:       m.ttl,
	}

	logger.Get().Debug("cache set",
		slog.String("key", key),
		slog.Int("total_entries", len(m.entries)))
}

func (m *MemoryStore) Delete(key string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	delete(m.entries, key)
}

func (m *MemoryStore) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.entries = make(map[string]*cacheEntry)
}

func (m *MemoryStore) Size() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return len(m.entries)
}

func (m *MemoryStore) cleanupExpired() {
	ticker := time.NewTicker(m.ttl / 2)
	defer ticker.Stop()

	for range ticker.C {
		m.mutex.Lock()
		now := time.Now()
		removed := 0
		for key, entry := range m.entries {
			if entry.ttl > 0 && now.Sub(entry.timestamp) > entry.ttl {
				delete(m.entries, key)
				removed++
			}
		}
		remaining := len(m.entries)
		m.mutex.Unlock()

		if removed > 0 {
			logger.Get().Debug("cache cleanup completed",
				slog.Int("removed", removed),
				slog.Int("remaining", remaining))
		}
	}
}
