package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"certcomply/pkg/models"
)

func testKey(domain string) string {
	return domain + "|365|RSA|2048"
}

func testReport(domain string) *models.ComplianceReport {
	return &models.ComplianceReport{
		Domain:    domain,
		Timestamp: time.Now(),
		Compliant: true,
		Score:     100,
	}
}

func TestMemoryStore_BasicOperations(t *testing.T) {
	store := NewMemoryStore(0) // No TTL for basic tests

	key := testKey("example.com")
	report := testReport("example.com")

	// Get on empty cache
	if _, exists := store.Get(key); exists {
		t.Error("Expected no entry in empty cache")
	}

	store.Set(key, report)

	cached, exists := store.Get(key)
	if !exists {
		t.Fatal("Expected entry to exist after Set")
	}

	if cached.Domain != report.Domain {
		t.Errorf("Expected domain %s, got %s", report.Domain, cached.Domain)
	}

	if cached.Score != report.Score {
		t.Errorf("Expected score %d, got %d", report.Score, cached.Score)
	}

	if store.Size() != 1 {
		t.Errorf("Expected size 1, got %d", store.Size())
	}

	store.Delete(key)
	if _, exists := store.Get(key); exists {
		t.Error("Expected no entry after Delete")
	}

	if store.Size() != 0 {
		t.Errorf("Expected size 0 after delete, got %d", store.Size())
	}
}

func TestMemoryStore_Clear(t *testing.T) {
	store := NewMemoryStore(0)

	domains := []string{"example.com", "google.com", "github.com"}
	for _, domain := range domains {
		store.Set(testKey(domain), testReport(domain))
	}

	if store.Size() != len(domains) {
		t.Errorf("Expected size %d, got %d", len(domains), store.Size())
	}

	store.Clear()

	if store.Size() != 0 {
		t.Errorf("Expected size 0 after clear, got %d", store.Size())
	}

	for _, domain := range domains {
		if _, exists := store.Get(testKey(domain)); exists {
			t.Errorf("Expected no entry for %s after clear", domain)
		}
	}
}

func TestMemoryStore_TTL(t *testing.T) {
	ttl := 100 * time.Millisecond
	store := NewMemoryStore(ttl)

	key := testKey("example.com")
	store.Set(key, testReport("example.com"))

	if _, exists := store.Get(key); !exists {
		t.Error("Expected entry to exist immediately after set")
	}

	time.Sleep(ttl / 2)
	if _, exists := store.Get(key); !exists {
		t.Error("Expected entry to exist before TTL expiry")
	}

	time.Sleep(ttl)
	if _, exists := store.Get(key); exists {
		t.Error("Expected entry to be expired after TTL")
	}

	if store.Size() != 0 {
		t.Errorf("Expected size 0 after TTL expiry, got %d", store.Size())
	}
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	store := NewMemoryStore(0)

	const numGoroutines = 10
	const numOperations = 100

	var wg sync.WaitGroup

	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < numOperations; j++ {
				key := fmt.Sprintf("host-%d-%d.example.com|365|RSA|2048", id, j)
				store.Set(key, testReport("example.com"))
			}
		}(i)
	}

	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < numOperations; j++ {
				key := fmt.Sprintf("host-%d-%d.example.com|365|RSA|2048", id, j)
				store.Get(key)
			}
		}(i)
	}

	wg.Wait()

	expectedSize := numGoroutines * numOperations
	if store.Size() != expectedSize {
		t.Errorf("Expected size %d after concurrent operations, got %d", expectedSize, store.Size())
	}
}

func TestMemoryStore_UpdateExisting(t *testing.T) {
	store := NewMemoryStore(0)

	key := testKey("example.com")

	first := testReport("example.com")
	first.Score = 95
	store.Set(key, first)

	second := testReport("example.com")
	second.Score = 100
	store.Set(key, second)

	cached, exists := store.Get(key)
	if !exists {
		t.Fatal("Expected entry to exist after update")
	}

	if cached.Score != 100 {
		t.Errorf("Expected updated score 100, got %d", cached.Score)
	}

	if store.Size() != 1 {
		t.Errorf("Expected size 1 after update, got %d", store.Size())
	}
}
