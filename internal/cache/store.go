package cache

import (
	"certcomply/pkg/models"
)

// Store caches evaluated reports keyed by the request fingerprint.
type Store interface {
	Get(key string) (*models.ComplianceReport, bool)
	Set(key string, report *models.ComplianceReport)
	Delete(key string)
	Clear()
	Size() int
}
