package models

import (
	"fmt"
	"strings"
)

// KeyType identifies the algorithm of the key a certificate is requested for.
type KeyType string

const (
	KeyTypeRSA KeyType = "RSA"
	KeyTypeECC KeyType = "ECC"
)

// Default request parameters, applied when a caller leaves a field unset.
const (
	DefaultDomain       = "example.com"
	DefaultValidityDays = 365
	DefaultKeyType      = KeyTypeRSA
	DefaultKeySize      = 2048
)

// ParseKeyType normalizes a key type string. Unrecognized values are kept
// as-is (upper-cased) so the evaluator can flag them instead of guessing.
func ParseKeyType(s string) KeyType {
	return KeyType(strings.ToUpper(strings.TrimSpace(s)))
}

// CertificateRequest holds the parameters of one compliance evaluation.
// It is constructed once per call and never mutated by the evaluator.
type CertificateRequest struct {
	Domain       string  `json:"domain"`
	ValidityDays int     `json:"validity_days"`
	KeyType      KeyType `json:"key_type"`
	KeySize      int     `json:"key_size"`
}

// NewCertificateRequest builds a request, filling zero-valued fields with
// the documented defaults.
func NewCertificateRequest(domain string, validityDays int, keyType string, keySize int) CertificateRequest {
	req := CertificateRequest{
		Domain:       domain,
		ValidityDays: validityDays,
		KeyType:      ParseKeyType(keyType),
		KeySize:      keySize,
	}

	if req.Domain == "" {
		req.Domain = DefaultDomain
	}
	if req.ValidityDays <= 0 {
		req.ValidityDays = DefaultValidityDays
	}
	if req.KeyType == "" {
		req.KeyType = DefaultKeyType
	}
	if req.KeySize <= 0 {
		req.KeySize = DefaultKeySize
	}

	return req
}

// Fingerprint returns a stable key for caching evaluations of identical
// request parameters.
func (r CertificateRequest) Fingerprint() string {
	return fmt.Sprintf("%s|%d|%s|%d", r.Domain, r.ValidityDays, r.KeyType, r.KeySize)
}
