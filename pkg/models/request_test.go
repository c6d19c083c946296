package models

import "testing"

func TestNewCertificateRequest_Defaults(t *testing.T) {
	req := NewCertificateRequest("", 0, "", 0)

	want := CertificateRequest{
		Domain:       DefaultDomain,
		ValidityDays: DefaultValidityDays,
		KeyType:      DefaultKeyType,
		KeySize:      DefaultKeySize,
	}

	if req != want {
		t.Errorf("Expected defaults %+v, got %+v", want, req)
	}
}

func TestNewCertificateRequest_ExplicitValues(t *testing.T) {
	req := NewCertificateRequest("api.company.com", 30, "ecc", 256)

	if req.Domain != "api.company.com" {
		t.Errorf("Expected domain api.company.com, got %s", req.Domain)
	}
	if req.ValidityDays != 30 {
		t.Errorf("Expected 30 days, got %d", req.ValidityDays)
	}
	if req.KeyType != KeyTypeECC {
		t.Errorf("Expected normalized ECC, got %s", req.KeyType)
	}
	if req.KeySize != 256 {
		t.Errorf("Expected key size 256, got %d", req.KeySize)
	}
}

func TestParseKeyType(t *testing.T) {
	tests := []struct {
		in   string
		want KeyType
	}{
		{"RSA", KeyTypeRSA},
		{"rsa", KeyTypeRSA},
		{" ecc ", KeyTypeECC},
		{"Ed25519", KeyType("ED25519")},
		{"", KeyType("")},
	}

	for _, tt := range tests {
		if got := ParseKeyType(tt.in); got != tt.want {
			t.Errorf("ParseKeyType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFingerprint(t *testing.T) {
	a := NewCertificateRequest("example.com", 365, "RSA", 2048)
	b := NewCertificateRequest("example.com", 365, "RSA", 2048)
	c := NewCertificateRequest("example.com", 90, "RSA", 2048)

	if a.Fingerprint() != b.Fingerprint() {
		t.Error("Identical requests must share a fingerprint")
	}

	if a.Fingerprint() == c.Fingerprint() {
		t.Error("Different parameters must produce different fingerprints")
	}
}
