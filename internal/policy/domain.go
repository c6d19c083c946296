package policy

import "strings"

// IsValidDomain reports whether domain is a syntactically valid DNS name:
// non-empty, at most 253 characters, at least two dot-separated labels,
// each label 1-63 characters of ASCII letters, digits and hyphens.
func IsValidDomain(domain string) bool {
	if domain == "" || len(domain) > 253 {
		return false
	}

	labels := strings.Split(domain, ".")
	if len(labels) < 2 {
		return false
	}

	for _, label := range labels {
		if !isValidLabel(label) {
			return false
		}
	}

	return true
}

func isValidLabel(label string) bool {
	if label == "" || len(label) > 63 {
		return false
	}

	for i := 0; i < len(label); i++ {
		c := label[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '-':
		default:
			return false
		}
	}

	return true
}
