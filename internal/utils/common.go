package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// Common utilities used across the showcase-api

// MatchesMimeType checks if a MIME type matches a pattern
func MatchesMimeType(actual, pattern string) bool {
	// Exact match
	if actual == pattern {
		return true
	}

	// Wildcard match (e.g., "image/*" matches "image/png")
	if strings.HasSuffix(pattern, "/*") {
		prefix := strings.TrimSuffix(pattern, "/*")
		return strings.HasPrefix(actual, prefix+"/")
	}

	return false
}

// IsValidMimeType checks if a MIME type matches any of the expected patterns
func IsValidMimeType(actual string, expectedPatterns []string) bool {
	for _, pattern := range expectedPatterns {
		if MatchesMimeType(actual, pattern) {
			return true
		}
	}
	return false
}

// ParseSizeString converts human-readable size strings to bytes
func ParseSizeString(sizeStr string) (int64, error) {
	sizeStr = strings.TrimSpace(sizeStr)

	units := []struct {
		suffix     string
		multiplier float64
	}{
		{"TB", 1024 * 1024 * 1024 * 1024},
		{"GB", 1024 * 1024 * 1024},
		{"MB", 1024 * 1024},
		{"KB", 1024},
	}

	for _, unit := range units {
		if strings.HasSuffix(sizeStr, unit.suffix) {
			value := strings.TrimSuffix(sizeStr, unit.suffix)
			if size, err := strconv.ParseFloat(value, 64); err == nil {
				return int64(size * unit.multiplier), nil
			}
			return 0, fmt.Errorf("invalid size format: %s", sizeStr)
		}
	}

	// Handle plain bytes, with or without the "B" suffix
	value := strings.TrimSuffix(sizeStr, "B")
	if size, err := strconv.ParseInt(value, 10, 64); err == nil {
		return size, nil
	}

	return 0, fmt.Errorf("invalid size format: %s", sizeStr)
}

// FormatFileSize formats bytes into human-readable format
func FormatFileSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
