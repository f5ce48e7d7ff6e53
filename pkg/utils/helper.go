package utils

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// ParseID parses a route parameter into a record id
func ParseID(value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id %q", value)
	}
	return id, nil
}

func GenerateSessionToken() uuid.UUID {
	return uuid.New()
}

// GenerateUploadName creates a unique stored file name for an upload.
/// Format: <unix-ms>-<random>.jpg (everything is re-encoded to JPEG)
func GenerateUploadName() string {
	suffix := uuid.New().String()[:8]
	return fmt.Sprintf("%d-%s.jpg", time.Now().UnixMilli(), suffix)
}
