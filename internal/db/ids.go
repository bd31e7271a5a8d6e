package db

import (
	"crypto/rand"
	"encoding/hex"
)

const (
	dayIDPrefix     = "day-"
	taskIDPrefix    = "tk-"
	dvorushIDPrefix = "dv-"
)

// generateDayID generates a unique day ID
func generateDayID() (string, error) {
	bytes := make([]byte, 4) // 8 hex characters
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return dayIDPrefix + hex.EncodeToString(bytes), nil
}

// generateTaskID generates a unique task ID
func generateTaskID() (string, error) {
	bytes := make([]byte, 4) // 8 hex characters
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return taskIDPrefix + hex.EncodeToString(bytes), nil
}

// generateDvorushID generates a unique dvorush task ID
func generateDvorushID() (string, error) {
	bytes := make([]byte, 4) // 8 hex characters
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return dvorushIDPrefix + hex.EncodeToString(bytes), nil
}
