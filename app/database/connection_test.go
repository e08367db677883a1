package database

import (
	"testing"
)

func TestNewConnection_InvalidParams(t *testing.T) {
	_, err := NewConnection("invalid", "invalid", "invalid", "invalid", "invalid")
	if err == nil {
		t.Error("Expected error for invalid connection parameters")
	}

	// A valid connection requires a running database; integration tests cover
	// that separately.
}
