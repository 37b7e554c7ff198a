package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrRootNotFound", ErrRootNotFound},
		{"ErrRootNotDirectory", ErrRootNotDirectory},
		{"ErrWriteOutput", ErrWriteOutput},
		{"ErrConfig", ErrConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

// TestErrRootNotFound tests ErrRootNotFound error
func TestErrRootNotFound(t *testing.T) {
	assert.Equal(t, "directory does not exist", ErrRootNotFound.Error())
	assert.False(t, errors.Is(ErrRootNotFound, ErrRootNotDirectory))
}

// TestErrors_Wrapped tests sentinel errors survive wrapping with a path
func TestErrors_Wrapped(t *testing.T) {
	err := fmt.Errorf("%w: %s", ErrRootNotFound, "/no/such/dir")

	assert.True(t, errors.Is(err, ErrRootNotFound))
	assert.Contains(t, err.Error(), "/no/such/dir")
}
