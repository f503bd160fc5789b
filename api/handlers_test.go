package api

import (
	"fmt"
	"net/http"
	"testing"

	"zoltaran/domain/entities"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", entities.ErrValidation, http.StatusBadRequest},
		{"not authorized", entities.ErrNotAuthorized, http.StatusForbidden},
		{"state conflict", entities.ErrStateConflict, http.StatusConflict},
		{"exhausted", entities.ErrExhausted, http.StatusConflict},
		{"policy", entities.ErrPolicy, http.StatusUnprocessableEntity},
		{"invariant", entities.ErrInvariant, http.StatusInternalServerError},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("operation failed: %w", tt.err)
			assert.Equal(t, tt.want, statusFor(wrapped))
		})
	}
}
