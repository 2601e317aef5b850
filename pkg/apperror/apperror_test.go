package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToHTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", NewNotFound("project", "42"), http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("load: %w", NewNotFound("profile", "latest")), http.StatusNotFound},
		{"invalid input", NewInvalidInput("bad id", nil), http.StatusBadRequest},
		{"unavailable", NewUnavailable("postgres down", errors.New("dial tcp")), http.StatusServiceUnavailable},
		{"internal", NewInternal("scan failed", errors.New("boom")), http.StatusInternalServerError},
		{"plain error", errors.New("unknown"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ToHTTPStatus(tc.err))
		})
	}
}

func TestAppErrorUnwrapKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewInternal("failed to query projects", cause)

	assert.ErrorIs(t, err, ErrInternal)
	assert.ErrorIs(t, err, cause)
	assert.False(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "connection refused")
}

func TestToJSON(t *testing.T) {
	body := NewNotFound("project", "7").ToJSON()

	assert.Equal(t, "not found", body["error"])
	assert.Equal(t, "project not found", body["message"])
}
