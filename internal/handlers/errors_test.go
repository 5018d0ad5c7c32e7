package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anik404/memory-lane/backend/internal/apperror"
)

func TestHTTPErrorHandler_TaxonomyMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"validation", apperror.ValidationFailed("Content is required"), http.StatusBadRequest, "Content is required"},
		{"unauthenticated", apperror.Unauthenticated("Authentication required"), http.StatusUnauthorized, "Authentication required"},
		{"invalid credential", apperror.InvalidCredential("Invalid token"), http.StatusUnauthorized, "Invalid token"},
		{"not found", apperror.NotFound("Post"), http.StatusNotFound, "Post not found"},
		{"conflict", apperror.Conflict("Username already taken"), http.StatusConflict, "Username already taken"},
		{"unexpected", errors.New("mongo: connection reset"), http.StatusInternalServerError, "Internal server error"},
	}

	e := newTestEcho()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newJSONContext(e, http.MethodGet, "/", "")
			HTTPErrorHandler(tc.err, c)

			assert.Equal(t, tc.wantStatus, rec.Code)
			body := decodeBody(t, rec)
			assert.Equal(t, tc.wantError, body["error"])
			// The only key in an error body is "error"
			assert.Len(t, body, 1)
		})
	}
}
