package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vkarpenko/card-vault/internal/service"
	"github.com/vkarpenko/card-vault/internal/utils"
)

func TestAuthMiddleware_Success(t *testing.T) {
	auth := &mockAuthSvc{
		authUserFn: func(_ context.Context, header string) (int64, error) {
			assert.Equal(t, "Bearer live-token", header)
			return 5, nil
		},
	}
	h := newTestHandler(auth, &mockCardSvc{}, &mockRelaySvc{})

	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		ownerID, ok := utils.GetOwnerIDFromContext(r.Context())
		assert.True(t, ok)
		assert.Equal(t, int64(5), ownerID)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/cards", nil)
	req.Header.Set("Authorization", "Bearer live-token")
	rec := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rec, req)

	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_Rejected(t *testing.T) {
	auth := &mockAuthSvc{
		authUserFn: func(_ context.Context, _ string) (int64, error) {
			return 0, service.ErrUnauthorized
		},
	}
	h := newTestHandler(auth, &mockCardSvc{}, &mockRelaySvc{})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run for rejected credentials")
	})

	req := httptest.NewRequest(http.MethodPost, "/api/cards", nil)
	rec := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"Unauthorized"}`, rec.Body.String())
}
