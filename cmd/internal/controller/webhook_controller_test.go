package controller

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"intervia-backend/internal/apperror"
	"intervia-backend/internal/model"
	"intervia-backend/internal/service"
)

type fakeUserService struct {
	updatedErr error
	updated    []service.IdentityEventData
}

func (f *fakeUserService) SyncCreatedUser(data service.IdentityEventData) error { return nil }
func (f *fakeUserService) SyncUpdatedUser(data service.IdentityEventData) error {
	f.updated = append(f.updated, data)
	return f.updatedErr
}
func (f *fakeUserService) SyncDeletedUser(userID string) error { return nil }
func (f *fakeUserService) GetUserByID(id string) (*model.User, error) {
	return nil, apperror.ErrNotFound
}

func postWebhook(t *testing.T, svc service.UserService, secret, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ctrl := NewWebhookController(svc, "whsec_test")
	r.POST("/webhooks/identity", ctrl.HandleIdentityEvent)

	req := httptest.NewRequest(http.MethodPost, "/webhooks/identity", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if secret != "" {
		req.Header.Set("X-Webhook-Secret", secret)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWebhookRejectsBadSecret(t *testing.T) {
	w := postWebhook(t, &fakeUserService{}, "wrong", `{"type":"user.created","data":{"id":"u1"}}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = postWebhook(t, &fakeUserService{}, "", `{"type":"user.created","data":{"id":"u1"}}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWebhookCreatedAcksImmediately(t *testing.T) {
	w := postWebhook(t, &fakeUserService{}, "whsec_test",
		`{"type":"user.created","data":{"id":"u1","email":"a@b.c","first_name":"A","last_name":"B"}}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestWebhookUpdatedSurfacesFailure(t *testing.T) {
	svc := &fakeUserService{updatedErr: apperror.ErrNotFound}
	w := postWebhook(t, svc, "whsec_test",
		`{"type":"user.updated","data":{"id":"ghost","email":"g@b.c"}}`)

	// Updated is the one synchronous handler; a missing record is an error
	// response so the provider retries.
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Len(t, svc.updated, 1)
	assert.Equal(t, "ghost", svc.updated[0].ID)
}

func TestWebhookDeletedForUnknownUserStillAcks(t *testing.T) {
	w := postWebhook(t, &fakeUserService{}, "whsec_test",
		`{"type":"user.deleted","data":{"id":"ghost"}}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestWebhookUnknownEventTypeAcks(t *testing.T) {
	w := postWebhook(t, &fakeUserService{}, "whsec_test",
		`{"type":"session.created","data":{"id":"s1"}}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWebhookRejectsMalformedBody(t *testing.T) {
	w := postWebhook(t, &fakeUserService{}, "whsec_test", `{"type":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
