package controller

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"intervia-backend/internal/service"
	"intervia-backend/pkg/logging"
	"intervia-backend/utilities"
)

type WebhookController struct {
	UserService   service.UserService
	webhookSecret string
}

func NewWebhookController(userService service.UserService, webhookSecret string) *WebhookController {
	return &WebhookController{
		UserService:   userService,
		webhookSecret: webhookSecret,
	}
}

// identityEvent is the provider's event envelope.
type identityEvent struct {
	Type string                    `json:"type"`
	Data service.IdentityEventData `json:"data"`
}

// HandleIdentityEvent handles POST /webhooks/identity. Created and deleted
// events are acknowledged immediately and processed off the request path;
// updated events surface failure synchronously so the provider retries
// them.
func (wc *WebhookController) HandleIdentityEvent(c *gin.Context) {
	secret := c.GetHeader("X-Webhook-Secret")
	if wc.webhookSecret == "" || subtle.ConstantTimeCompare([]byte(secret), []byte(wc.webhookSecret)) != 1 {
		c.String(http.StatusUnauthorized, "invalid webhook secret")
		return
	}

	var event identityEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		c.String(http.StatusBadRequest, "invalid event payload")
		return
	}

	switch event.Type {
	case "user.created":
		utilities.GlobalEventBus.Publish(utilities.EventUserCreated, event.Data)
		c.String(http.StatusOK, "OK")
	case "user.updated":
		if err := wc.UserService.SyncUpdatedUser(event.Data); err != nil {
			logging.Error("failed to sync updated user %s: %v", event.Data.ID, err)
			c.String(http.StatusInternalServerError, "failed to update user")
			return
		}
		c.String(http.StatusOK, "OK")
	case "user.deleted":
		utilities.GlobalEventBus.Publish(utilities.EventUserDeleted, event.Data.ID)
		c.String(http.StatusOK, "OK")
	default:
		logging.Warn("ignoring unknown identity event type %q", event.Type)
		c.String(http.StatusOK, "OK")
	}
}
