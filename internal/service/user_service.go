package service

import (
	"intervia-backend/internal/model"
	"intervia-backend/internal/repository"
	"intervia-backend/pkg/logging"
	"intervia-backend/utilities"
)

// IdentityEventData is the payload of one identity-provider lifecycle
// event.
type IdentityEventData struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	AvatarURL string `json:"avatar_url"`
}

type UserService interface {
	SyncCreatedUser(data IdentityEventData) error
	SyncUpdatedUser(data IdentityEventData) error
	SyncDeletedUser(userID string) error
	GetUserByID(id string) (*model.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// InitIdentityEventListeners subscribes the fire-and-forget lifecycle
// handlers. Created and deleted events are processed off the request path
// and their failures are only logged; updated events stay synchronous in
// the webhook handler because the provider retries on error responses.
func InitIdentityEventListeners(userService UserService) {
	utilities.GlobalEventBus.Subscribe(utilities.EventUserCreated, func(payload interface{}) {
		data, ok := payload.(IdentityEventData)
		if !ok {
			logging.Error("user.created event carried an unexpected payload type")
			return
		}
		if err := userService.SyncCreatedUser(data); err != nil {
			logging.Error("failed to sync created user %s: %v", data.ID, err)
		}
	})

	utilities.GlobalEventBus.Subscribe(utilities.EventUserDeleted, func(payload interface{}) {
		userID, ok := payload.(string)
		if !ok {
			logging.Error("user.deleted event carried an unexpected payload type")
			return
		}
		if err := userService.SyncDeletedUser(userID); err != nil {
			logging.Error("failed to sync deleted user %s: %v", userID, err)
		}
	})
}

func (s *userService) SyncCreatedUser(data IdentityEventData) error {
	user := &model.User{
		ID:        data.ID,
		Email:     data.Email,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		AvatarURL: data.AvatarURL,
	}
	return s.userRepo.CreateUser(user)
}

func (s *userService) SyncUpdatedUser(data IdentityEventData) error {
	user := &model.User{
		ID:        data.ID,
		Email:     data.Email,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		AvatarURL: data.AvatarURL,
	}
	return s.userRepo.UpdateUser(user)
}

func (s *userService) SyncDeletedUser(userID string) error {
	return s.userRepo.DeleteUser(userID)
}

func (s *userService) GetUserByID(id string) (*model.User, error) {
	return s.userRepo.GetUserByID(id)
}
