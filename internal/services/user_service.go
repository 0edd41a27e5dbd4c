package services

import (
	"fmt"

	"gerai/internal/apperrors"
	"gerai/internal/models"
	"gerai/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// UserService handles profile and account management for authenticated
// users.
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetProfile returns the user's account record.
func (s *UserService) GetProfile(userID string) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, classify(err)
	}
	return user, nil
}

// ProfileUpdateRequest carries the editable profile fields.
type ProfileUpdateRequest struct {
	ProfileImageURL string `json:"profile_image_url"`
	DateOfBirth     string `json:"date_of_birth"`
	Gender          string `json:"gender"`
	Bio             string `json:"bio" validate:"omitempty,max=500"`
	BusinessName    string `json:"business_name" validate:"omitempty,max=100"`
}

// UpdateProfile overwrites the user's profile fields.
func (s *UserService) UpdateProfile(userID string, req ProfileUpdateRequest) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return classify(err)
	}

	user.ProfileImageURL = req.ProfileImageURL
	user.DateOfBirth = req.DateOfBirth
	user.Gender = req.Gender
	user.Bio = req.Bio
	user.BusinessName = req.BusinessName

	return classify(s.userRepo.Update(user))
}

// ShippingUpdateRequest carries the shipping fields orders snapshot from.
type ShippingUpdateRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
	Address     string `json:"address" validate:"required"`
	City        string `json:"city" validate:"required"`
	State       string `json:"state" validate:"required"`
	PostalCode  string `json:"postal_code" validate:"required"`
}

// UpdateShippingDetails overwrites the user's shipping fields.
func (s *UserService) UpdateShippingDetails(userID string, req ShippingUpdateRequest) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return classify(err)
	}

	user.PhoneNumber = req.PhoneNumber
	user.Address = req.Address
	user.City = req.City
	user.State = req.State
	user.PostalCode = req.PostalCode

	return classify(s.userRepo.Update(user))
}

// UpdateEmail changes the account email after checking it is not taken.
func (s *UserService) UpdateEmail(userID, newEmail string) error {
	if existing, err := s.userRepo.GetByEmail(newEmail); err == nil && existing != nil && existing.ID != userID {
		return fmt.Errorf("%w: email '%s' already registered", apperrors.ErrConflict, newEmail)
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return classify(err)
	}
	user.Email = newEmail
	return classify(s.userRepo.Update(user))
}

// UpdatePassword verifies the current password and stores a new hash.
func (s *UserService) UpdatePassword(userID, currentPassword, newPassword string) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return classify(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)); err != nil {
		return fmt.Errorf("%w: current password is incorrect", apperrors.ErrInvalidInput)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashed)
	return classify(s.userRepo.Update(user))
}

// SetActive flips the account's active flag. Admin only; enforced by the
// route group.
func (s *UserService) SetActive(userID string, active bool) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return classify(err)
	}
	user.IsActive = active
	return classify(s.userRepo.Update(user))
}

// Delete removes the account.
func (s *UserService) Delete(userID string) error {
	return classify(s.userRepo.Delete(userID))
}
