package user

import (
	"fmt"

	"github.com/chrisdemonxxx/godrive/models"
	"github.com/chrisdemonxxx/godrive/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// GetUserByID fetches a user's profile.
func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	usr, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if usr == nil {
		return nil, fmt.Errorf("user not found")
	}
	return usr, nil
}

// UpdateProfile applies a partial update to the user's own profile fields.
func (s *DefaultUserService) UpdateProfile(userID string, update models.ProfileUpdate) (*models.User, error) {
	fields := bson.M{}
	if update.FullName != "" {
		fields["full_name"] = update.FullName
	}
	if update.Email != "" {
		fields["email"] = update.Email
		fields["is_email_verified"] = false
	}
	if update.AvatarURL != "" {
		fields["avatar_url"] = update.AvatarURL
	}
	if update.DateOfBirth != "" {
		fields["date_of_birth"] = update.DateOfBirth
	}
	if update.AddressLine1 != "" {
		fields["address_line1"] = update.AddressLine1
	}
	if update.AddressLine2 != "" {
		fields["address_line2"] = update.AddressLine2
	}
	if update.City != "" {
		fields["city"] = update.City
	}
	if update.State != "" {
		fields["state"] = update.State
	}
	if update.Pincode != "" {
		fields["pincode"] = update.Pincode
	}
	if update.FCMToken != "" {
		fields["fcm_token"] = update.FCMToken
	}
	if len(fields) == 0 {
		return s.GetUserByID(userID)
	}

	if err := s.Repo.UpdateSetDocument(userID, fields); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return s.GetUserByID(userID)
}

// BecomeHost upgrades a verified guest so they can list cars. KYC must be
// complete first.
func (s *DefaultUserService) BecomeHost(userID string) (*models.User, error) {
	usr, err := s.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	if usr.Role.CanHost() {
		return usr, nil
	}
	if usr.KycStatus != models.KycVerified {
		return nil, fmt.Errorf("KYC verification is required before hosting")
	}

	if err := s.Repo.UpdateSetDocument(userID, bson.M{"role": models.RoleBoth}); err != nil {
		return nil, fmt.Errorf("failed to upgrade role: %w", err)
	}
	utils.GetLogger().Info("User upgraded to host", zap.String("userID", userID))

	usr.Role = models.RoleBoth
	return usr, nil
}

// Deactivate disables the account and revokes its session. Records are kept
// for bookings that reference the user.
func (s *DefaultUserService) Deactivate(userID string) error {
	if err := s.Repo.UpdateSetDocument(userID, bson.M{"is_active": false}); err != nil {
		return fmt.Errorf("failed to deactivate user: %w", err)
	}
	return s.RevokeToken(userID)
}
