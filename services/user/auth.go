package user

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/chrisdemonxxx/godrive/models"
	"github.com/chrisdemonxxx/godrive/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const sessionTokenTTL = 30 * 24 * time.Hour

var phonePattern = regexp.MustCompile(`^\+?[0-9]{10,15}$`)

// InitiateAuth sends an OTP to the phone number. The user record is created
// lazily on verification, so unknown numbers are not an error here.
func (s *DefaultUserService) InitiateAuth(phone string) error {
	if !phonePattern.MatchString(phone) {
		return fmt.Errorf("invalid phone number")
	}

	existing, err := s.Repo.GetByPhone(phone)
	if err != nil {
		return fmt.Errorf("failed to look up phone: %w", err)
	}
	if existing != nil && !existing.IsActive {
		return fmt.Errorf("account is deactivated")
	}

	return utils.InitiatePhoneOTP(phone)
}

// VerifyAuth checks the OTP and signs the user in, creating the account on
// first sign-in.
func (s *DefaultUserService) VerifyAuth(phone, otp string) (*AuthResponse, error) {
	logger := utils.GetLogger()

	if err := utils.VerifyPhoneOTP(phone, otp); err != nil {
		return nil, fmt.Errorf("OTP verification failed: %w", err)
	}

	usr, err := s.Repo.GetByPhone(phone)
	if err != nil {
		return nil, fmt.Errorf("failed to look up phone: %w", err)
	}

	isNew := usr == nil
	if isNew {
		usr = &models.User{
			ID:              uuid.New().String(),
			Phone:           phone,
			Role:            models.RoleGuest,
			KycStatus:       models.KycPending,
			IsPhoneVerified: true,
			IsActive:        true,
		}
		if err := s.Repo.Create(usr); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		logger.Info("New user registered", zap.String("userID", usr.ID))
	}
	if !usr.IsActive {
		return nil, fmt.Errorf("account is deactivated")
	}

	return s.issueSession(usr, isNew)
}

// AuthenticateAdmin signs an admin in with email and password. Regular
// users never carry a password hash.
func (s *DefaultUserService) AuthenticateAdmin(email, password string) (*AuthResponse, error) {
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up email: %w", err)
	}
	if usr == nil || usr.Role != models.RoleAdmin || usr.PasswordHash == "" {
		return nil, fmt.Errorf("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}
	if !usr.IsActive {
		return nil, fmt.Errorf("account is deactivated")
	}

	return s.issueSession(usr, false)
}

func (s *DefaultUserService) issueSession(usr *models.User, isNew bool) (*AuthResponse, error) {
	token, err := utils.GenerateToken(usr.ID, usr.Phone, sessionTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	tokenHash := utils.HashToken(token)

	now := time.Now()
	if err := s.Repo.UpdateSetDocument(usr.ID, bson.M{
		"token_hash":    tokenHash,
		"last_login_at": now,
	}); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	cacheKey := utils.AuthCachePrefix + usr.ID
	if err := utils.GetAuthCacheClient().Set(context.Background(), cacheKey, tokenHash, sessionTokenTTL).Err(); err != nil {
		utils.GetLogger().Warn("Failed to cache session token", zap.Error(err))
	}

	return &AuthResponse{
		ID:        usr.ID,
		Token:     token,
		Phone:     usr.Phone,
		Email:     usr.Email,
		FullName:  usr.FullName,
		Role:      string(usr.Role),
		KycStatus: string(usr.KycStatus),
		IsNewUser: isNew,
	}, nil
}

// RevokeToken signs the user out everywhere by clearing the stored hash.
func (s *DefaultUserService) RevokeToken(userID string) error {
	if err := s.Repo.UpdateSetDocument(userID, bson.M{"token_hash": ""}); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	cacheKey := utils.AuthCachePrefix + userID
	if err := utils.GetAuthCacheClient().Del(context.Background(), cacheKey).Err(); err != nil {
		utils.GetLogger().Warn("Failed to evict cached session", zap.Error(err))
	}
	return nil
}
