package user

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"housemate/config"
	"housemate/models"
	"housemate/utils"
)

// tokenTTL reads the configured JWT lifetime.
func tokenTTL() time.Duration {
	hours := config.AppConfig.JWTExpiryHours
	if hours <= 0 {
		hours = 24
	}
	return time.Duration(hours) * time.Hour
}

// cacheToken stores the hashed token so the auth middleware can check
// revocation without re-reading Mongo.
func cacheToken(token, userID string, ttl time.Duration) {
	ctx := context.Background()
	key := "authToken:" + utils.HashToken(token)
	if err := utils.GetAuthCacheClient().Set(ctx, key, userID, ttl).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache auth token: " + err.Error())
	}
}

// RegisterCustomer creates a user with the customer role and profile.
func (s *DefaultUserService) RegisterCustomer(req *models.RegisterCustomerRequest) (*models.AuthResponse, error) {
	existing, err := s.UserRepo.GetByPhone(req.Phone)
	if err != nil {
		return nil, err
	}

	var u *models.User
	if existing != nil {
		if existing.HasRole(models.RoleCustomer) {
			return nil, fmt.Errorf("an account with phone %s already exists", req.Phone)
		}
		// Expert adding the customer role to the same account.
		existing.Roles = append(existing.Roles, models.RoleCustomer)
		if err := s.UserRepo.Update(existing); err != nil {
			return nil, err
		}
		u = existing
	} else {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		u = &models.User{
			ID:           uuid.New().String(),
			Phone:        req.Phone,
			Email:        req.Email,
			FullName:     req.FullName,
			PasswordHash: string(hash),
			Roles:        []models.UserRole{models.RoleCustomer},
		}
		if err := s.UserRepo.Create(u); err != nil {
			return nil, err
		}
	}

	profile := &models.CustomerProfile{
		ID:               uuid.New().String(),
		UserID:           u.ID,
		FullName:         req.FullName,
		Phone:            req.Phone,
		Email:            req.Email,
		Age:              req.Age,
		PreferredZoneIDs: req.PreferredZoneIDs,
	}
	if err := s.ProfileRepo.Create(profile); err != nil {
		return nil, err
	}

	return s.issueToken(u, models.RoleCustomer, profile)
}

// RegisterExpert creates a user with the expert role and a profile that
// starts PENDING approval and OFFLINE.
func (s *DefaultUserService) RegisterExpert(req *models.RegisterExpertRequest) (*models.AuthResponse, error) {
	existing, err := s.UserRepo.GetByPhone(req.Phone)
	if err != nil {
		return nil, err
	}

	var u *models.User
	if existing != nil {
		if existing.HasRole(models.RoleExpert) {
			return nil, fmt.Errorf("an expert account with phone %s already exists", req.Phone)
		}
		existing.Roles = append(existing.Roles, models.RoleExpert)
		if err := s.UserRepo.Update(existing); err != nil {
			return nil, err
		}
		u = existing
	} else {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		u = &models.User{
			ID:           uuid.New().String(),
			Phone:        req.Phone,
			Email:        req.Email,
			FullName:     req.FullName,
			PasswordHash: string(hash),
			Roles:        []models.UserRole{models.RoleExpert},
		}
		if err := s.UserRepo.Create(u); err != nil {
			return nil, err
		}
	}

	profile := &models.ExpertProfile{
		ID:           uuid.New().String(),
		UserID:       u.ID,
		FullName:     req.FullName,
		Phone:        req.Phone,
		Email:        req.Email,
		Skills:       req.Skills,
		ZoneIDs:      req.ZoneIDs,
		Status:       models.ExpertPending,
		OnlineStatus: models.ExpertOffline,
		IDProofURL:   req.IDProofURL,
	}
	if err := s.ExpertRepo.Create(profile); err != nil {
		return nil, err
	}

	return s.issueToken(u, models.RoleExpert, profile)
}

// Login authenticates by phone, password and role.
func (s *DefaultUserService) Login(req *models.LoginRequest) (*models.AuthResponse, error) {
	u, err := s.UserRepo.GetByPhone(req.Phone)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("invalid phone or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("invalid phone or password")
	}
	if u.Blocked {
		return nil, fmt.Errorf("account is blocked")
	}
	if !u.HasRole(req.Role) {
		return nil, fmt.Errorf("account does not have the %s role", req.Role)
	}

	var profile any
	switch req.Role {
	case models.RoleCustomer:
		p, err := s.ProfileRepo.GetByUserID(u.ID)
		if err != nil {
			return nil, err
		}
		profile = p
	case models.RoleExpert:
		p, err := s.ExpertRepo.GetByUserID(u.ID)
		if err != nil {
			return nil, err
		}
		profile = p
	}

	return s.issueToken(u, req.Role, profile)
}

// Logout invalidates the cached token.
func (s *DefaultUserService) Logout(token string) error {
	ctx := context.Background()
	key := "authToken:" + utils.HashToken(token)
	return utils.GetAuthCacheClient().Del(ctx, key).Err()
}

// GetUserByID retrieves an account.
func (s *DefaultUserService) GetUserByID(id string) (*models.User, error) {
	u, err := s.UserRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("user %s not found", id)
	}
	return u, nil
}

// Me resolves the account and the profile for the role the token was
// issued with.
func (s *DefaultUserService) Me(userID string, role models.UserRole) (*models.User, any, error) {
	u, err := s.GetUserByID(userID)
	if err != nil {
		return nil, nil, err
	}
	switch role {
	case models.RoleCustomer:
		p, err := s.ProfileRepo.GetByUserID(userID)
		if err != nil {
			return nil, nil, err
		}
		return u, p, nil
	case models.RoleExpert:
		p, err := s.ExpertRepo.GetByUserID(userID)
		if err != nil {
			return nil, nil, err
		}
		return u, p, nil
	default:
		return u, nil, nil
	}
}

// UpdateFCMToken stores a device push token.
func (s *DefaultUserService) UpdateFCMToken(userID, token string) error {
	return s.UserRepo.UpdateFCMToken(userID, token)
}

// ListUsers retrieves all accounts, optionally filtered by role.
func (s *DefaultUserService) ListUsers(role models.UserRole) ([]models.User, error) {
	return s.UserRepo.List(role)
}

// SetUserBlocked blocks or unblocks an account. Blocking does not
// revoke cached tokens immediately; the flag is enforced at login.
func (s *DefaultUserService) SetUserBlocked(userID string, blocked bool) error {
	u, err := s.UserRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if u == nil {
		return fmt.Errorf("user %s not found", userID)
	}
	return s.UserRepo.SetBlocked(userID, blocked)
}

func (s *DefaultUserService) issueToken(u *models.User, role models.UserRole, profile any) (*models.AuthResponse, error) {
	ttl := tokenTTL()
	token, err := utils.GenerateToken(u.ID, role, u.Phone, ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	cacheToken(token, u.ID, ttl)

	return &models.AuthResponse{Token: token, User: u, Profile: profile}, nil
}
