package user

import (
	catalogRepo "housemate/database/repository/catalog"
	expertRepo "housemate/database/repository/expert"
	userRepo "housemate/database/repository/user"
	"housemate/models"
)

// UserService manages accounts, login and the customer/expert profiles
// hanging off them.
type UserService interface {
	// RegisterCustomer creates a user with the customer role and its
	// profile. An existing account with the same phone gains the role
	// instead of a duplicate account.
	RegisterCustomer(req *models.RegisterCustomerRequest) (*models.AuthResponse, error)
	// RegisterExpert creates a user with the expert role and a profile
	// that starts PENDING approval and OFFLINE.
	RegisterExpert(req *models.RegisterExpertRequest) (*models.AuthResponse, error)
	// Login authenticates by phone, password and role.
	Login(req *models.LoginRequest) (*models.AuthResponse, error)
	// Logout invalidates the cached token.
	Logout(token string) error
	// GetUserByID retrieves an account.
	GetUserByID(id string) (*models.User, error)
	// Me resolves the profile for the role the token was issued with.
	Me(userID string, role models.UserRole) (*models.User, any, error)
	// UpdateFCMToken stores a device push token.
	UpdateFCMToken(userID, token string) error
	// ListUsers retrieves all accounts, optionally filtered by role.
	// Admin only.
	ListUsers(role models.UserRole) ([]models.User, error)
	// SetUserBlocked blocks or unblocks an account. Blocked users fail
	// authentication on their next request. Admin only.
	SetUserBlocked(userID string, blocked bool) error

	ListAddresses(customerID string) ([]models.Address, error)
	CreateAddress(customerID string, addr *models.Address) (*models.Address, error)
	UpdateAddress(customerID, addressID string, upd *models.AddressUpdate) (*models.Address, error)
	DeleteAddress(customerID, addressID string) error
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	UserRepo    userRepo.UserRepository
	ProfileRepo userRepo.CustomerProfileRepository
	AddressRepo userRepo.AddressRepository
	ExpertRepo  expertRepo.ExpertRepository
	ZoneRepo    catalogRepo.CatalogRepository
}
