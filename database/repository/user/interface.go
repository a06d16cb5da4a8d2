package userRepo

import (
	"housemate/models"
)

// UserRepository defines methods for user account data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByPhone retrieves a user by phone number. Returns nil when no
	// account exists for that phone.
	GetByPhone(phone string) (*models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// Update modifies an existing user record.
	Update(user *models.User) error
	// UpdateFCMToken stores the device push token for a user.
	UpdateFCMToken(id, token string) error
	// List retrieves all user accounts, optionally filtered by role.
	List(role models.UserRole) ([]models.User, error)
	// SetBlocked flips the blocked flag on a user account.
	SetBlocked(id string, blocked bool) error
	// Delete removes a user record by its ID.
	Delete(id string) error
}

// CustomerProfileRepository defines methods for customer profile data access.
type CustomerProfileRepository interface {
	GetByUserID(userID string) (*models.CustomerProfile, error)
	Create(profile *models.CustomerProfile) error
	Update(profile *models.CustomerProfile) error
}

// AddressRepository defines methods for saved address data access.
type AddressRepository interface {
	GetByID(id string) (*models.Address, error)
	ListByCustomer(customerID string) ([]models.Address, error)
	Create(addr *models.Address) error
	// Patch applies the non-nil fields of upd to the address.
	Patch(id string, upd *models.AddressUpdate) (*models.Address, error)
	Delete(id string) error
	// SetDefault marks the given address as the customer's default and
	// clears the flag on their other addresses.
	SetDefault(customerID, addressID string) error
}
