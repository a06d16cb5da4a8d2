package models

import "time"

// UserRole scopes what a user may do. A user holds at least one role.
type UserRole string

const (
	RoleCustomer UserRole = "ROLE_CUSTOMER"
	RoleExpert   UserRole = "ROLE_EXPERT"
)

// User is the authentication identity shared by customers and experts.
type User struct {
	ID           string     `bson:"id" json:"id"`
	Phone        string     `bson:"phone" json:"phone"`
	Email        string     `bson:"email" json:"email"`
	FullName     string     `bson:"fullName" json:"fullName"`
	Password     string     `bson:"-" json:"password,omitempty"` // plaintext, request-only
	PasswordHash string     `bson:"passwordHash" json:"-"`
	Roles        []UserRole `bson:"roles" json:"roles"`
	Blocked      bool       `bson:"blocked" json:"blocked"`
	FCMToken     string     `bson:"fcmToken,omitempty" json:"-"`
	CreatedAt    time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// HasRole reports whether the user carries the given role.
func (u *User) HasRole(role UserRole) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// CustomerProfile carries the customer-facing fields of a user.
type CustomerProfile struct {
	ID               string   `bson:"id" json:"id"`
	UserID           string   `bson:"userId" json:"userId"`
	FullName         string   `bson:"fullName" json:"fullName"`
	Phone            string   `bson:"phone" json:"phone"`
	Email            string   `bson:"email" json:"email"`
	Age              *int     `bson:"age,omitempty" json:"age,omitempty"`
	PreferredZoneIDs []string `bson:"preferredZoneIds" json:"preferredZoneIds"`
}

// RegisterCustomerRequest is the payload for customer signup.
type RegisterCustomerRequest struct {
	FullName         string   `json:"fullName" binding:"required"`
	Phone            string   `json:"phone" binding:"required"`
	Email            string   `json:"email" binding:"required,email"`
	Password         string   `json:"password" binding:"required,min=6"`
	Age              *int     `json:"age,omitempty"`
	PreferredZoneIDs []string `json:"preferredZoneIds,omitempty"`
}

// RegisterExpertRequest is the payload for expert signup. At least one
// skill is required; the profile starts PENDING approval and OFFLINE.
type RegisterExpertRequest struct {
	FullName   string   `json:"fullName" binding:"required"`
	Phone      string   `json:"phone" binding:"required"`
	Email      string   `json:"email" binding:"required,email"`
	Password   string   `json:"password" binding:"required,min=6"`
	Skills     []string `json:"skills" binding:"required,min=1"`
	ZoneIDs    []string `json:"zoneIds,omitempty"`
	IDProofURL string   `json:"idProofUrl,omitempty"`
}

// LoginRequest authenticates by phone, password and the role the client
// is signing in as.
type LoginRequest struct {
	Phone    string   `json:"phone" binding:"required"`
	Password string   `json:"password" binding:"required"`
	Role     UserRole `json:"role" binding:"required"`
}

// AuthResponse is returned on successful login or registration.
type AuthResponse struct {
	Token   string `json:"token"`
	User    *User  `json:"user"`
	Profile any    `json:"profile,omitempty"` // CustomerProfile or ExpertProfile
}
