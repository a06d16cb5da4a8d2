package models

// Address is a customer-owned delivery location for a booking.
type Address struct {
	ID         string  `bson:"id" json:"id"`
	CustomerID string  `bson:"customerId" json:"customerId"`
	Label      string  `bson:"label" json:"label"` // e.g. "Home", "Office"
	Line1      string  `bson:"line1" json:"line1"`
	Line2      string  `bson:"line2,omitempty" json:"line2,omitempty"`
	City       string  `bson:"city" json:"city"`
	State      string  `bson:"state" json:"state"`
	PostalCode string  `bson:"postalCode" json:"postalCode"`
	Lat        float64 `bson:"lat,omitempty" json:"lat,omitempty"`
	Lng        float64 `bson:"lng,omitempty" json:"lng,omitempty"`
	IsDefault  bool    `bson:"isDefault" json:"isDefault"`
}

// AddressUpdate enumerates the mutable address fields. Nil fields are
// left untouched.
type AddressUpdate struct {
	Label      *string `json:"label,omitempty"`
	Line1      *string `json:"line1,omitempty"`
	Line2      *string `json:"line2,omitempty"`
	City       *string `json:"city,omitempty"`
	State      *string `json:"state,omitempty"`
	PostalCode *string `json:"postalCode,omitempty"`
	IsDefault  *bool   `json:"isDefault,omitempty"`
}
