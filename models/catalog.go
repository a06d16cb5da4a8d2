package models

// Category groups services under a marketable heading (e.g. "Cleaning").
type Category struct {
	ID          string `bson:"id" json:"id"`
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description" json:"description,omitempty"`
	IconURL     string `bson:"iconUrl" json:"iconUrl,omitempty"`
	IsActive    bool   `bson:"isActive" json:"isActive"`
}

// Zone is a geographic service area. Experts and coupons may be scoped
// to one or more zones.
type Zone struct {
	ID       string `bson:"id" json:"id"`
	Name     string `bson:"name" json:"name"`
	City     string `bson:"city" json:"city"`
	State    string `bson:"state" json:"state"`
	IsActive bool   `bson:"isActive" json:"isActive"`
}

// ServiceAddon is an optional extra owned by its parent service. It has
// no independent lifecycle.
type ServiceAddon struct {
	ID              string `bson:"id" json:"id"`
	Name            string `bson:"name" json:"name"`
	PriceINR        int    `bson:"priceInr" json:"priceInr"`               // flat price delta in whole rupees
	DurationMinutes int    `bson:"durationMinutes" json:"durationMinutes"` // duration delta
}

// Service is immutable reference data maintained by an administrative
// process; the booking flow only reads it.
type Service struct {
	ID              string         `bson:"id" json:"id"`
	CategoryID      string         `bson:"categoryId" json:"categoryId"`
	Name            string         `bson:"name" json:"name"`
	Description     string         `bson:"description" json:"description,omitempty"`
	HourlyRateINR   int            `bson:"hourlyRateInr" json:"hourlyRateInr"` // base rate in whole rupees
	Currency        string         `bson:"currency" json:"currency"`
	DurationMinutes int            `bson:"durationMinutes" json:"durationMinutes"`
	ImageURL        string         `bson:"imageUrl" json:"imageUrl,omitempty"`
	IsActive        bool           `bson:"isActive" json:"isActive"`
	AvailableZones  []string       `bson:"availableZones" json:"availableZones,omitempty"`
	Addons          []ServiceAddon `bson:"addons" json:"addons,omitempty"`
}

// AddonByID returns the addon with the given id, or nil if the service
// does not carry it.
func (s *Service) AddonByID(id string) *ServiceAddon {
	for i := range s.Addons {
		if s.Addons[i].ID == id {
			return &s.Addons[i]
		}
	}
	return nil
}
