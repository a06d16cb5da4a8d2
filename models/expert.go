package models

import "time"

// ExpertApprovalStatus is set by the admin approval workflow.
type ExpertApprovalStatus string

const (
	ExpertPending  ExpertApprovalStatus = "PENDING"
	ExpertApproved ExpertApprovalStatus = "APPROVED"
	ExpertRejected ExpertApprovalStatus = "REJECTED"
)

// ExpertOnlineStatus is toggled by the expert and gates ASAP matching.
type ExpertOnlineStatus string

const (
	ExpertOnline  ExpertOnlineStatus = "ONLINE"
	ExpertOffline ExpertOnlineStatus = "OFFLINE"
)

// ExpertProfile is the marketplace-facing record of an expert.
type ExpertProfile struct {
	ID           string               `bson:"id" json:"id"`
	UserID       string               `bson:"userId" json:"userId"`
	FullName     string               `bson:"fullName" json:"fullName"`
	Phone        string               `bson:"phone" json:"phone"`
	Email        string               `bson:"email" json:"email,omitempty"`
	Skills       []string             `bson:"skills" json:"skills"`   // free-text category tags
	ZoneIDs      []string             `bson:"zoneIds" json:"zoneIds"` // zones served
	Status       ExpertApprovalStatus `bson:"status" json:"status"`
	OnlineStatus ExpertOnlineStatus   `bson:"onlineStatus" json:"onlineStatus"`
	Rating       float64              `bson:"rating" json:"rating"`
	TotalJobs    int                  `bson:"totalJobs" json:"totalJobs"`
	IDProofURL   string               `bson:"idProofUrl,omitempty" json:"idProofUrl,omitempty"`
	CreatedAt    time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// ServesZone reports whether the expert covers the given zone.
func (p *ExpertProfile) ServesZone(zoneID string) bool {
	for _, z := range p.ZoneIDs {
		if z == zoneID {
			return true
		}
	}
	return false
}

// ExpertProfileUpdate enumerates the profile fields an expert or the
// approval workflow may change. Nil fields are left untouched.
type ExpertProfileUpdate struct {
	FullName     *string               `json:"fullName,omitempty"`
	Skills       []string              `json:"skills,omitempty"`
	ZoneIDs      []string              `json:"zoneIds,omitempty"`
	Status       *ExpertApprovalStatus `json:"status,omitempty"`
	OnlineStatus *ExpertOnlineStatus   `json:"onlineStatus,omitempty"`
	IDProofURL   *string               `json:"idProofUrl,omitempty"`
}

// ExpertAvailability is the published time-slot set for one expert on
// one date. One record per (expert, date); updates are upserts.
type ExpertAvailability struct {
	ID              string    `bson:"id" json:"id"`
	ExpertProfileID string    `bson:"expertProfileId" json:"expertProfileId"`
	Date            string    `bson:"date" json:"date"` // YYYY-MM-DD
	TimeSlots       []string  `bson:"timeSlots" json:"timeSlots"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}

// HasSlot reports whether the record publishes the given slot label.
func (a *ExpertAvailability) HasSlot(slot string) bool {
	for _, s := range a.TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// ExpertStats is the dashboard summary computed from an expert's
// bookings. Earnings count bookings that have been paid for and not
// cancelled or rejected.
type ExpertStats struct {
	TodayJobs     int     `json:"todayJobs"`
	ThisWeekJobs  int     `json:"thisWeekJobs"`
	TotalEarnings int     `json:"totalEarnings"`
	Rating        float64 `json:"rating"`
}
