package model

// ReferralStrength is an ordered qualitative scale of how warm a contact is.
type ReferralStrength string

const (
	// ReferralCold indicates no prior relationship with the contact
	ReferralCold ReferralStrength = "Cold"
	// ReferralAcquaintance indicates the contact knows of you
	ReferralAcquaintance ReferralStrength = "Acquaintance"
	// ReferralFriend indicates a personal relationship
	ReferralFriend ReferralStrength = "Friend"
	// ReferralStrongReference indicates the contact will actively vouch for you
	ReferralStrongReference ReferralStrength = "Strong Reference"
)

// ReferralScale lists the scale from weakest to strongest.
var ReferralScale = []ReferralStrength{
	ReferralCold,
	ReferralAcquaintance,
	ReferralFriend,
	ReferralStrongReference,
}

// Rank returns the position of r on the scale, 0 being coldest.
// Unknown values rank below Cold.
func (r ReferralStrength) Rank() int {
	for i, s := range ReferralScale {
		if r == s {
			return i
		}
	}
	return -1
}

// Contact is gorm model for a networking contact at a company.
// Contacts are created once and never edited or deleted.
type Contact struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	CompanyID uint    `gorm:"not null;index" json:"company_id" binding:"required"`
	Company   Company `gorm:"foreignKey:CompanyID;references:ID" json:"-"`

	Name             string           `gorm:"type:text" json:"name"`
	Role             string           `gorm:"type:text" json:"role"`
	Email            string           `gorm:"type:text" json:"email"`
	Linkedin         string           `gorm:"type:text" json:"linkedin"`
	ReferralStrength ReferralStrength `gorm:"type:text" json:"referral_strength"`
}
