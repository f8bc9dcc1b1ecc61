package charity

import "time"

// Charity é dado de referência imutável: carregado na inicialização,
// nunca alterado pelos workflows.
type Charity struct {
	Id           string    `gorm:"type:varchar(64);primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(100);not null" json:"name"`
	Description  string    `gorm:"type:text" json:"description"`
	Emoji        string    `gorm:"type:varchar(16)" json:"emoji"`
	Verified     bool      `gorm:"not null;default:false" json:"verified"`
	DonorCount   int       `gorm:"not null;default:0" json:"donorCount"`
	ImpactMetric string    `gorm:"type:varchar(50)" json:"impactMetric"`
	ImpactRate   float64   `gorm:"type:decimal(10,4)" json:"impactRate"`
	Category     string    `gorm:"type:varchar(50);index:idx_charities_category" json:"category"`
	WebsiteURL   string    `gorm:"type:varchar(255)" json:"websiteUrl,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Charity) TableName() string {
	return "charities"
}
