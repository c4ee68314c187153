package models

import "gorm.io/gorm"

// Gateway holds the PIX provider credentials. One row; env vars fill the
// gaps when the row is absent (fresh installs).
type Gateway struct {
	gorm.Model

	URI          string `gorm:"size:191" json:"uri"`
	ClientID     string `gorm:"size:191" json:"client_id"`
	ClientSecret string `gorm:"size:191" json:"-"`
	StatusURL    string `gorm:"size:191" json:"status_url"`
}
