package models

import "gorm.io/gorm"

// Service categories a project can be filed under.
const (
	ServiceDesign   = "Design"
	ServiceIPTV     = "IPTV"
	ServiceSoftware = "Software"
)

func ValidService(service string) bool {
	switch service {
	case ServiceDesign, ServiceIPTV, ServiceSoftware:
		return true
	}
	return false
}

type Project struct {
	gorm.Model

	Title         string `gorm:"not null"`
	Service       string `gorm:"not null"` // "Design", "IPTV" or "Software"
	Status        string `gorm:"not null"` // free-form, e.g. "Em andamento", "Finalizado"
	RequesterName string
	UserID        uint `gorm:"not null;index"`

	// Relationships
	User  User   `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Tasks []Task `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
