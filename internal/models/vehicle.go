package models

import (
	"time"
)

// VehicleLookup caches registration plate lookups. The MOT/DVLA API is not
// integrated; entries are maintained by the garage and misses direct the
// customer to phone in.
type VehicleLookup struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	RegistrationPlate string    `json:"registrationPlate" gorm:"type:varchar(16);uniqueIndex;not null"`
	Make              string    `json:"make" gorm:"type:varchar(100)"`
	Model             string    `json:"model" gorm:"type:varchar(100)"`
	Year              string    `json:"year" gorm:"type:varchar(10)"`
	MOTExpiryDate     string    `json:"motExpiryDate" gorm:"type:varchar(20)"`
	MOTStatus         string    `json:"motStatus" gorm:"type:varchar(50)"`
	FuelType          string    `json:"fuelType" gorm:"type:varchar(50)"`
	EngineSize        string    `json:"engineSize" gorm:"type:varchar(20)"`
	LastChecked       time.Time `json:"lastChecked"`
}

// UserSearch records one visitor search (vehicle lookup, parts search or
// price comparison) for the admin analytics view.
type UserSearch struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	SearchType  string    `json:"searchType" gorm:"type:varchar(50);not null;index"`
	SearchQuery string    `json:"searchQuery" gorm:"type:varchar(500);not null"`
	UserAgent   string    `json:"userAgent" gorm:"type:varchar(500)"`
	IPAddress   string    `json:"ipAddress" gorm:"type:varchar(45)"`
	CreatedAt   time.Time `json:"createdAt" gorm:"index"`
}
