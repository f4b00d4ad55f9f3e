package database

import (
	"time"

	"gorm.io/gorm"
)

type Vehicle struct {
	ID    int `gorm:"column:vehicle_seq_id;primaryKey;autoIncrement:false"`
	VIN   string
	Year  int
	Make  string
	Model string
}

type Participant struct {
	ParticipantSeqID      int `gorm:"primaryKey;autoIncrement:false"`
	ParticipantGroupSeqID int `gorm:"index"`
	ParticipantID         string
	Status                string
	DeviceExperience      string
	Program               string
	Nickname              string
	VehicleSeqID          *int
	Vehicle               *Vehicle `gorm:"foreignKey:VehicleSeqID;references:ID"`
	DeviceSeqID           *int     `gorm:"index"`
	DeviceSerialNumber    string
	CreatedAt             time.Time
	UpdatedAt             time.Time
	UpdatedBy             string
}

type DeviceReturn struct {
	DeviceReturnSeqID int `gorm:"primaryKey"`
	DeviceSeqID       int `gorm:"uniqueIndex:idx_device_return_device_participant"`
	ParticipantSeqID  int `gorm:"uniqueIndex:idx_device_return_device_participant;index"`
	VehicleSeqID      *int
	ReasonCode        string
	ReceivedAt        *time.Time
	AbandonedAt       *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type DeviceOrder struct {
	OrderSeqID            int    `gorm:"primaryKey"`
	OrderNumber           string `gorm:"uniqueIndex"`
	Kind                  string
	Status                string `gorm:"index"`
	ParticipantSeqID      int    `gorm:"index"`
	ParticipantGroupSeqID int    `gorm:"index"`
	VehicleSeqID          int
	VIN                   string
	Year                  int
	Make                  string
	Model                 string
	Details               []DeviceOrderDetail `gorm:"foreignKey:OrderSeqID"`
	CreatedBy             string
	UpdatedBy             string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

type DeviceOrderDetail struct {
	OrderDetailSeqID int `gorm:"primaryKey"`
	OrderSeqID       int `gorm:"index"`
	ParticipantSeqID int
	VehicleSeqID     int
	ProductCode      string
	Quantity         int
}

// InventoryDevice is the internal copy of the device directory, used when the
// remote device service does not know a serial number.
type InventoryDevice struct {
	DeviceSeqID          int    `gorm:"primaryKey;autoIncrement:false"`
	SerialNumber         string `gorm:"uniqueIndex"`
	SIM                  string
	Status               string
	Location             string
	ManufacturerLotSeqID *int
	ReturnLotSeqID       *int
	UpdatedAt            time.Time
}

type DeviceActivity struct {
	gorm.Model

	SerialNumber string `gorm:"index"`
	Activity     string
	UserName     string
	Details      string
}
