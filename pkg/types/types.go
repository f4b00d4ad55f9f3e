package types

import (
	"strings"
	"time"
)

type DeviceStatus string

const (
	DeviceStatusAvailable         DeviceStatus = "Available"
	DeviceStatusInactive          DeviceStatus = "Inactive"
	DeviceStatusAssigned          DeviceStatus = "Assigned"
	DeviceStatusAbandoned         DeviceStatus = "Abandoned"
	DeviceStatusCustomerReturn    DeviceStatus = "CustomerReturn"
	DeviceStatusUnavailable       DeviceStatus = "Unavailable"
	DeviceStatusDefective         DeviceStatus = "Defective"
	DeviceStatusBatched           DeviceStatus = "Batched"
	DeviceStatusReadyForPrep      DeviceStatus = "ReadyForPrep"
	DeviceStatusReadyForBenchTest DeviceStatus = "ReadyForBenchTest"
)

type DeviceLocation string

const (
	DeviceLocationProgressive          DeviceLocation = "Progressive"
	DeviceLocationDistributor          DeviceLocation = "Distributor"
	DeviceLocationShippedFromMfgToDist DeviceLocation = "ShippedFromMfgToDist"
	DeviceLocationShippedFromPrgToDist DeviceLocation = "ShippedFromPrgToDist"
	DeviceLocationShippedToCustomer    DeviceLocation = "ShippedToCustomer"
	DeviceLocationInVehicle            DeviceLocation = "InVehicle"
	DeviceLocationUnknown              DeviceLocation = "Unknown"
)

// IsKnown reports whether l carries actual location information.
func (l DeviceLocation) IsKnown() bool {
	return l != "" && l != DeviceLocationUnknown
}

type ReturnReasonCode string

const (
	ReturnReasonAbandoned      ReturnReasonCode = "Abandoned"
	ReturnReasonOptOut         ReturnReasonCode = "OptOut"
	ReturnReasonDeviceReplaced ReturnReasonCode = "DeviceReplaced"
	ReturnReasonDeviceProblem  ReturnReasonCode = "DeviceProblem"
	ReturnReasonCustomerReturn ReturnReasonCode = "CustomerReturn"
)

// Reason returns a pointer to code, for use where an optional reason is expected.
func Reason(code ReturnReasonCode) *ReturnReasonCode {
	return &code
}

type ParticipantStatus string

const (
	ParticipantStatusPending  ParticipantStatus = "Pending"
	ParticipantStatusActive   ParticipantStatus = "Active"
	ParticipantStatusInactive ParticipantStatus = "Inactive"
	ParticipantStatusOptOut   ParticipantStatus = "OptOut"
)

type DeviceExperience string

const (
	DeviceExperiencePlugIn DeviceExperience = "PlugIn"
	DeviceExperienceMobile DeviceExperience = "Mobile"
)

type Program string

const (
	ProgramDiscount        Program = "Discount"
	ProgramCommercialLines Program = "CommercialLines"
)

type Device struct {
	DeviceSeqID          int            `json:"deviceSeqID"`
	SerialNumber         string         `json:"serialNumber"`
	SIM                  string         `json:"sim,omitempty"`
	Status               DeviceStatus   `json:"status"`
	Location             DeviceLocation `json:"location"`
	ManufacturerLotSeqID *int           `json:"manufacturerLotSeqID,omitempty"`
	ReturnLotSeqID       *int           `json:"returnLotSeqID,omitempty"`
}

type Vehicle struct {
	VehicleSeqID int    `json:"vehicleSeqID"`
	VIN          string `json:"vin"`
	Year         int    `json:"year"`
	Make         string `json:"make"`
	Model        string `json:"model"`
}

type Participant struct {
	ParticipantSeqID      int               `json:"participantSeqID"`
	ParticipantGroupSeqID int               `json:"participantGroupSeqID"`
	ParticipantID         string            `json:"participantID"`
	Status                ParticipantStatus `json:"status"`
	DeviceExperience      DeviceExperience  `json:"deviceExperience"`
	Program               Program           `json:"program"`
	Nickname              string            `json:"nickname,omitempty"`
	VehicleSeqID          *int              `json:"vehicleSeqID,omitempty"`
	DeviceSeqID           *int              `json:"deviceSeqID,omitempty"`
	DeviceSerialNumber    string            `json:"deviceSerialNumber,omitempty"`
	Vehicle               *Vehicle          `json:"vehicle,omitempty"`
}

func (p Participant) HasDevice() bool {
	return p.DeviceSeqID != nil && *p.DeviceSeqID > 0
}

func (p Participant) HasVehicle() bool {
	return p.VehicleSeqID != nil && *p.VehicleSeqID > 0 && p.Vehicle != nil
}

func (p Participant) IsOptedOut() bool {
	return p.Status == ParticipantStatusOptOut
}

type DeviceReturn struct {
	DeviceReturnSeqID       int              `json:"deviceReturnSeqID"`
	DeviceSeqID             int              `json:"deviceSeqID"`
	ParticipantSeqID        int              `json:"participantSeqID"`
	VehicleSeqID            *int             `json:"vehicleSeqID,omitempty"`
	DeviceReturnReasonCode  ReturnReasonCode `json:"deviceReturnReasonCode"`
	DeviceReceivedDateTime  *time.Time       `json:"deviceReceivedDateTime,omitempty"`
	DeviceAbandonedDateTime *time.Time       `json:"deviceAbandonedDateTime,omitempty"`
}

type OrderStatus string

const (
	OrderStatusNew       OrderStatus = "New"
	OrderStatusCancelled OrderStatus = "Cancelled"
	OrderStatusShipped   OrderStatus = "Shipped"
)

type OrderKind string

const (
	OrderKindDiscount        OrderKind = "DiscountOrder"
	OrderKindCommercialLines OrderKind = "CommercialLinesOrder"
)

type ReplacementOrder struct {
	OrderSeqID            int           `json:"orderSeqID"`
	OrderNumber           string        `json:"orderNumber"`
	Kind                  OrderKind     `json:"kind"`
	Status                OrderStatus   `json:"status"`
	ParticipantSeqID      int           `json:"participantSeqID"`
	ParticipantGroupSeqID int           `json:"participantGroupSeqID"`
	VehicleSeqID          int           `json:"vehicleSeqID"`
	VIN                   string        `json:"vin"`
	Year                  int           `json:"year"`
	Make                  string        `json:"make"`
	Model                 string        `json:"model"`
	Details               []OrderDetail `json:"details"`
	CreatedBy             string        `json:"createdBy,omitempty"`
}

type OrderDetail struct {
	OrderDetailSeqID int    `json:"orderDetailSeqID"`
	ParticipantSeqID int    `json:"participantSeqID"`
	VehicleSeqID     int    `json:"vehicleSeqID"`
	ProductCode      string `json:"productCode"`
	Quantity         int    `json:"quantity"`
}

type AudioStatus struct {
	SerialNumber string `json:"serialNumber"`
	Enabled      bool   `json:"enabled"`
	Volume       int    `json:"volume"`
}

// RemoteResult is the outcome reported by the remote device and SIM services.
type RemoteResult struct {
	Success bool         `json:"success"`
	Errors  []string     `json:"errors,omitempty"`
	Device  *Device      `json:"device,omitempty"`
	Audio   *AudioStatus `json:"audio,omitempty"`
}

// Failure joins the errors reported by a remote service.
func (r RemoteResult) Failure() string {
	if len(r.Errors) == 0 {
		return "remote service reported failure"
	}
	return strings.Join(r.Errors, "; ")
}

type DeviceActivity struct {
	SerialNumber string `json:"serialNumber"`
	Activity     string `json:"activity"`
	UserName     string `json:"userName"`
	Details      string `json:"details,omitempty"`
	Timestamp    string `json:"timestamp,omitempty"`
}

type RecoveryResult struct {
	Success bool `json:"success"`
}

// Enrollment is the read model returned when inspecting a participant.
type Enrollment struct {
	Participant Participant        `json:"participant"`
	Device      *Device            `json:"device,omitempty"`
	Returns     []DeviceReturn     `json:"returns"`
	Orders      []ReplacementOrder `json:"orders"`
	Activities  []DeviceActivity   `json:"activities"`
}
