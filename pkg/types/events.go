package types

import "time"

type DeviceAbandoned struct {
	DeviceSeqID      int       `json:"deviceSeqID"`
	SerialNumber     string    `json:"serialNumber"`
	ParticipantSeqID int       `json:"participantSeqID"`
	User             string    `json:"user,omitempty"`
	Timestamp        time.Time `json:"timestamp"`
}

func (d *DeviceAbandoned) ContentType() string {
	return "application/json"
}
func (d *DeviceAbandoned) TopicName() string {
	return "device.abandoned"
}

type DeviceDefective struct {
	DeviceSeqID      int       `json:"deviceSeqID"`
	SerialNumber     string    `json:"serialNumber"`
	ParticipantSeqID int       `json:"participantSeqID"`
	User             string    `json:"user,omitempty"`
	Timestamp        time.Time `json:"timestamp"`
}

func (d *DeviceDefective) ContentType() string {
	return "application/json"
}
func (d *DeviceDefective) TopicName() string {
	return "device.defective"
}

type DeviceReplaced struct {
	DeviceSeqID      int       `json:"deviceSeqID"`
	SerialNumber     string    `json:"serialNumber"`
	ParticipantSeqID int       `json:"participantSeqID"`
	OrderNumber      string    `json:"orderNumber"`
	User             string    `json:"user,omitempty"`
	Timestamp        time.Time `json:"timestamp"`
}

func (d *DeviceReplaced) ContentType() string {
	return "application/json"
}
func (d *DeviceReplaced) TopicName() string {
	return "device.replaced"
}

type DevicesSwapped struct {
	SourceParticipantSeqID      int       `json:"sourceParticipantSeqID"`
	DestinationParticipantSeqID int       `json:"destinationParticipantSeqID"`
	User                        string    `json:"user,omitempty"`
	Timestamp                   time.Time `json:"timestamp"`
}

func (d *DevicesSwapped) ContentType() string {
	return "application/json"
}
func (d *DevicesSwapped) TopicName() string {
	return "device.swapped"
}

type ParticipantOptedOut struct {
	ParticipantSeqID int       `json:"participantSeqID"`
	SerialNumber     string    `json:"serialNumber,omitempty"`
	User             string    `json:"user,omitempty"`
	Timestamp        time.Time `json:"timestamp"`
}

func (p *ParticipantOptedOut) ContentType() string {
	return "application/json"
}
func (p *ParticipantOptedOut) TopicName() string {
	return "participant.optedOut"
}

// DeviceReturned is received from the warehouse when a device has physically arrived.
type DeviceReturned struct {
	SerialNumber     string    `json:"serialNumber"`
	DeviceSeqID      int       `json:"deviceSeqID"`
	ParticipantSeqID int       `json:"participantSeqID"`
	ReceivedAt       time.Time `json:"receivedAt"`
}

func (d *DeviceReturned) ContentType() string {
	return "application/json"
}
func (d *DeviceReturned) TopicName() string {
	return "device.returned"
}
