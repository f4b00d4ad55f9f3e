package types

type MarkAbandonedRequest struct {
	ParticipantSequenceID int    `json:"participantSequenceId" validate:"required,gt=0"`
	DeviceSerialNumber    string `json:"deviceSerialNumber"`
}

type MarkDefectiveRequest struct {
	ParticipantSequenceID int    `json:"participantSequenceId" validate:"required,gt=0"`
	DeviceSerialNumber    string `json:"deviceSerialNumber"`
}

type ReplaceDeviceRequest struct {
	ParticipantSequenceID int `json:"participantSequenceId" validate:"required,gt=0"`
}

type SwapDeviceRequest struct {
	SourceParticipantSequenceID      int `json:"sourceParticipantSequenceId" validate:"required,gt=0"`
	DestinationParticipantSequenceID int `json:"destinationParticipantSequenceId" validate:"required,gt=0"`
}

type ResetDeviceRequest struct {
	ParticipantSequenceID int `json:"participantSequenceId" validate:"required,gt=0"`
}

type OptOutParticipantRequest struct {
	ParticipantSequenceID int    `json:"participantSequenceId" validate:"required,gt=0"`
	DeviceSerialNumber    string `json:"deviceSerialNumber,omitempty"`
}

type SetAudioRequest struct {
	SerialNumber string `json:"serialNumber" validate:"required"`
	Enabled      bool   `json:"enabled"`
}

type UpdateAudioRequest struct {
	SerialNumber string `json:"serialNumber" validate:"required"`
	Volume       int    `json:"volume" validate:"gte=0,lte=10"`
}

type ActivateSimRequest struct {
	SerialNumber string `json:"serialNumber" validate:"required"`
}
