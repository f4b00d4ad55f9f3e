package types

import (
	"encoding/json"
	"fmt"
)

type MessageCode string

const (
	Error             MessageCode = "Error"
	ErrorCode         MessageCode = "ErrorCode"
	ErrorDetails      MessageCode = "ErrorDetails"
	Handled           MessageCode = "Handled"
	StatusDescription MessageCode = "StatusDescription"
	Success           MessageCode = "Success"
)

// Stable error codes rendered by the operations UI.
const (
	CodeFailedToUpdateDevice              = "FailedToUpdateDevice"
	CodeFailedToDeactivateSim             = "FailedToDeactivateSim"
	CodeFailedToActivateSim               = "FailedToActivateSim"
	CodeFailedToResetDevice               = "FailedToResetDevice"
	CodeFailedToGetAudio                  = "FailedToGetAudio"
	CodeFailedToUpdateAudio               = "FailedToUpdateAudio"
	CodeFailedToLogAudioActivity          = "FailedToLogAudioActivity"
	CodeDeviceNotFound                    = "DeviceNotFound"
	CodeDeviceAlreadyAbandoned            = "DeviceAlreadyAbandoned"
	CodeDeviceAlreadyDefective            = "DeviceAlreadyDefective"
	CodeParticipantNotFound               = "ParticipantNotFound"
	CodeParticipantHasNoDevice            = "ParticipantHasNoDevice"
	CodeSwapDeviceParticipantsMustDiffer  = "SwapDeviceParticipantsMustDiffer"
	CodeSwapDeviceRequiresAssignedDevices = "SwapDeviceRequiresAssignedDevices"
	CodeSwapDeviceNotAllowed              = "SwapDeviceNotAllowed"
	CodeDeviceHasNoSim                    = "DeviceHasNoSim"
)

const (
	StatusDeviceReplacementInitiated = "Device replacement initiated"
	StatusDeviceMarkedAbandoned      = "Device marked as abandoned"
	StatusDeviceMarkedDefective      = "Device marked as defective"
	StatusDevicesSwapped             = "Devices swapped"
	StatusDeviceResetInitiated       = "Device reset initiated"
	StatusAudioUpdated               = "Audio updated"
	StatusSimActivated               = "SIM activated"
	StatusParticipantOptedOut        = "Participant opted out"
	StatusParticipantAlreadyOptedOut = "Participant already opted out"
)

type Messages map[MessageCode]any

// Resource is the result envelope returned by every lifecycle and enrollment operation.
// Soft failures are recorded as messages, Handled marks outcomes the caller expects.
type Resource struct {
	Messages Messages `json:"messages"`
	Data     any      `json:"data,omitempty"`
}

func NewResource() *Resource {
	return &Resource{Messages: Messages{}}
}

func (r *Resource) Add(code MessageCode, value any) {
	if r.Messages == nil {
		r.Messages = Messages{}
	}
	r.Messages[code] = value
}

func (r *Resource) AddError(code, details string) {
	r.Add(Error, true)
	r.Add(ErrorCode, code)
	r.Add(ErrorDetails, details)
}

func (r *Resource) AddHandledError(code, details string) {
	r.AddError(code, details)
	r.Add(Handled, true)
}

func (r *Resource) SetStatus(description string) {
	r.Add(StatusDescription, description)
}

func (r *Resource) SetHandledStatus(description string) {
	r.Add(Handled, true)
	r.SetStatus(description)
}

func (r *Resource) Get(code MessageCode) (any, bool) {
	v, ok := r.Messages[code]
	return v, ok
}

func (r *Resource) Has(code MessageCode) bool {
	_, ok := r.Messages[code]
	return ok
}

// String returns the message stored under code formatted as a string, or "" if absent.
func (r *Resource) String(code MessageCode) string {
	v, ok := r.Messages[code]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func (r *Resource) IsHandled() bool {
	b, _ := r.Messages[Handled].(bool)
	return b
}

func (r *Resource) HasErrors() bool {
	if b, ok := r.Messages[Error].(bool); ok && b {
		return true
	}
	return r.Has(ErrorCode)
}

func (r *Resource) UnmarshalJSON(b []byte) error {
	raw := struct {
		Messages map[string]any `json:"messages"`
		Data     json.RawMessage `json:"data,omitempty"`
	}{}

	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	r.Messages = Messages{}
	for k, v := range raw.Messages {
		r.Messages[MessageCode(k)] = v
	}

	if len(raw.Data) > 0 {
		r.Data = raw.Data
	}

	return nil
}
