package types

import (
	"errors"
	"fmt"
)

var (
	ErrParticipantNotFound = errors.New("participant not found")
	ErrDeviceNotFound      = errors.New("device not found")
	ErrVehicleNotFound     = errors.New("vehicle not found")
)

// DeviceNotFoundError is returned when a device that must exist cannot be resolved
// from its serial number.
type DeviceNotFoundError struct {
	SerialNumber string
}

func (e DeviceNotFoundError) Error() string {
	return fmt.Sprintf("Device not found for serial number %s", e.SerialNumber)
}

func (e DeviceNotFoundError) Is(target error) bool {
	return target == ErrDeviceNotFound
}

// TopicMessage is a message that can be published on the message bus.
type TopicMessage interface {
	ContentType() string
	TopicName() string
}
