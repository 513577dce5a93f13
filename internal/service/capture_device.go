package service

import (
	"context"

	"irispay/internal/core/ports"
	"irispay/pkg/apperror"
)

// NoCaptureDevice implements ports.CaptureDevice for hosts without a
// physical sensor. Acquire always reports DeviceUnavailable, which callers
// treat as the signal to continue in degraded mode.
type NoCaptureDevice struct{}

// NewNoCaptureDevice creates the device stand-in for sensorless hosts.
func NewNoCaptureDevice() *NoCaptureDevice {
	return &NoCaptureDevice{}
}

// Acquire always fails with DeviceUnavailable.
func (d *NoCaptureDevice) Acquire(ctx context.Context) (ports.DeviceHandle, error) {
	return nil, apperror.ErrDeviceUnavailable()
}

// StaticCaptureDevice implements ports.CaptureDevice over fixed seed
// material. Used in development and tests to stand in for a real sensor.
type StaticCaptureDevice struct {
	seed []byte
}

// NewStaticCaptureDevice creates a device that always reads the given seed.
func NewStaticCaptureDevice(seed []byte) *StaticCaptureDevice {
	return &StaticCaptureDevice{seed: seed}
}

// Acquire returns a handle over the fixed seed.
func (d *StaticCaptureDevice) Acquire(ctx context.Context) (ports.DeviceHandle, error) {
	return &staticHandle{seed: d.seed}, nil
}

type staticHandle struct {
	seed []byte
}

func (h *staticHandle) Read(ctx context.Context) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	out := make([]byte, len(h.seed))
	copy(out, h.seed)
	return out, nil
}

func (h *staticHandle) Release() {}
