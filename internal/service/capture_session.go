package service

import (
	"context"
	"sync"
	"time"

	"irispay/internal/core/domain"
	"irispay/internal/core/ports"
	"irispay/pkg/apperror"
)

// CaptureSession models one interactive biometric-capture attempt:
// Idle -> Capturing -> {Succeeded, Failed}. Failed and Idle allow a manual
// return to Idle for a retry; Succeeded ends the attempt. A failed capture
// is local to the session and never touches ledger or identity state.
type CaptureSession struct {
	mu       sync.Mutex
	state    domain.CaptureState
	device   ports.CaptureDevice
	deriver  ports.KeyDeriver
	handle   ports.DeviceHandle // nil while degraded or before Begin
	degraded bool
}

// NewCaptureSession creates an idle session over the given device and
// key-derivation capability.
func NewCaptureSession(device ports.CaptureDevice, deriver ports.KeyDeriver) *CaptureSession {
	return &CaptureSession{
		state:   domain.CaptureStateIdle,
		device:  device,
		deriver: deriver,
	}
}

// Begin transitions Idle -> Capturing, acquiring the capture device.
// Device absence is not fatal: the session continues in degraded mode and
// Submit synthesizes seed material instead of reading the sensor.
func (s *CaptureSession) Begin(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != domain.CaptureStateIdle {
		return apperror.ErrInvalidState(string(s.state))
	}

	handle, err := s.device.Acquire(ctx)
	if err != nil {
		s.degraded = true
	} else {
		s.handle = handle
		s.degraded = false
	}
	s.state = domain.CaptureStateCapturing
	return nil
}

// Degraded reports whether the session runs without a capture device.
func (s *CaptureSession) Degraded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.degraded
}

// Submit derives the biometric key and transitions Capturing -> Succeeded.
// With no explicit seed it reads the device (or synthesizes material in
// degraded mode); a device read error transitions to Failed instead. Any
// acquired device is released either way.
func (s *CaptureSession) Submit(ctx context.Context, seed []byte) (domain.CaptureResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != domain.CaptureStateCapturing {
		return domain.CaptureResult{}, apperror.ErrInvalidState(string(s.state))
	}

	if len(seed) == 0 {
		if s.handle != nil {
			read, err := s.handle.Read(ctx)
			if err != nil {
				s.release()
				s.state = domain.CaptureStateFailed
				return domain.CaptureFailure(err.Error()), nil
			}
			seed = read
		} else {
			seed = randomSeed()
		}
	}

	key := s.deriver.Derive(seed, time.Now().UTC())
	s.release()
	s.state = domain.CaptureStateSucceeded
	return domain.CapturedKey(key), nil
}

// Cancel returns any non-terminal state to Idle, releasing the device.
// Always succeeds and is idempotent; a Succeeded session is left as is.
func (s *CaptureSession) Cancel() domain.CaptureResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != domain.CaptureStateSucceeded {
		s.release()
		s.degraded = false
		s.state = domain.CaptureStateIdle
	}
	return domain.CaptureCancelled()
}

// State returns the session's current state.
func (s *CaptureSession) State() domain.CaptureState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// release frees the device handle if one was acquired. Caller holds s.mu.
func (s *CaptureSession) release() {
	if s.handle != nil {
		s.handle.Release()
		s.handle = nil
	}
}
