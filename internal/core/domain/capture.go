package domain

// CaptureState is the state of one interactive capture attempt.
type CaptureState string

const (
	CaptureStateIdle      CaptureState = "IDLE"
	CaptureStateCapturing CaptureState = "CAPTURING"
	CaptureStateSucceeded CaptureState = "SUCCEEDED"
	CaptureStateFailed    CaptureState = "FAILED"
)

// CaptureStatus classifies the outcome a capture attempt produced.
type CaptureStatus string

const (
	CaptureStatusKey       CaptureStatus = "KEY"
	CaptureStatusCancelled CaptureStatus = "CANCELLED"
	CaptureStatusFailed    CaptureStatus = "FAILED"
)

// CaptureResult is the transient outcome of a capture attempt. It is never
// persisted; the contained key is consumed by verification and discarded.
type CaptureResult struct {
	Status CaptureStatus `json:"status"`
	Key    string        `json:"-"` // Set only when Status is KEY
	Reason string        `json:"reason,omitempty"`
}

// CapturedKey builds a successful capture result carrying the derived key.
func CapturedKey(key string) CaptureResult {
	return CaptureResult{Status: CaptureStatusKey, Key: key}
}

// CaptureCancelled builds the result of a caller-cancelled capture.
func CaptureCancelled() CaptureResult {
	return CaptureResult{Status: CaptureStatusCancelled}
}

// CaptureFailure builds the result of a failed capture attempt.
func CaptureFailure(reason string) CaptureResult {
	return CaptureResult{Status: CaptureStatusFailed, Reason: reason}
}
