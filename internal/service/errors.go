package service

import "errors"

// Dispatch and CRUD error taxonomy. Callers classify failures with
// errors.Is; services wrap these with context via fmt.Errorf("...: %w", err).
var (
	// ErrDeviceNotFound - no fireduino matches the (establishment, mac) pair.
	ErrDeviceNotFound = errors.New("device not found")

	// ErrSystem - data inconsistency or unexpected backend failure.
	// Routing failures surface as routing.ErrNoCandidates and
	// routing.ErrUnavailable; queue/delivery failures as sms.ErrSendFailed.
	ErrSystem = errors.New("system error")

	// ErrPersistenceFailed - the final incident insert failed. Fatal: at this
	// point the SMS may already be out, so the failure is reported upward.
	ErrPersistenceFailed = errors.New("persistence failed")

	// ErrNotFound - requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyRegistered - unique-key conflict (device MAC or name within
	// an establishment, username or email globally).
	ErrAlreadyRegistered = errors.New("already registered")

	// ErrInvalidCredentials - login failure.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidInviteKey - registration attempted with a wrong invite key.
	ErrInvalidInviteKey = errors.New("invalid invite key")
)
