package models

// ValidationError is bad or missing caller input, rejected before any
// external call is made.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// PreconditionError is an assembly attempted without its required assets.
type PreconditionError struct {
	Msg string
}

func (e *PreconditionError) Error() string { return e.Msg }

// ServiceUnavailableError means a dependency process or service is
// unreachable, distinct from the dependency failing mid-run.
type ServiceUnavailableError struct {
	Msg string
}

func (e *ServiceUnavailableError) Error() string { return e.Msg }

// NetworkError is a failed remote fetch.
type NetworkError struct {
	Msg string
	Err error
}

func (e *NetworkError) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *NetworkError) Unwrap() error { return e.Err }

// SynthesisError is a non-zero exit or spawn failure of the speech engine.
// Detail carries the engine's own diagnostic text.
type SynthesisError struct {
	Detail string
}

func (e *SynthesisError) Error() string { return "speech synthesis failed: " + e.Detail }

// EncodeError is a non-zero exit or spawn failure of the encode subprocess.
// Detail carries the encoder's own diagnostic text.
type EncodeError struct {
	Detail string
}

func (e *EncodeError) Error() string { return "encode failed: " + e.Detail }

// AuthRequiredError blocks an upload until the caller completes the
// out-of-band authorization flow at AuthURL.
type AuthRequiredError struct {
	AuthURL string
}

func (e *AuthRequiredError) Error() string { return "authentication required" }

// NotFoundError is a referenced local file that is absent at call time.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string { return e.Msg }
