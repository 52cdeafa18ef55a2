package huggingface

import "fmt"

// ConfigurationError indicates that a client could not be constructed
// from the provided options, for example because no API token could be
// resolved. It is returned before any network call is attempted.
type ConfigurationError struct {
	// Message describes the configuration problem.
	Message string
}

func (e *ConfigurationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return "huggingface: " + e.Message
}

// AuthenticationError indicates that the optional token validation
// against the Hugging Face Hub failed.
type AuthenticationError struct {
	// Err is the underlying cause.
	Err error
}

func (e *AuthenticationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("huggingface: could not authenticate with the Hugging Face Hub, check the API token: %v", e.Err)
}

func (e *AuthenticationError) Unwrap() error { return e.Err }

// TransportError indicates a network-level failure (connection
// refused, timeout, DNS or TLS failure) while calling the endpoint.
// Calls are never retried.
type TransportError struct {
	// Err is the underlying cause.
	Err error
}

func (e *TransportError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("huggingface: request to inference endpoint failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError indicates that the endpoint responded but the body was
// not the JSON shape expected for the configured task.
type DecodeError struct {
	// Err is the underlying cause.
	Err error
}

func (e *DecodeError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("huggingface: malformed response from inference endpoint: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// InferenceError indicates that the endpoint itself reported an error
// payload, such as a missing or still-loading model.
type InferenceError struct {
	// Message is the error value reported by the endpoint.
	Message string
}

func (e *InferenceError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return "huggingface: error raised by inference endpoint: " + e.Message
}

// UnsupportedTaskError indicates a task outside the supported set.
type UnsupportedTaskError struct {
	// Task is the offending task value.
	Task Task
}

func (e *UnsupportedTaskError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("huggingface: invalid task %q, supported tasks are %q, %q and %q",
		string(e.Task), TaskTextGeneration, TaskText2TextGeneration, TaskSummarization)
}
