package domain

// Email is an outbound message. HTML is required; Text is the optional
// plain-text alternative.
type Email struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// DeliveryError is returned by mail transports. Code is a short
// transport-specific reason (for example "SMTP AUTH failed") that is safe to
// show to API clients.
type DeliveryError struct {
	Code string
	Err  error
}

func (e *DeliveryError) Error() string { return e.Err.Error() }

func (e *DeliveryError) Unwrap() error { return e.Err }
