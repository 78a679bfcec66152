package email

// Email is an outgoing message. HTMLBody, when set, is attached as the
// HTML alternative to the plain-text Body.
type Email struct {
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}
