package entities

// Notification lives for a single request and has no identity.
type Notification struct {
	Recipient string `json:"recipient"`
	Message   string `json:"message"`
}
