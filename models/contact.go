package models

// ContactMessage is a visitor-submitted contact form payload. There is no
// delivery channel yet; submissions are logged and acknowledged.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}
