package models

// User is a record served by the paywalled user-management API.
type User struct {
	ID    string `json:"id" example:"1"`                    // User ID
	Name  string `json:"name" example:"Alice"`              // Display name
	Email string `json:"email" example:"alice@example.com"` // Contact email
}
