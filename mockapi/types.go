package mockapi

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	projectHandler  projectHandler
	skillHandler    skillHandler
	settingsHandler settingsHandler
	authHandler     authHandler
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Status  string `json:"status"`
	Field   string `json:"field,omitempty"`
	Cause   string `json:"cause,omitempty"`
}

// MessageResponse is the body of replies that carry no document.
type MessageResponse struct {
	Message string `json:"message"`
}
