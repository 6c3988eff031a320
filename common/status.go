package common

// APIHealth describes backend status (GET /health)
type APIHealth struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
