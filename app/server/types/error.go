package types

type ErrorMessage struct {
	Message *string `json:"message,omitempty"`
}
