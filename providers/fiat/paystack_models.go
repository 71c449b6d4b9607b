package fiat

// Response is Paystack's envelope, a boolean status with a typed data field.
type Response[T any] struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}
