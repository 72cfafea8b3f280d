package order

import (
	"encoding/json"
	"io"
)

// WebhookPayload body crudo del webhook de órdenes. The simulator may send
// id and total_price as string or number, so both stay untyped until
// normalization.
// swagger:model WebhookPayload
type WebhookPayload struct {
	ID         any `json:"id" swaggertype:"string" example:"1001"`
	Customer   any `json:"customer" swaggertype:"string" example:"Alice"`
	TotalPrice any `json:"total_price" swaggertype:"number" example:"49.5"`
}

// WebhookSuccess respuesta 200 del webhook.
// swagger:model WebhookSuccess
type WebhookSuccess struct {
	Success bool          `json:"success" example:"true"`
	Message string        `json:"message" example:"Order processed successfully"`
	Order   *CreatedOrder `json:"order"`
}

// ErrorResponse respuesta de error del webhook.
// swagger:model ErrorResponse
type ErrorResponse struct {
	Error   string `json:"error" example:"Bad Request"`
	Message string `json:"message" example:"Missing required field: id"`
	Details string `json:"details,omitempty"`
}

// ListOrdersResponse respuesta de GET /orders.
// swagger:model ListOrdersResponse
type ListOrdersResponse struct {
	Orders []Order `json:"orders"`
}

// DecodeWebhookPayload reads the raw body. UseNumber keeps numeric ids and
// prices as json.Number so no precision is lost before normalization.
// Unrecognized properties are ignored.
func DecodeWebhookPayload(r io.Reader) (*WebhookPayload, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var p WebhookPayload
	if err := dec.Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}
