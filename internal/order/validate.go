package order

import "encoding/json"

// Validate applies the required-field contract in a fixed order:
// id, then customer, then total_price. It stops at the first failure, so a
// payload missing several fields reports only the earliest one.
//
// id and customer must be truthy (empty strings and zero ids count as
// missing); total_price only has to be present and non-null, since 0 is a
// valid total.
func Validate(p *WebhookPayload) error {
	if !truthy(p.ID) {
		return &MissingFieldError{Field: "id"}
	}
	if !truthy(p.Customer) {
		return &MissingFieldError{Field: "customer"}
	}
	if p.TotalPrice == nil {
		return &MissingFieldError{Field: "total_price"}
	}
	return nil
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case json.Number:
		f, err := t.Float64()
		// un número que no cabe en float64 sigue siendo truthy
		return err != nil || f != 0
	case bool:
		return t
	default:
		// objects and arrays
		return true
	}
}
