package order

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Normalize maps a validated payload to the internal record shape:
// id becomes its string form, customer passes through unchanged and
// total_price is parsed to a decimal whether it arrived as string or
// number. Pure function, the payload is not mutated.
func Normalize(p *WebhookPayload) (*NewOrder, error) {
	orderID, err := stringifyID(p.ID)
	if err != nil {
		return nil, err
	}

	name, ok := p.Customer.(string)
	if !ok {
		return nil, fmt.Errorf("customer must be a string, got %T", p.Customer)
	}

	price, err := parsePrice(p.TotalPrice)
	if err != nil {
		return nil, err
	}

	return &NewOrder{
		OrderID:      orderID,
		CustomerName: name,
		TotalPrice:   price,
	}, nil
}

func stringifyID(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case json.Number:
		return t.String(), nil
	default:
		return "", fmt.Errorf("id must be a string or number, got %T", v)
	}
}

// parsePrice rejects anything that does not parse as a number instead of
// guessing a zero value; callers surface that as a processing failure.
func parsePrice(v any) (decimal.Decimal, error) {
	switch t := v.(type) {
	case json.Number:
		return decimal.NewFromString(t.String())
	case string:
		d, err := decimal.NewFromString(t)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("total_price %q is not numeric", t)
		}
		return d, nil
	default:
		return decimal.Decimal{}, fmt.Errorf("total_price must be a string or number, got %T", v)
	}
}
