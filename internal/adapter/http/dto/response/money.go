package response

import "github.com/shopspring/decimal"

// money renders amounts with two decimal places, e.g. "2500.00".
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func optionalMoney(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := money(*d)
	return &s
}
