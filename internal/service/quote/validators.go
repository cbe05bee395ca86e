package quote

import "github.com/shopspring/decimal"

func isValidPrice(price decimal.Decimal) bool {
	return price.IsPositive()
}
