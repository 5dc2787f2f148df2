// Package points implements the additive scoring rules applied to a
// validated receipt. Calculation is pure and deterministic: the same
// receipt always yields the same total, and no rule depends on another.
package points

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/ridwanfathin/receipt-points-service/internal/domain"
)

const (
	roundDollarBonus     = 50
	quarterMultipleBonus = 25
	itemPairBonus        = 5
	oddDayBonus          = 6
	afternoonBonus       = 10

	afternoonStartMinute = 14 * 60
	afternoonEndMinute   = 16 * 60
)

var (
	quarter         = decimal.New(25, -2) // 0.25
	descriptionRate = decimal.New(2, -1)  // 0.20
)

// Calculate returns the point total for a validated receipt.
//
// Rules, all additive:
//  1. one point per alphanumeric character in the retailer name
//  2. 50 points for a round-dollar total
//  3. 25 points when the total is a multiple of 0.25
//  4. 5 points for every two items
//  5. ceil(price * 0.2) points per item whose trimmed description length
//     is a multiple of three
//  6. reserved, awards nothing
//  7. 6 points when the purchase day of month is odd
//  8. 10 points when the purchase time is strictly between 14:00 and 16:00
//
// Monetary rules run on exact decimal values, so totals near a 0.25
// boundary are never misclassified by float rounding.
func Calculate(r *domain.Receipt) int64 {
	var pts int64

	for _, c := range r.Retailer {
		if unicode.IsLetter(c) || unicode.IsDigit(c) {
			pts++
		}
	}

	if r.Total.IsInteger() {
		pts += roundDollarBonus
	}
	if r.Total.Mod(quarter).IsZero() {
		pts += quarterMultipleBonus
	}

	pts += int64(len(r.Items)/2) * itemPairBonus

	for _, item := range r.Items {
		trimmed := strings.TrimSpace(item.ShortDescription)
		if len([]rune(trimmed))%3 == 0 {
			pts += item.Price.Mul(descriptionRate).Ceil().IntPart()
		}
	}

	if r.PurchaseDate.Day()%2 == 1 {
		pts += oddDayBonus
	}

	// Exclusive on both ends: exactly 14:00 or 16:00 does not qualify.
	minute := r.PurchaseTime.Hour()*60 + r.PurchaseTime.Minute()
	if minute > afternoonStartMinute && minute < afternoonEndMinute {
		pts += afternoonBonus
	}

	return pts
}
