package generate

import (
	"fmt"
	"regexp"
	"strconv"
)

var (
	percentRe  = regexp.MustCompile(`(\d+)%`)
	nonPriceRe = regexp.MustCompile(`[^0-9.]`)
)

// discountHint precomputes the discounted price when the promotion contains
// a percentage and the product price parses to a number. This keeps the
// arithmetic out of the model's hands. Returns "" when either side fails to
// parse; the hint is then omitted silently.
func discountHint(promotion, price string) string {
	match := percentRe.FindStringSubmatch(promotion)
	if match == nil || price == "" {
		return ""
	}
	percent, err := strconv.Atoi(match[1])
	if err != nil {
		return ""
	}
	priceNum, err := strconv.ParseFloat(nonPriceRe.ReplaceAllString(price, ""), 64)
	if err != nil {
		return ""
	}
	discounted := priceNum * (1 - float64(percent)/100)
	return fmt.Sprintf("Original: %s → Sale: $%.2f", price, discounted)
}
