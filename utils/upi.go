package utils

import (
	"fmt"
	"net/url"
)

// BuildUPILink constructs a upi://pay deep link for the manual payment flow.
// Amount is in paise and rendered as rupees with two decimals, matching what
// UPI apps expect in the "am" parameter.
func BuildUPILink(address, payeeName string, amountPaise int64, note string) string {
	q := url.Values{}
	q.Set("pa", address)
	q.Set("pn", payeeName)
	q.Set("am", fmt.Sprintf("%d.%02d", amountPaise/100, amountPaise%100))
	q.Set("cu", "INR")
	q.Set("tn", note)
	return "upi://pay?" + q.Encode()
}
