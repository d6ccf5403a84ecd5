package services

import (
	"fmt"
	"strings"
)

// FormatINR renders an amount in Indian Rupee notation with two decimal
// places and Indian digit grouping: the rightmost three integer digits
// form one group, every two digits before them form another
// (e.g. ₹1,23,45,678.90). Formatting is presentation-only; formatted
// strings are never parsed back into numbers.
func FormatINR(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	intPart, decPart, _ := strings.Cut(fmt.Sprintf("%.2f", amount), ".")

	var groups []string
	if len(intPart) > 3 {
		groups = append(groups, intPart[len(intPart)-3:])
		intPart = intPart[:len(intPart)-3]
		for len(intPart) > 2 {
			groups = append(groups, intPart[len(intPart)-2:])
			intPart = intPart[:len(intPart)-2]
		}
	}
	groups = append(groups, intPart)
	for i, j := 0, len(groups)-1; i < j; i, j = i+1, j-1 {
		groups[i], groups[j] = groups[j], groups[i]
	}

	return sign + "₹" + strings.Join(groups, ",") + "." + decPart
}
