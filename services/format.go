package services

import (
	"math"
	"strconv"
	"strings"
)

// FormatINR formats an amount in rupees with Indian digit grouping: the last
// three digits form one group and every two digits after that another, as in
// ₹1,23,45,678.90. Two decimals are always shown.
func FormatINR(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	whole, frac, _ := strings.Cut(strconv.FormatFloat(amount, 'f', 2, 64), ".")
	return sign + "₹" + applyIndianGrouping(whole) + "." + frac
}

// applyIndianGrouping inserts commas into a string of digits.
func applyIndianGrouping(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(append(groups, tail), ",")
}

// AmountInWords spells a rupee amount in Indian English, rounded to the
// nearest rupee: 1416 → "One Thousand Four Hundred and Sixteen Rupees Only".
func AmountInWords(amount float64) string {
	if amount < 0 {
		return "Minus " + AmountInWords(-amount)
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount >= maxSpelledAmount {
		return strconv.FormatFloat(math.Round(amount), 'f', 0, 64) + " Rupees Only"
	}
	rupees := int64(math.Round(amount))
	if rupees == 0 {
		return "Zero Rupees Only"
	}
	return spellIndian(rupees) + " Rupees Only"
}

// maxSpelledAmount keeps the rupee count inside int64.
const maxSpelledAmount = 1e18

var indianScales = []struct {
	size int64
	name string
}{
	{10000000, "Crore"},
	{100000, "Lakh"},
	{1000, "Thousand"},
}

func spellIndian(n int64) string {
	var parts []string
	for _, s := range indianScales {
		if n >= s.size {
			count := n / s.size
			name := s.name
			if count > 1 && s.size != 1000 {
				name += "s"
			}
			words := spellIndianUnder1000(count)
			if count >= 1000 {
				// Only crores get here; the count is spelled in full.
				words = spellIndian(count)
			}
			parts = append(parts, words+" "+name)
			n %= s.size
		}
	}
	if rest := spellIndianUnder1000(n); rest != "" {
		if len(parts) > 0 && n < 100 {
			rest = "and " + rest
		}
		parts = append(parts, rest)
	}
	return strings.Join(parts, " ")
}

func spellIndianUnder1000(n int64) string {
	var parts []string
	if n >= 100 {
		parts = append(parts, smallNumbers[n/100]+" Hundred")
		n %= 100
	}
	if n > 0 {
		word := ""
		if n < 20 {
			word = smallNumbers[n]
		} else {
			word = tensNames[n/10]
			if n%10 != 0 {
				word += " " + smallNumbers[n%10]
			}
		}
		if len(parts) > 0 {
			word = "and " + word
		}
		parts = append(parts, word)
	}
	return strings.Join(parts, " ")
}

var smallNumbers = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tensNames = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}
