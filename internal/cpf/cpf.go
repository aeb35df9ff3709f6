// Package cpf validates Brazilian CPF numbers by their two check digits.
package cpf

// Normalize strips every non-digit rune.
func Normalize(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			out = append(out, r)
		}
	}
	return string(out)
}

// IsValid reports whether s is a valid CPF. Formatting characters are
// ignored; after stripping them the number must be exactly 11 digits, must
// not be a run of one repeated digit, and both check digits must match the
// weighted checksum of the preceding digits.
func IsValid(s string) bool {
	digits := Normalize(s)
	if len(digits) != 11 {
		return false
	}

	repeated := true
	for i := 1; i < 11; i++ {
		if digits[i] != digits[0] {
			repeated = false
			break
		}
	}
	if repeated {
		return false
	}

	d1 := checkDigit(digits[:9], 10)
	d2 := checkDigit(digits[:9]+string(rune('0'+d1)), 11)

	return int(digits[9]-'0') == d1 && int(digits[10]-'0') == d2
}

// checkDigit computes a weighted sum of digits with descending weights
// starting at firstWeight, mod 11. A remainder below 2 yields 0, otherwise
// 11 minus the remainder.
func checkDigit(digits string, firstWeight int) int {
	sum := 0
	for i := 0; i < len(digits); i++ {
		sum += int(digits[i]-'0') * (firstWeight - i)
	}
	r := sum % 11
	if r < 2 {
		return 0
	}
	return 11 - r
}
