package service

// ValuePredicate decides whether a sensitive value is acceptable for
// vaulting. The predicate is pluggable: the card service refuses values the
// predicate rejects, but the vault itself stays format-agnostic.
type ValuePredicate func(string) bool

// CardNumberShape is the default predicate: 12 to 19 digits, optionally
// grouped with single spaces or dashes, passing the Luhn checksum.
func CardNumberShape(value string) bool {
	digits := make([]int, 0, 19)
	prevSeparator := true // leading separator is as invalid as a trailing one

	for _, r := range value {
		switch {
		case r >= '0' && r <= '9':
			digits = append(digits, int(r-'0'))
			prevSeparator = false
		case r == ' ' || r == '-':
			if prevSeparator {
				return false
			}
			prevSeparator = true
		default:
			return false
		}
	}

	if prevSeparator || len(digits) < 12 || len(digits) > 19 {
		return false
	}

	return luhnChecksum(digits) == 0
}

// luhnChecksum computes the Luhn sum of the digit sequence modulo 10.
// A valid card number yields 0.
func luhnChecksum(digits []int) int {
	sum := 0
	double := false

	for i := len(digits) - 1; i >= 0; i-- {
		d := digits[i]
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}

	return sum % 10
}
