// Package taxid validates Brazilian tax identifiers (CPF and CNPJ),
// including their mod-11 check digits.
package taxid

import "regexp"

var (
	cpfPattern  = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)
	cnpjPattern = regexp.MustCompile(`^\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}$`)
)

// cnpjWeights1 and cnpjWeights2 are the official weight tables for the first
// and second CNPJ check digits.
var (
	cnpjWeights1 = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeights2 = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// ValidCPF reports whether s is a well-formed CPF in XXX.XXX.XXX-XX notation
// with matching check digits. Sequences of a single repeated digit are
// rejected even though their checksum is arithmetically consistent.
func ValidCPF(s string) bool {
	if !cpfPattern.MatchString(s) {
		return false
	}
	digits := onlyDigits(s)
	if len(digits) != 11 || allSame(digits) {
		return false
	}

	sum := 0
	for i := 0; i < 9; i++ {
		sum += digits[i] * (10 - i)
	}
	if checkDigitCPF(sum) != digits[9] {
		return false
	}

	sum = 0
	for i := 0; i < 10; i++ {
		sum += digits[i] * (11 - i)
	}
	return checkDigitCPF(sum) == digits[10]
}

// ValidCNPJ reports whether s is a well-formed CNPJ in XX.XXX.XXX/XXXX-XX
// notation with matching check digits.
func ValidCNPJ(s string) bool {
	if !cnpjPattern.MatchString(s) {
		return false
	}
	digits := onlyDigits(s)
	if len(digits) != 14 || allSame(digits) {
		return false
	}

	sum := 0
	for i, w := range cnpjWeights1 {
		sum += digits[i] * w
	}
	if checkDigitCNPJ(sum) != digits[12] {
		return false
	}

	sum = 0
	for i, w := range cnpjWeights2 {
		sum += digits[i] * w
	}
	return checkDigitCNPJ(sum) == digits[13]
}

// checkDigitCPF: 11 - (sum mod 11), clamped to 0 when the result reaches 10.
func checkDigitCPF(sum int) int {
	d := 11 - sum%11
	if d >= 10 {
		return 0
	}
	return d
}

// checkDigitCNPJ: 0 when sum mod 11 < 2, otherwise 11 - (sum mod 11).
func checkDigitCNPJ(sum int) int {
	if sum%11 < 2 {
		return 0
	}
	return 11 - sum%11
}

func onlyDigits(s string) []int {
	digits := make([]int, 0, 14)
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits = append(digits, int(r-'0'))
		}
	}
	return digits
}

func allSame(digits []int) bool {
	for _, d := range digits[1:] {
		if d != digits[0] {
			return false
		}
	}
	return true
}
