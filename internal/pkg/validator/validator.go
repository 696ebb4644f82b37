package validator

import "regexp"

var (
	nonDigits  = regexp.MustCompile(`[^\d]`)
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,6}$`)
)

// allSameDigits reports whether every character equals the first one.
// Documents like 111.111.111-11 pass the checksum but are not valid.
func allSameDigits(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}

// NormalizeCPF strips formatting characters from a CPF
func NormalizeCPF(cpf string) string {
	return nonDigits.ReplaceAllString(cpf, "")
}

// NormalizeCNPJ strips formatting characters from a CNPJ
func NormalizeCNPJ(cnpj string) string {
	return nonDigits.ReplaceAllString(cnpj, "")
}

// IsValidCPF validates a Brazilian CPF, with or without formatting
func IsValidCPF(cpf string) bool {
	clean := NormalizeCPF(cpf)

	if len(clean) != 11 {
		return false
	}

	if allSameDigits(clean) {
		return false
	}

	digits := make([]int, 11)
	for i := 0; i < 11; i++ {
		if clean[i] < '0' || clean[i] > '9' {
			return false
		}
		digits[i] = int(clean[i] - '0')
	}

	sum := 0
	for i := 0; i < 9; i++ {
		sum += digits[i] * (10 - i)
	}
	if digits[9] != checkDigit(sum) {
		return false
	}

	sum = 0
	for i := 0; i < 10; i++ {
		sum += digits[i] * (11 - i)
	}
	return digits[10] == checkDigit(sum)
}

// IsValidCNPJ validates a Brazilian CNPJ, with or without formatting
func IsValidCNPJ(cnpj string) bool {
	clean := NormalizeCNPJ(cnpj)

	if len(clean) != 14 {
		return false
	}

	if allSameDigits(clean) {
		return false
	}

	digits := make([]int, 14)
	for i := 0; i < 14; i++ {
		if clean[i] < '0' || clean[i] > '9' {
			return false
		}
		digits[i] = int(clean[i] - '0')
	}

	sum := 0
	weight := 2
	for i := 11; i >= 0; i-- {
		sum += digits[i] * weight
		if weight == 9 {
			weight = 2
		} else {
			weight++
		}
	}
	if digits[12] != checkDigit(sum) {
		return false
	}

	sum = 0
	weight = 2
	for i := 12; i >= 0; i-- {
		sum += digits[i] * weight
		if weight == 9 {
			weight = 2
		} else {
			weight++
		}
	}
	return digits[13] == checkDigit(sum)
}

// IsValidEmail validates an email address
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func checkDigit(sum int) int {
	remainder := sum % 11
	if remainder < 2 {
		return 0
	}
	return 11 - remainder
}
