package validator

import "testing"

func TestIsValidCPF(t *testing.T) {
	valid := []string{
		"123.456.789-09",
		"12345678909",
	}
	for _, cpf := range valid {
		if !IsValidCPF(cpf) {
			t.Errorf("expected %s to be valid", cpf)
		}
	}

	invalid := []string{
		"",
		"111.111.111-11",
		"222.222.222-22",
		"123.456.789-0",   // 10 digits
		"123.456.789-012", // 12 digits
		"123.456.789-10",  // wrong check digit
		"123.456.789-0a",
	}
	for _, cpf := range invalid {
		if IsValidCPF(cpf) {
			t.Errorf("expected %s to be invalid", cpf)
		}
	}
}

func TestNormalizeCPF(t *testing.T) {
	if got := NormalizeCPF("123.456.789-09"); got != "12345678909" {
		t.Errorf("NormalizeCPF = %s", got)
	}
	if got := NormalizeCPF("123 456 789 09"); got != "12345678909" {
		t.Errorf("NormalizeCPF = %s", got)
	}
}

func TestIsValidCNPJ(t *testing.T) {
	valid := []string{
		"11.222.333/0001-81",
		"11222333000181",
	}
	for _, cnpj := range valid {
		if !IsValidCNPJ(cnpj) {
			t.Errorf("expected %s to be valid", cnpj)
		}
	}

	invalid := []string{
		"",
		"11.111.111/1111-11",
		"11.222.333/0001-4",   // 13 digits
		"11.222.333/0001-444", // 15 digits
		"11.222.333/0001-45",  // wrong check digit
		"ab.cde.fgh/ijkl-mn",
	}
	for _, cnpj := range invalid {
		if IsValidCNPJ(cnpj) {
			t.Errorf("expected %s to be invalid", cnpj)
		}
	}
}

func TestNormalizeCNPJ(t *testing.T) {
	if got := NormalizeCNPJ("11.222.333/0001-44"); got != "11222333000144" {
		t.Errorf("NormalizeCNPJ = %s", got)
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"user@example.com", "user.name@example.com", "user@example.co.uk"}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("expected %s to be valid", email)
		}
	}

	invalid := []string{"", "user@", "@example.com", "user.example.com", "user@example"}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("expected %s to be invalid", email)
		}
	}
}
