package taxid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidCPF(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid with trailing zero check digit", "123.456.789-09", true},
		{"valid classic sequence", "111.444.777-35", true},
		{"wrong check digits", "123.456.789-00", false},
		{"all identical digits", "111.111.111-11", false},
		{"unformatted digits rejected", "12345678909", false},
		{"too short", "123.456.78-09", false},
		{"empty", "", false},
		{"letters", "abc.def.ghi-jk", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidCPF(tt.input))
		})
	}
}

func TestValidCNPJ(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid headquarters number", "11.222.333/0001-81", true},
		{"wrong check digits", "11.222.333/0001-00", false},
		{"all identical digits", "11.111.111/1111-11", false},
		{"unformatted digits rejected", "11222333000181", false},
		{"cpf shape is not a cnpj", "123.456.789-09", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidCNPJ(tt.input))
		})
	}
}

// The second CPF check digit folds 10 to 0; 123.456.789-09 exercises the fold
// on the first digit. This guards the clamp against an off-by-one rewrite.
func TestCPFCheckDigitClamp(t *testing.T) {
	assert.Equal(t, 0, checkDigitCPF(210))
	assert.Equal(t, 9, checkDigitCPF(255))
	assert.Equal(t, 0, checkDigitCNPJ(110))
	assert.Equal(t, 8, checkDigitCNPJ(102))
}
