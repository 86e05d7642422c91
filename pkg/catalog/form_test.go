package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForm_Parse(t *testing.T) {
	testCases := []struct {
		name     string
		form     Form
		expected ProductFields
		wantErr  bool
	}{
		{
			name:     "valid form",
			form:     Form{Name: "Rice", Weight: "1.5", Price: "250"},
			expected: ProductFields{Name: "Rice", Weight: 1.5, Price: 250},
		},
		{
			name:     "name and numbers are trimmed",
			form:     Form{Name: "  Rice  ", Weight: " 1.5 ", Price: " 250 "},
			expected: ProductFields{Name: "Rice", Weight: 1.5, Price: 250},
		},
		{
			name:     "zero weight and price are valid",
			form:     Form{Name: "Sample", Weight: "0", Price: "0"},
			expected: ProductFields{Name: "Sample", Weight: 0, Price: 0},
		},
		{
			name:    "empty name",
			form:    Form{Name: "   ", Weight: "1", Price: "10"},
			wantErr: true,
		},
		{
			name:    "weight is not a number",
			form:    Form{Name: "Rice", Weight: "heavy", Price: "10"},
			wantErr: true,
		},
		{
			name:    "price is empty",
			form:    Form{Name: "Rice", Weight: "1", Price: ""},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fields, err := tc.form.Parse()
			if tc.wantErr {
				require.ErrorIs(t, err, ErrInvalidForm)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, fields)
		})
	}
}

func TestFormFromProduct(t *testing.T) {
	form := FormFromProduct(Product{Name: "Rice", Weight: 1.5, Price: 59900})
	assert.Equal(t, Form{Name: "Rice", Weight: "1.5", Price: "59900"}, form)
}
