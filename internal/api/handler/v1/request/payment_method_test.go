package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentMethodForm_Validate(t *testing.T) {
	valid := PaymentMethodForm{
		Name:              "Main Bank",
		IbanOrAccount:     "DE0012345678",
		AccountHolderName: "Ticketlot GmbH",
	}

	t.Run("valid form passes", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	tests := []struct {
		name   string
		mutate func(*PaymentMethodForm)
	}{
		{"missing name", func(f *PaymentMethodForm) { f.Name = "" }},
		{"account with only digits", func(f *PaymentMethodForm) { f.IbanOrAccount = "123456789" }},
		{"account with only letters", func(f *PaymentMethodForm) { f.IbanOrAccount = "ABCDEFGHIJ" }},
		{"account too short", func(f *PaymentMethodForm) { f.IbanOrAccount = "DE12" }},
		{"account with symbols", func(f *PaymentMethodForm) { f.IbanOrAccount = "DE00-1234-5678" }},
		{"missing holder", func(f *PaymentMethodForm) { f.AccountHolderName = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := valid
			tt.mutate(&form)

			assert.Error(t, form.Validate())
		})
	}
}
