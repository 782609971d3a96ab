package request

import (
	"errors"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/ticketlot/admin-gateway/internal/domain"
)

// accountPattern needs lookaheads (letters and digits both present),
// which the stdlib regexp engine does not support.
const accountPatternStr = `^(?=.*[A-Za-z])(?=.*\d)[A-Za-z0-9 ]{8,34}$`

var (
	accountPattern = regexp2.MustCompile(accountPatternStr, regexp2.None)

	errInvalidAccount = errors.New("ibanOrAccount must be 8-34 characters and contain both letters and digits")
)

// PaymentMethodForm is bound from the multipart body of payment-method
// writes. The logo file part travels alongside it under the name "logo".
type PaymentMethodForm struct {
	Name              string `form:"name"`
	IbanOrAccount     string `form:"ibanOrAccount"`
	AccountHolderName string `form:"accountHolderName"`
	IsActive          bool   `form:"isActive"`
}

func (req *PaymentMethodForm) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.IbanOrAccount, validation.Required),
		validation.Field(&req.AccountHolderName, validation.Required, validation.Length(2, 100)),
	)
	if err != nil {
		return err
	}

	ok, err := accountPattern.MatchString(req.IbanOrAccount)
	if err != nil || !ok {
		return errInvalidAccount
	}

	return nil
}

func (req *PaymentMethodForm) ToInput() domain.PaymentMethodInput {
	return domain.PaymentMethodInput{
		Name:              req.Name,
		IbanOrAccount:     req.IbanOrAccount,
		AccountHolderName: req.AccountHolderName,
		IsActive:          req.IsActive,
	}
}
