package domain

import "time"

// PaymentMethod is a bank account or wallet buyers can pay into.
type PaymentMethod struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	IbanOrAccount     string    `json:"ibanOrAccount"`
	AccountHolderName string    `json:"accountHolderName"`
	LogoURL           string    `json:"logoUrl"`
	IsActive          bool      `json:"isActive"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// PaymentMethodInput carries the writable fields. The logo travels
// separately as a multipart file part named "logo".
type PaymentMethodInput struct {
	Name              string
	IbanOrAccount     string
	AccountHolderName string
	IsActive          bool
}
