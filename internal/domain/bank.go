package domain

type BankDetailsRequest struct {
	AccountNumber string `json:"account_number" validate:"required,numeric,min=6,max=20"`
	IFSC          string `json:"ifsc" validate:"required,len=11,alphanum"`
	AccountHolder string `json:"account_holder" validate:"required,max=120"`
}

type BankVerificationResult struct {
	Verified         bool   `json:"verified"`
	NameMatch        bool   `json:"name_match"`
	RegisteredName   string `json:"registered_name"`
	Reference        string `json:"reference"`
	PaymentAccountID string `json:"payment_account_id"`
}
