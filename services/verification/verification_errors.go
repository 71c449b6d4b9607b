package verification

import "fmt"

var (
	ErrMissingFields         = fmt.Errorf("missing required fields: account_number and bank_code")
	ErrEmptyFields           = fmt.Errorf("account number and bank code cannot be empty")
	ErrInvalidAccountNumber  = fmt.Errorf("invalid account number format, must be 10 digits")
	ErrVerificationFailed    = fmt.Errorf("unable to verify account with any service, please check details and try again")
	ErrBankListUnavailable   = fmt.Errorf("could not retrieve bank list")
	ErrBankListConfigMissing = fmt.Errorf("could not retrieve bank list: provider configuration missing")
)

// IsBadRequest reports whether err is a caller error: those are returned
// verbatim and nothing downstream is ever attempted for them.
func IsBadRequest(err error) bool {
	switch err {
	case ErrMissingFields, ErrEmptyFields, ErrInvalidAccountNumber:
		return true
	}
	return false
}
