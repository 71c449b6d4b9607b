package apistrings

const (
	/// Verification Related Strings
	MissingFields        = "Missing required fields: account_number and bank_code"
	EmptyFields          = "Account number and bank code cannot be empty"
	InvalidAccountNumber = "Invalid account number format. Must be 10 digits."
	VerificationFailed   = "Unable to verify account with any service. Please check details and try again."
	InvalidJSON          = "Invalid JSON in request body"

	/// Core Functionality Error
	ServerError = "Internal server error during verification"

	/// Bank List Related Strings
	BankListFailed        = "Could not retrieve bank list"
	BankListConfigMissing = "Could not retrieve bank list: provider configuration missing"
)
