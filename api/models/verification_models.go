package models

import "encoding/json"

// VerifyAccountRequest uses pointers so absent keys can be told apart from
// empty values, the two produce different errors.
type VerifyAccountRequest struct {
	AccountNumber *string `json:"account_number"`
	BankCode      *string `json:"bank_code"`
}

// VerifyAccountResponse is the contract the SPA consumes, so field names are
// fixed.
type VerifyAccountResponse struct {
	Success     bool   `json:"success"`
	AccountName string `json:"accountName"`
	Source      string `json:"source"`
}

type BankListResponse struct {
	Success bool            `json:"success"`
	Banks   json.RawMessage `json:"banks"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func NewErrorResponse(msg string) *ErrorResponse {
	return &ErrorResponse{
		Success: false,
		Error:   msg,
	}
}
