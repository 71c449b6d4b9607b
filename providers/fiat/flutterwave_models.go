package fiat

import "encoding/json"

// FlutterwaveResponse is the envelope Flutterwave wraps every payload in,
// with a string status marker rather than Paystack's boolean.
type FlutterwaveResponse[T any] struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

const flutterwaveStatusSuccess = "success"

type ResolveAccountRequest struct {
	AccountNumber string `json:"account_number"`
	AccountBank   string `json:"account_bank"`
}

// AccountInfo is the normalized resolution result shared by both providers.
type AccountInfo struct {
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
}

// BankCollection is kept opaque: the frontend consumes the provider rows
// verbatim, so re-modelling them here would only invite drift.
type BankCollection = json.RawMessage
