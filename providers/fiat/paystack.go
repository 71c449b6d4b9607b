package fiat

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/miles-app/miles-backend/providers"
	"github.com/miles-app/miles-backend/utils"
)

type PaystackProvider struct {
	providers.BaseProvider
	loadConfig func() (*PaystackConfig, error)
}

type PaystackConfig struct {
	SecretKey string `mapstructure:"PAYSTACK_SECRET_KEY"`
	BaseURL   string `mapstructure:"PAYSTACK_BASE_URL"`
}

const defaultPaystackBaseURL = "https://api.paystack.co/"

func loadPaystackConfig() (*PaystackConfig, error) {
	var c PaystackConfig

	err := utils.LoadCustomConfig(utils.EnvPath, &c)
	if err != nil {
		return nil, err
	}

	if c.BaseURL == "" {
		c.BaseURL = defaultPaystackBaseURL
	}

	return &c, nil
}

func NewPaystackProvider() *PaystackProvider {
	return &PaystackProvider{
		BaseProvider: providers.BaseProvider{
			Name: providers.Paystack,
			Client: &http.Client{
				Timeout: time.Second * 10,
			},
		},
		loadConfig: loadPaystackConfig,
	}
}

// NewPaystackProviderWithConfig pins the credential and base URL, bypassing
// the per-call environment read.
func NewPaystackProviderWithConfig(c *PaystackConfig) *PaystackProvider {
	p := NewPaystackProvider()
	p.loadConfig = func() (*PaystackConfig, error) { return c, nil }
	return p
}

func (p *PaystackProvider) ResolveAccount(accountNumber string, bankCode string) (*AccountInfo, error) {
	c, err := p.loadConfig()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigurationMissing, err)
	}
	if c.SecretKey == "" {
		return nil, ErrConfigurationMissing
	}

	base, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %v", err.Error())
	}

	// Path params
	base.Path += "bank/resolve"

	// Query params
	params := url.Values{}
	params.Add("account_number", accountNumber)
	params.Add("bank_code", bankCode)
	base.RawQuery = params.Encode()

	headers := map[string]string{
		"Authorization": "Bearer " + c.SecretKey,
	}

	resp, err := p.MakeRequest("GET", base.String(), nil, headers)
	if err != nil {
		return nil, fmt.Errorf("paystack request error: %w", err)
	}
	defer resp.Body.Close()

	// Check the status code
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("paystack API error: %d", resp.StatusCode)
	}

	// Decode the response body
	var response Response[AccountInfo]
	decoder := json.NewDecoder(resp.Body)
	err = decoder.Decode(&response)
	if err != nil {
		return nil, fmt.Errorf("error decoding response body: %w", err)
	}

	if !response.Status || response.Data.AccountName == "" {
		return nil, fmt.Errorf("account name not found")
	}

	return &response.Data, nil
}
