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

type FlutterwaveProvider struct {
	providers.BaseProvider
	loadConfig func() (*FlutterwaveConfig, error)
}

type FlutterwaveConfig struct {
	SecretKey string `mapstructure:"FLUTTERWAVE_SECRET_KEY"`
	BaseURL   string `mapstructure:"FLUTTERWAVE_BASE_URL"`
}

const defaultFlutterwaveBaseURL = "https://api.flutterwave.com/v3/"

func loadFlutterwaveConfig() (*FlutterwaveConfig, error) {
	var c FlutterwaveConfig

	err := utils.LoadCustomConfig(utils.EnvPath, &c)
	if err != nil {
		return nil, err
	}

	if c.BaseURL == "" {
		c.BaseURL = defaultFlutterwaveBaseURL
	}

	return &c, nil
}

func NewFlutterwaveProvider() *FlutterwaveProvider {
	return &FlutterwaveProvider{
		BaseProvider: providers.BaseProvider{
			Name: providers.Flutterwave,
			Client: &http.Client{
				Timeout: time.Second * 15,
			},
		},
		loadConfig: loadFlutterwaveConfig,
	}
}

// NewFlutterwaveProviderWithConfig pins the credential and base URL, bypassing
// the per-call environment read.
func NewFlutterwaveProviderWithConfig(c *FlutterwaveConfig) *FlutterwaveProvider {
	p := NewFlutterwaveProvider()
	p.loadConfig = func() (*FlutterwaveConfig, error) { return c, nil }
	return p
}

// ErrConfigurationMissing reports an absent provider credential. The caller
// treats it as that provider's failure, not a hard stop.
var ErrConfigurationMissing = fmt.Errorf("provider configuration missing")

func (p *FlutterwaveProvider) ResolveAccount(accountNumber string, bankCode string) (*AccountInfo, error) {
	// Credential is re-read on every call, absence short-circuits before any
	// network I/O
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
	base.Path += "accounts/resolve"

	request := ResolveAccountRequest{
		AccountNumber: accountNumber,
		AccountBank:   bankCode,
	}

	headers := map[string]string{
		"Authorization": "Bearer " + c.SecretKey,
	}

	resp, err := p.MakeRequest("POST", base.String(), request, headers)
	if err != nil {
		return nil, fmt.Errorf("flutterwave request error: %w", err)
	}
	defer resp.Body.Close()

	// Check the status code
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("flutterwave API error: %d", resp.StatusCode)
	}

	// Decode the response body
	var response FlutterwaveResponse[AccountInfo]
	decoder := json.NewDecoder(resp.Body)
	err = decoder.Decode(&response)
	if err != nil {
		return nil, fmt.Errorf("error decoding response body: %w", err)
	}

	if response.Status != flutterwaveStatusSuccess || response.Data.AccountName == "" {
		return nil, fmt.Errorf("account name not found")
	}

	return &response.Data, nil
}

func (p *FlutterwaveProvider) GetBanks(country string) (BankCollection, error) {
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
	base.Path += "banks/" + country

	headers := map[string]string{
		"Authorization": "Bearer " + c.SecretKey,
	}

	resp, err := p.MakeRequest("GET", base.String(), nil, headers)
	if err != nil {
		return nil, fmt.Errorf("flutterwave request error: %w", err)
	}
	defer resp.Body.Close()

	// Check the status code
	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{Provider: providers.Flutterwave, StatusCode: resp.StatusCode}
	}

	// Decode the response body
	var response FlutterwaveResponse[json.RawMessage]
	decoder := json.NewDecoder(resp.Body)
	err = decoder.Decode(&response)
	if err != nil {
		return nil, fmt.Errorf("error decoding response body: %w", err)
	}

	if response.Status != flutterwaveStatusSuccess || len(response.Data) == 0 || string(response.Data) == "null" || string(response.Data) == "[]" {
		return nil, fmt.Errorf("no banks data returned from flutterwave")
	}

	return BankCollection(response.Data), nil
}

// UpstreamError carries the provider's HTTP status so the API layer can echo
// it on the bank listing route.
type UpstreamError struct {
	Provider   string
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s API error: %d", e.Provider, e.StatusCode)
}
