package verification

import (
	"errors"
	"strings"

	"github.com/miles-app/miles-backend/providers"
	"github.com/miles-app/miles-backend/providers/fiat"
	"github.com/miles-app/miles-backend/services/monitoring/logging"
	"github.com/miles-app/miles-backend/services/monitoring/metrics"
)

// Source tags which step of the fallback chain produced a verified name.
type Source string

const (
	SourceFintech     Source = "fintech"
	SourceFlutterwave Source = "flutterwave"
	SourcePaystack    Source = "paystack"
)

// VerificationResult is the normalized success outcome of the chain. Exactly
// one source is reported per result.
type VerificationResult struct {
	AccountName string
	Source      Source
}

// AccountResolver is the seam both external provider clients satisfy.
type AccountResolver interface {
	ResolveAccount(accountNumber string, bankCode string) (*fiat.AccountInfo, error)
}

// BankLister lists supported banks for a country.
type BankLister interface {
	GetBanks(country string) (fiat.BankCollection, error)
}

type VerificationService struct {
	flutterwave AccountResolver
	paystack    AccountResolver
	bankLister  BankLister
	logger      *logging.Logger
	collector   *metrics.Collector
}

func NewVerificationService(flutterwave AccountResolver, paystack AccountResolver, bankLister BankLister, logger *logging.Logger, collector *metrics.Collector) *VerificationService {
	return &VerificationService{
		flutterwave: flutterwave,
		paystack:    paystack,
		bankLister:  bankLister,
		logger:      logger,
		collector:   collector,
	}
}

// ValidateRequest applies the request rules in order: key presence, emptiness
// after trimming, then the 10-digit account number shape. Pure, no I/O.
func ValidateRequest(accountNumber *string, bankCode *string) (string, string, error) {
	if accountNumber == nil || bankCode == nil {
		return "", "", ErrMissingFields
	}

	account := strings.TrimSpace(*accountNumber)
	bank := strings.TrimSpace(*bankCode)

	if account == "" || bank == "" {
		return "", "", ErrEmptyFields
	}

	if len(account) != 10 || !isDigits(account) {
		return "", "", ErrInvalidAccountNumber
	}

	return account, bank, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// VerifyAccount runs the chain: fintech shortcut, then Flutterwave, then
// Paystack. First success wins, provider failures are logged and swallowed,
// and only the aggregate miss reaches the caller.
func (s *VerificationService) VerifyAccount(accountNumber *string, bankCode *string) (*VerificationResult, error) {
	account, bank, err := ValidateRequest(accountNumber, bankCode)
	if err != nil {
		s.collector.ObserveVerification("bad_request", "none")
		return nil, err
	}

	s.logger.WithField("bank_code", bank).Info("Verifying account")

	// Reserved fintech codes never reach a network provider
	if info, ok := fiat.ResolveFintechAccount(account, bank); ok {
		providerName, _ := fiat.GetFintechProviderName(bank)
		s.logger.WithField("provider", providerName).Info("Fintech verification success")
		s.collector.ObserveVerification("success", string(SourceFintech))
		return &VerificationResult{AccountName: info.AccountName, Source: SourceFintech}, nil
	}

	if info, err := s.flutterwave.ResolveAccount(account, bank); err == nil {
		s.collector.ObserveProviderCall(providers.Flutterwave, "success")
		s.collector.ObserveVerification("success", string(SourceFlutterwave))
		return &VerificationResult{AccountName: info.AccountName, Source: SourceFlutterwave}, nil
	} else {
		s.observeProviderFailure(providers.Flutterwave, err)
	}

	if info, err := s.paystack.ResolveAccount(account, bank); err == nil {
		s.collector.ObserveProviderCall(providers.Paystack, "success")
		s.collector.ObserveVerification("success", string(SourcePaystack))
		return &VerificationResult{AccountName: info.AccountName, Source: SourcePaystack}, nil
	} else {
		s.observeProviderFailure(providers.Paystack, err)
	}

	s.collector.ObserveVerification("failure", "none")
	return nil, ErrVerificationFailed
}

func (s *VerificationService) observeProviderFailure(provider string, err error) {
	// Config gaps are an ops problem, not an upstream one, keep them apart
	result := "failure"
	if errors.Is(err, fiat.ErrConfigurationMissing) {
		result = "config_missing"
	}
	s.collector.ObserveProviderCall(provider, result)
	s.logger.WithField("provider", provider).Warnf("Provider verification failed: %v", err)
}

// ListBanks fetches the supported bank list for Nigeria, passed through
// untouched from the provider.
func (s *VerificationService) ListBanks() (fiat.BankCollection, error) {
	banks, err := s.bankLister.GetBanks("NG")
	if err != nil {
		s.collector.ObserveBankListing("failure")
		s.logger.Warnf("Bank list fetch failed: %v", err)

		var upstream *fiat.UpstreamError
		if errors.As(err, &upstream) {
			return nil, upstream
		}
		if errors.Is(err, fiat.ErrConfigurationMissing) {
			return nil, ErrBankListConfigMissing
		}
		return nil, ErrBankListUnavailable
	}

	s.collector.ObserveBankListing("success")
	return banks, nil
}
