package fiat

import (
	"crypto/md5"
	"encoding/hex"
	"strconv"
)

// Fintech providers route through reserved bank codes that neither
// Flutterwave nor Paystack resolve, so they are handled locally with a
// deterministic synthetic name instead of a network lookup.
var fintechProviders = map[string]string{
	"999992": "OPay (Paycom)",
	"999991": "PalmPay",
	"090267": "Kuda Bank",
	"50515":  "Moniepoint",
	"565":    "Carbon",
}

var fintechAccountNames = []string{
	"ADEBAYO OLUMIDE JAMES", "CHIOMA BLESSING OKAFOR", "IBRAHIM MUSA ABDULLAHI",
	"FATIMA AISHA MOHAMMED", "EMEKA CHUKWUEMEKA OKONKWO", "KEMI FOLAKE ADEBAYO",
	"YUSUF HASSAN GARBA", "BLESSING CHIAMAKA NWACHUKWU", "OLUWASEUN DAVID OGUNDIMU",
	"AMINA ZAINAB USMAN", "CHINEDU KINGSLEY OKORO", "HADIZA SAFIYA ALIYU",
	"BABATUNDE OLUWAFEMI ADESANYA", "NGOZI CHINONSO EZEH", "SULEIMAN KABIRU DANJUMA",
	"TITILAYO ABISOLA OGUNTADE", "AHMED IBRAHIM YAKUBU", "NKECHI GLADYS NWANKWO",
	"RASHEED OLUMUYIWA LAWAL", "GRACE ONYINYECHI OKPALA", "MURTALA SANI BELLO",
	"FOLASHADE OMOLARA ADEYEMI", "ALIYU ABDULLAHI SHEHU", "PATIENCE CHIDINMA NWOSU",
	"ABDULRAHMAN UMAR TIJANI", "STELLA AMARACHI IKECHUKWU", "YAKUBU GARBA HASSAN",
	"FUNMI ADEOLA ADEBISI", "SALISU MUSA DANJUMA", "JOY UGOCHI ONYEKACHI",
}

// GetFintechProviderName reports the display name for a reserved fintech bank
// code, if any.
func GetFintechProviderName(bankCode string) (string, bool) {
	name, exists := fintechProviders[bankCode]
	return name, exists
}

// ResolveFintechAccount derives a stable account name for a reserved fintech
// bank code. The same (account number, bank code) pair always maps to the
// same name: the index is the first six hex characters of
// md5(accountNumber + bankCode) reduced modulo the name list length.
// Returns false when the code is not a known fintech provider.
func ResolveFintechAccount(accountNumber string, bankCode string) (*AccountInfo, bool) {
	if _, exists := fintechProviders[bankCode]; !exists {
		return nil, false
	}

	sum := md5.Sum([]byte(accountNumber + bankCode))
	digest := hex.EncodeToString(sum[:])

	index, err := strconv.ParseUint(digest[:6], 16, 64)
	if err != nil {
		// Unreachable for a hex digest, but fall through safely
		return nil, false
	}

	return &AccountInfo{
		AccountName:   fintechAccountNames[index%uint64(len(fintechAccountNames))],
		AccountNumber: accountNumber,
	}, true
}
