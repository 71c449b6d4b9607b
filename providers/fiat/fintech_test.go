package fiat

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFintechAccount_KnownCodes(t *testing.T) {
	testCases := []struct {
		accountNumber string
		bankCode      string
		wantName      string
	}{
		{"1234567890", "999992", "FATIMA AISHA MOHAMMED"},
		{"0987654321", "999992", "OLUWASEUN DAVID OGUNDIMU"},
		{"1234567890", "999991", "BLESSING CHIAMAKA NWACHUKWU"},
		{"1111111111", "50515", "BABATUNDE OLUWAFEMI ADESANYA"},
		{"2222222222", "565", "YAKUBU GARBA HASSAN"},
		{"5555555555", "090267", "AHMED IBRAHIM YAKUBU"},
	}

	for _, tc := range testCases {
		t.Run(tc.bankCode+"/"+tc.accountNumber, func(t *testing.T) {
			info, ok := ResolveFintechAccount(tc.accountNumber, tc.bankCode)
			require.True(t, ok)
			assert.Equal(t, tc.wantName, info.AccountName)
			assert.Equal(t, tc.accountNumber, info.AccountNumber)
		})
	}
}

func TestResolveFintechAccount_Deterministic(t *testing.T) {
	first, ok := ResolveFintechAccount("1234567890", "999992")
	require.True(t, ok)

	for i := 0; i < 50; i++ {
		again, ok := ResolveFintechAccount("1234567890", "999992")
		require.True(t, ok)
		assert.Equal(t, first.AccountName, again.AccountName)
	}
}

func TestResolveFintechAccount_SpreadsAcrossNames(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		info, ok := ResolveFintechAccount(fmt.Sprintf("%010d", i), "999991")
		require.True(t, ok)
		seen[info.AccountName] = true
	}

	// Not a uniqueness guarantee, but 200 accounts should not all collapse
	// onto a handful of names
	assert.Greater(t, len(seen), 20)
}

func TestResolveFintechAccount_NotAFintechCode(t *testing.T) {
	for _, code := range []string{"058", "044", "", "999993"} {
		info, ok := ResolveFintechAccount("1234567890", code)
		assert.False(t, ok, "code %q should not resolve", code)
		assert.Nil(t, info)
	}
}

func TestGetFintechProviderName(t *testing.T) {
	name, ok := GetFintechProviderName("999992")
	require.True(t, ok)
	assert.Equal(t, "OPay (Paycom)", name)

	_, ok = GetFintechProviderName("058")
	assert.False(t, ok)
}
