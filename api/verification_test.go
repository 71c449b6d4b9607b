package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/miles-app/miles-backend/api/apistrings"
	"github.com/miles-app/miles-backend/providers/fiat"
	"github.com/miles-app/miles-backend/services/monitoring/logging"
	"github.com/miles-app/miles-backend/services/monitoring/metrics"
	"github.com/miles-app/miles-backend/services/verification"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) ResolveAccount(accountNumber string, bankCode string) (*fiat.AccountInfo, error) {
	args := m.Called(accountNumber, bankCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fiat.AccountInfo), args.Error(1)
}

type MockBankLister struct {
	mock.Mock
}

func (m *MockBankLister) GetBanks(country string) (fiat.BankCollection, error) {
	args := m.Called(country)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(fiat.BankCollection), args.Error(1)
}

func testLogger() *logging.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return &logging.Logger{Logger: l}
}

func newTestRouter(flutterwave *MockResolver, paystack *MockResolver, lister *MockBankLister) *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := verification.NewVerificationService(flutterwave, paystack, lister, testLogger(), metrics.NewCollector())
	v := &Verification{service: svc}

	router := gin.New()
	router.Use(CORSMiddleware())
	router.Use(RequestIDMiddleware())
	router.POST("/api/verify_account", v.verifyAccount)
	router.GET("/api/banks", v.getBanks)
	return router
}

func postJSON(router *gin.Engine, path string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

// --- POST /api/verify_account ---

func TestVerifyAccountHandler_FintechSuccess(t *testing.T) {
	flutterwave := new(MockResolver)
	paystack := new(MockResolver)
	router := newTestRouter(flutterwave, paystack, new(MockBankLister))

	recorder := postJSON(router, "/api/verify_account", `{"account_number":"1234567890","bank_code":"999992"}`)

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "fintech", body["source"])
	assert.Equal(t, "FATIMA AISHA MOHAMMED", body["accountName"])

	flutterwave.AssertNotCalled(t, "ResolveAccount", mock.Anything, mock.Anything)
	paystack.AssertNotCalled(t, "ResolveAccount", mock.Anything, mock.Anything)
}

func TestVerifyAccountHandler_ProviderSuccess(t *testing.T) {
	flutterwave := new(MockResolver)
	router := newTestRouter(flutterwave, new(MockResolver), new(MockBankLister))

	flutterwave.On("ResolveAccount", "0690000032", "044").
		Return(&fiat.AccountInfo{AccountName: "JOHN UCHE DOE"}, nil)

	recorder := postJSON(router, "/api/verify_account", `{"account_number":"0690000032","bank_code":"044"}`)

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, "flutterwave", body["source"])
	assert.Equal(t, "JOHN UCHE DOE", body["accountName"])
}

func TestVerifyAccountHandler_MalformedJSON(t *testing.T) {
	router := newTestRouter(new(MockResolver), new(MockResolver), new(MockBankLister))

	recorder := postJSON(router, "/api/verify_account", `{"account_number": `)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, apistrings.InvalidJSON, body["error"])
}

func TestVerifyAccountHandler_MissingBankCode(t *testing.T) {
	router := newTestRouter(new(MockResolver), new(MockResolver), new(MockBankLister))

	recorder := postJSON(router, "/api/verify_account", `{"account_number":"1234567890"}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, apistrings.MissingFields, body["error"])
}

func TestVerifyAccountHandler_InvalidAccountNumber(t *testing.T) {
	router := newTestRouter(new(MockResolver), new(MockResolver), new(MockBankLister))

	recorder := postJSON(router, "/api/verify_account", `{"account_number":"123","bank_code":"058"}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, apistrings.InvalidAccountNumber, body["error"])
}

func TestVerifyAccountHandler_AllProvidersFail(t *testing.T) {
	flutterwave := new(MockResolver)
	paystack := new(MockResolver)
	router := newTestRouter(flutterwave, paystack, new(MockBankLister))

	flutterwave.On("ResolveAccount", "0690000032", "044").Return(nil, fmt.Errorf("timeout"))
	paystack.On("ResolveAccount", "0690000032", "044").Return(nil, fmt.Errorf("timeout"))

	recorder := postJSON(router, "/api/verify_account", `{"account_number":"0690000032","bank_code":"044"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, apistrings.VerificationFailed, body["error"])
}

func TestVerifyAccountHandler_SetsRequestID(t *testing.T) {
	router := newTestRouter(new(MockResolver), new(MockResolver), new(MockBankLister))

	recorder := postJSON(router, "/api/verify_account", `{"account_number":"1234567890","bank_code":"999992"}`)

	assert.NotEmpty(t, recorder.Header().Get("X-Request-ID"))
}

// --- GET /api/banks ---

func TestGetBanksHandler_Success(t *testing.T) {
	lister := new(MockBankLister)
	router := newTestRouter(new(MockResolver), new(MockResolver), lister)

	lister.On("GetBanks", "NG").
		Return(fiat.BankCollection(`[{"id":1,"code":"044","name":"Access Bank"}]`), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/banks", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, true, body["success"])

	banks, ok := body["banks"].([]interface{})
	require.True(t, ok)
	assert.Len(t, banks, 1)
}

func TestGetBanksHandler_ConfigMissing(t *testing.T) {
	lister := new(MockBankLister)
	router := newTestRouter(new(MockResolver), new(MockResolver), lister)

	lister.On("GetBanks", "NG").Return(nil, fiat.ErrConfigurationMissing)

	req := httptest.NewRequest(http.MethodGet, "/api/banks", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, apistrings.BankListConfigMissing, body["error"])
}

func TestGetBanksHandler_UpstreamStatusEchoed(t *testing.T) {
	lister := new(MockBankLister)
	router := newTestRouter(new(MockResolver), new(MockResolver), lister)

	lister.On("GetBanks", "NG").Return(nil, &fiat.UpstreamError{Provider: "FLUTTERWAVE", StatusCode: 401})

	req := httptest.NewRequest(http.MethodGet, "/api/banks", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, false, body["success"])
}

// --- CORS ---

func TestCORSPreflight(t *testing.T) {
	router := newTestRouter(new(MockResolver), new(MockResolver), new(MockBankLister))

	req := httptest.NewRequest(http.MethodOptions, "/api/verify_account", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, "*", recorder.Header().Get("Access-Control-Allow-Origin"))
}
