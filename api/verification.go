package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/miles-app/miles-backend/api/apistrings"
	models "github.com/miles-app/miles-backend/api/models"
	"github.com/miles-app/miles-backend/providers/fiat"
	"github.com/miles-app/miles-backend/services/verification"
)

type Verification struct {
	server  *Server
	service *verification.VerificationService
}

func (v Verification) router(server *Server) {
	v.server = server
	flutterwave := fiat.NewFlutterwaveProvider()
	v.service = verification.NewVerificationService(
		flutterwave,
		fiat.NewPaystackProvider(),
		flutterwave,
		server.logger,
		server.collector,
	)

	serverGroup := server.router.Group("/api")
	serverGroup.POST("verify_account", v.verifyAccount)
	serverGroup.GET("banks", v.getBanks)
}

func (v *Verification) verifyAccount(ctx *gin.Context) {
	// Observe request
	var request models.VerifyAccountRequest

	err := ctx.ShouldBindJSON(&request)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewErrorResponse(apistrings.InvalidJSON))
		return
	}

	result, err := v.service.VerifyAccount(request.AccountNumber, request.BankCode)
	if err != nil {
		ctx.JSON(verificationStatus(err), models.NewErrorResponse(verificationMessage(err)))
		return
	}

	ctx.JSON(http.StatusOK, models.VerifyAccountResponse{
		Success:     true,
		AccountName: result.AccountName,
		Source:      string(result.Source),
	})
}

func (v *Verification) getBanks(ctx *gin.Context) {
	banks, err := v.service.ListBanks()
	if err != nil {
		var upstream *fiat.UpstreamError
		if errors.As(err, &upstream) {
			ctx.JSON(upstream.StatusCode, models.NewErrorResponse(apistrings.BankListFailed))
			return
		}
		if errors.Is(err, verification.ErrBankListConfigMissing) {
			ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse(apistrings.BankListConfigMissing))
			return
		}
		ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse(apistrings.BankListFailed))
		return
	}

	ctx.JSON(http.StatusOK, models.BankListResponse{
		Success: true,
		Banks:   banks,
	})
}

func verificationStatus(err error) int {
	switch {
	case verification.IsBadRequest(err):
		return http.StatusBadRequest
	case errors.Is(err, verification.ErrVerificationFailed):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func verificationMessage(err error) string {
	switch {
	case errors.Is(err, verification.ErrMissingFields):
		return apistrings.MissingFields
	case errors.Is(err, verification.ErrEmptyFields):
		return apistrings.EmptyFields
	case errors.Is(err, verification.ErrInvalidAccountNumber):
		return apistrings.InvalidAccountNumber
	case errors.Is(err, verification.ErrVerificationFailed):
		return apistrings.VerificationFailed
	default:
		return apistrings.ServerError
	}
}
