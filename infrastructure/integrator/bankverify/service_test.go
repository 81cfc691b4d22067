package bankverify

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/storefront-api/infrastructure/integrator/bankverify/bankverifyclient"
	"github.com/vfg2006/storefront-api/infrastructure/integrator/bankverify/mocks"
	"github.com/vfg2006/storefront-api/internal/config"
	"github.com/vfg2006/storefront-api/internal/domain"
	"go.uber.org/mock/gomock"
)

var details = domain.BankDetailsRequest{
	AccountNumber: " 123456789 ",
	IFSC:          "hdfc0001234",
	AccountHolder: "Ana Souza",
}

func TestBankVerifyService_Verify(t *testing.T) {
	ctx := context.Background()
	expectedParams := bankverifyclient.AccountValidationParams{
		AccountNumber: "123456789",
		IFSC:          "HDFC0001234",
		Name:          "Ana Souza",
	}

	tests := []struct {
		name         string
		response     *bankverifyclient.AccountValidationResponse
		clientErr    error
		wantVerified bool
		wantErr      bool
	}{
		{
			name:         "conta verificada com titular conferido",
			response:     &bankverifyclient.AccountValidationResponse{Status: "verified", NameMatch: true, FundAccountID: "fa_1"},
			wantVerified: true,
		},
		{
			name:         "titular diferente não verifica",
			response:     &bankverifyclient.AccountValidationResponse{Status: "verified", NameMatch: false},
			wantVerified: false,
		},
		{
			name:         "conta recusada",
			response:     &bankverifyclient.AccountValidationResponse{Status: "failed", NameMatch: true},
			wantVerified: false,
		},
		{
			name:      "erro do provedor é propagado",
			clientErr: errors.New("requisição falhou com status: 502 Bad Gateway"),
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := mocks.NewMockClient(ctrl)
			client.EXPECT().ValidateAccount(ctx, expectedParams).Return(tt.response, tt.clientErr)

			result, err := New("token", client).Verify(ctx, details)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantVerified, result.Verified)
			assert.Equal(t, tt.response.FundAccountID, result.PaymentAccountID)
		})
	}
}

func TestBankVerifyService_NotConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	_, err := New("", client).Verify(context.Background(), details)

	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestBankVerifyClient_ValidateAccount(t *testing.T) {
	t.Run("envia os dados e decodifica a resposta", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/bank-accounts/validate", r.URL.Path)
			assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))

			var params bankverifyclient.AccountValidationParams
			require.NoError(t, jsoniter.NewDecoder(r.Body).Decode(&params))
			assert.Equal(t, "123456789", params.AccountNumber)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"status":"verified","name_match":true,"registered_name":"ANA SOUZA","reference_id":"ref_1","fund_account_id":"fa_1"}`))
		}))
		defer server.Close()

		client := bankverifyclient.NewClient(config.BankVerification{URL: server.URL + "/v1", AccessToken: "token"})
		resp, err := client.ValidateAccount(context.Background(), bankverifyclient.AccountValidationParams{
			AccountNumber: "123456789",
			IFSC:          "HDFC0001234",
			Name:          "Ana Souza",
		})

		require.NoError(t, err)
		assert.Equal(t, "verified", resp.Status)
		assert.Equal(t, "ANA SOUZA", resp.RegisteredName)
		assert.Equal(t, "fa_1", resp.FundAccountID)
	})

	t.Run("status diferente de 200 é erro", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := bankverifyclient.NewClient(config.BankVerification{URL: server.URL, AccessToken: "token"})
		_, err := client.ValidateAccount(context.Background(), bankverifyclient.AccountValidationParams{})

		assert.Error(t, err)
	})
}
