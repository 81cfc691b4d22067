package config

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_resolve(t *testing.T) {
	t.Run("preenche DSN, fuso e valores do checkout", func(t *testing.T) {
		cfg := &Config{
			App:      App{TimeZone: "America/Sao_Paulo"},
			Database: Database{Driver: "postgres", User: "u", Password: "p", URL: "db:5432/shop"},
			Checkout: Checkout{TaxRateRaw: "0.18", ShippingFeeRaw: "49.90", FreeShippingThresholdRaw: ""},
		}

		require.NoError(t, cfg.resolve())

		assert.Equal(t, "postgres://u:p@db:5432/shop", cfg.Database.DSN)
		assert.Equal(t, "America/Sao_Paulo", cfg.App.Location.String())
		assert.True(t, decimal.RequireFromString("0.18").Equal(cfg.Checkout.TaxRate))
		assert.True(t, decimal.RequireFromString("49.90").Equal(cfg.Checkout.ShippingFee))
		assert.True(t, cfg.Checkout.FreeShippingThreshold.IsZero())
		assert.Equal(t, time.Hour, cfg.Cache.TenantTTL)
		assert.Equal(t, 1, cfg.SalesReconcile.MaxConcurrentJobs)
	})

	t.Run("rejeita taxa negativa", func(t *testing.T) {
		cfg := &Config{
			App:      App{TimeZone: "UTC"},
			Checkout: Checkout{TaxRateRaw: "-1"},
		}

		assert.Error(t, cfg.resolve())
	})

	t.Run("rejeita fuso inválido", func(t *testing.T) {
		cfg := &Config{App: App{TimeZone: "Marte/Olympus"}}

		assert.Error(t, cfg.resolve())
	})
}

func TestConfig_LoadPaymentSecret(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/services/srv-1/secret-files", r.URL.Path)
		assert.Equal(t, "Bearer render-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"secretFile":{"name":"payment_key_secret","content":"s3cr3t\n"},"cursor":"a"}]`))
	}))
	defer server.Close()

	t.Run("carrega o secret quando ausente", func(t *testing.T) {
		cfg := &Config{Render: Render{APIKey: "render-key", ServiceID: "srv-1", BaseURL: server.URL}}

		err := cfg.LoadPaymentSecret(context.Background(), NewRenderClient(cfg))

		require.NoError(t, err)
		assert.Equal(t, "s3cr3t", cfg.Payment.KeySecret)
	})

	t.Run("mantém o secret definido por variável de ambiente", func(t *testing.T) {
		cfg := &Config{
			Payment: Payment{KeySecret: "from-env"},
			Render:  Render{APIKey: "render-key", ServiceID: "srv-1", BaseURL: server.URL},
		}

		err := cfg.LoadPaymentSecret(context.Background(), NewRenderClient(cfg))

		require.NoError(t, err)
		assert.Equal(t, "from-env", cfg.Payment.KeySecret)
	})
}
