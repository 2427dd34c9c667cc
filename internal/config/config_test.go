package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresDSNAndSecret(t *testing.T) {
	t.Setenv("DB_DSN", "")
	t.Setenv("PAYSTACK_SECRET_KEY", "")

	_, err := Load()
	require.Error(t, err)

	t.Setenv("DB_DSN", "user:pass@tcp(localhost:3306)/tapsync?parseTime=true")
	_, err = Load()
	require.Error(t, err, "secret key still missing")

	t.Setenv("PAYSTACK_SECRET_KEY", "sk_test_x")
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "https://api.paystack.co", cfg.Paystack.BaseURL)
	assert.Equal(t, 4000, cfg.Pricing.UnitCardPrice)
	assert.Equal(t, 34000, cfg.Pricing.SubscriptionPrice)
}

func TestLoadPricingOverrides(t *testing.T) {
	t.Setenv("DB_DSN", "user:pass@tcp(localhost:3306)/tapsync")
	t.Setenv("PAYSTACK_SECRET_KEY", "sk_test_x")
	t.Setenv("UNIT_CARD_PRICE", "5500")
	t.Setenv("SUBSCRIPTION_PRICE", "40000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5500, cfg.Pricing.UnitCardPrice)
	assert.Equal(t, 40000, cfg.Pricing.SubscriptionPrice)
}
