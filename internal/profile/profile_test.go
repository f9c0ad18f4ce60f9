package profile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/letspeppol/letspeppol/internal/profile"
)

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := profile.Load("")
	require.NoError(t, err)

	assert.Equal(t, "BE", cfg.Organization.CountryCode)
	assert.Equal(t, "EUR", cfg.Defaults.Currency)
	assert.Equal(t, "30_DAYS", cfg.Defaults.PaymentTerms)
	assert.Equal(t, "21", cfg.Defaults.TaxPercent)
	assert.Equal(t, "S", cfg.Defaults.TaxCategory)
	assert.Equal(t, "C62", cfg.Defaults.UnitCode)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "letspeppol.yaml")
	yaml := `org:
  name: Ponder Source BV
  enterprise_number: "0705969661"
  vat_number: BE0705969661
  iban: BE71096123456769
  street: Main street 1
  city: Brussels
  postal_zone: "1000"
defaults:
  currency: SEK
  payment_terms: END_OF_NEXT_MONTH
http:
  port: 9090
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := profile.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Ponder Source BV", cfg.Organization.Name)
	assert.Equal(t, "0705969661", cfg.Organization.EnterpriseNumber)
	assert.Equal(t, "BE0705969661", cfg.Organization.VATNumber)
	assert.Equal(t, "BE71096123456769", cfg.Organization.IBAN)
	assert.Equal(t, "BE", cfg.Organization.CountryCode)
	assert.Equal(t, "SEK", cfg.Defaults.Currency)
	assert.Equal(t, "END_OF_NEXT_MONTH", cfg.Defaults.PaymentTerms)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := profile.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
