// Package profile loads the sender profile and service settings that drive
// document composition: who the issuing organization is, which payment
// defaults apply, and where the HTTP API listens.
package profile

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// BIS Billing 3.0 identifiers stamped on every composed document.
const (
	CustomizationID = "urn:cen.eu:en16931:2017#compliant#urn:fdc:peppol.eu:2017:poacc:billing:3.0"
	ProfileID       = "urn:fdc:peppol.eu:2017:poacc:billing:01:1.0"
)

// Config is the full service configuration, read via Viper from an optional
// YAML file plus LETSPEPPOL_* environment variables. Env vars win.
type Config struct {
	Organization Organization
	Defaults     Defaults
	HTTP         HTTPConfig
	LogLevel     string
}

// Organization identifies the party issuing documents. EnterpriseNumber is
// the national registration (KBO for Belgian senders, scheme 0208), which
// doubles as the Peppol endpoint identifier.
type Organization struct {
	Name             string
	EnterpriseNumber string
	VATNumber        string
	IBAN             string
	StreetName       string
	CityName         string
	PostalZone       string
	CountryCode      string
	Email            string
	Telephone        string
}

// Defaults are the values stamped on composed drafts when the caller gives
// nothing better.
type Defaults struct {
	Currency     string
	PaymentTerms string // 15_DAYS, 30_DAYS, 60_DAYS or END_OF_NEXT_MONTH
	TaxPercent   string
	TaxCategory  string
	UnitCode     string
}

// HTTPConfig is the API listen address.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr returns the listen address (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load reads configuration from path (optional, "" skips the file) and the
// environment.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("LETSPEPPOL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("letspeppol")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		_ = v.ReadInConfig() // file is optional
	}

	cfg := &Config{
		Organization: Organization{
			Name:             v.GetString("org.name"),
			EnterpriseNumber: v.GetString("org.enterprise_number"),
			VATNumber:        v.GetString("org.vat_number"),
			IBAN:             v.GetString("org.iban"),
			StreetName:       v.GetString("org.street"),
			CityName:         v.GetString("org.city"),
			PostalZone:       v.GetString("org.postal_zone"),
			CountryCode:      v.GetString("org.country"),
			Email:            v.GetString("org.email"),
			Telephone:        v.GetString("org.telephone"),
		},
		Defaults: Defaults{
			Currency:     v.GetString("defaults.currency"),
			PaymentTerms: v.GetString("defaults.payment_terms"),
			TaxPercent:   v.GetString("defaults.tax_percent"),
			TaxCategory:  v.GetString("defaults.tax_category"),
			UnitCode:     v.GetString("defaults.unit_code"),
		},
		HTTP: HTTPConfig{
			Host: v.GetString("http.host"),
			Port: v.GetInt("http.port"),
		},
		LogLevel: v.GetString("log.level"),
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("org.country", "BE")
	v.SetDefault("defaults.currency", "EUR")
	v.SetDefault("defaults.payment_terms", "30_DAYS")
	v.SetDefault("defaults.tax_percent", "21")
	v.SetDefault("defaults.tax_category", "S")
	v.SetDefault("defaults.unit_code", "C62")
	v.SetDefault("http.host", "0.0.0.0")
	v.SetDefault("http.port", 8080)
	v.SetDefault("log.level", "info")
}
