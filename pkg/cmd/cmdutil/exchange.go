package cmdutil

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"go.uber.org/multierr"

	"github.com/c9s/bitbank/pkg/exchange/bitbank"
)

// Config is the bitbank section of the command line configuration.
type Config struct {
	APIKey    string
	APISecret string
	OTPSecret string
	Proxy     string

	// EnvVarPrefix is set when the credentials come from PREFIX_API_KEY style env vars
	EnvVarPrefix string
}

// LoadConfig reads the config from viper, so both the flags and the
// BITBANK_API_KEY style env vars work. When --env-prefix is given the
// credentials are read from the prefixed env vars instead.
func LoadConfig() Config {
	if prefix := viper.GetString("env-prefix"); len(prefix) > 0 {
		c := ConfigFromEnvVarPrefix(prefix)
		c.Proxy = viper.GetString("proxy")
		return c
	}

	return Config{
		APIKey:    viper.GetString("bitbank-api-key"),
		APISecret: viper.GetString("bitbank-api-secret"),
		OTPSecret: viper.GetString("bitbank-otp-secret"),
		Proxy:     viper.GetString("proxy"),
	}
}

// ConfigFromEnvVarPrefix reads PREFIX_API_KEY, PREFIX_API_SECRET and
// PREFIX_OTP_SECRET, so one environment can hold several accounts.
func ConfigFromEnvVarPrefix(varPrefix string) Config {
	if len(varPrefix) == 0 {
		varPrefix = bitbank.ID
	}

	varPrefix = strings.ToUpper(varPrefix)
	return Config{
		APIKey:       os.Getenv(varPrefix + "_API_KEY"),
		APISecret:    os.Getenv(varPrefix + "_API_SECRET"),
		OTPSecret:    os.Getenv(varPrefix + "_OTP_SECRET"),
		EnvVarPrefix: varPrefix,
	}
}

// ValidatePrivate checks the fields required by the private endpoints and
// reports every missing one at once.
func (c Config) ValidatePrivate() error {
	var errs error
	if len(c.APIKey) == 0 {
		errs = multierr.Append(errs, c.missing("api-key"))
	}

	if len(c.APISecret) == 0 {
		errs = multierr.Append(errs, c.missing("api-secret"))
	}

	return errs
}

func (c Config) missing(name string) error {
	envName := strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
	if len(c.EnvVarPrefix) > 0 {
		return errors.Errorf("%s_%s is required", c.EnvVarPrefix, envName)
	}

	return errors.Errorf("--bitbank-%s or BITBANK_%s is required", name, envName)
}

func NewExchangeStandard(c Config, options ...bitbank.Option) (*bitbank.Exchange, error) {
	return bitbank.New(c.APIKey, c.APISecret, append([]bitbank.Option{bitbank.WithProxy(c.Proxy)}, options...)...)
}

// NewPrivateExchange is NewExchangeStandard for commands that call the private endpoints.
func NewPrivateExchange(c Config, options ...bitbank.Option) (*bitbank.Exchange, error) {
	if err := c.ValidatePrivate(); err != nil {
		return nil, err
	}

	return NewExchangeStandard(c, options...)
}
