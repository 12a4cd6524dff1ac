package cmdutil

import (
	"testing"
	"time"

	"github.com/pquerna/otp/totp"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestConfig_ValidatePrivate(t *testing.T) {
	err := Config{}.ValidatePrivate()
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 2)

	err = Config{APIKey: "key"}.ValidatePrivate()
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 1)
	assert.Contains(t, err.Error(), "BITBANK_API_SECRET")

	assert.NoError(t, Config{APIKey: "key", APISecret: "secret"}.ValidatePrivate())
}

func TestConfigFromEnvVarPrefix(t *testing.T) {
	t.Setenv("BBTEST_API_KEY", "key")
	t.Setenv("BBTEST_API_SECRET", "")
	t.Setenv("BBTEST_OTP_SECRET", "JBSWY3DPEHPK3PXP")

	c := ConfigFromEnvVarPrefix("bbtest")
	assert.Equal(t, "key", c.APIKey)
	assert.Equal(t, "JBSWY3DPEHPK3PXP", c.OTPSecret)
	assert.EqualError(t, c.ValidatePrivate(), "BBTEST_API_SECRET is required")

	t.Setenv("BBTEST_API_SECRET", "secret")
	c = ConfigFromEnvVarPrefix("bbtest")
	assert.NoError(t, c.ValidatePrivate())

	ex, err := NewPrivateExchange(c)
	require.NoError(t, err)
	assert.Equal(t, "bitbank", ex.Name())
}

func TestLoadConfig_EnvPrefix(t *testing.T) {
	t.Setenv("BBTEST_API_KEY", "prefixed-key")
	t.Setenv("BBTEST_API_SECRET", "prefixed-secret")

	viper.Set("bitbank-api-key", "flag-key")
	viper.Set("proxy", "http://127.0.0.1:3128")
	t.Cleanup(func() {
		viper.Set("bitbank-api-key", "")
		viper.Set("proxy", "")
		viper.Set("env-prefix", "")
	})

	assert.Equal(t, "flag-key", LoadConfig().APIKey)

	viper.Set("env-prefix", "bbtest")
	c := LoadConfig()
	assert.Equal(t, "prefixed-key", c.APIKey)
	assert.Equal(t, "prefixed-secret", c.APISecret)
	assert.Equal(t, "http://127.0.0.1:3128", c.Proxy)
}

func TestOTPToken(t *testing.T) {
	now := time.Unix(1700000000, 0)

	token, err := OTPToken("654321", "JBSWY3DPEHPK3PXP", now)
	require.NoError(t, err)
	assert.Equal(t, "654321", token)

	token, err = OTPToken("", "", now)
	require.NoError(t, err)
	assert.Empty(t, token)

	token, err = OTPToken("", "JBSWY3DPEHPK3PXP", now)
	require.NoError(t, err)
	assert.Len(t, token, 6)

	expected, err := totp.GenerateCode("JBSWY3DPEHPK3PXP", now)
	require.NoError(t, err)
	assert.Equal(t, expected, token)
}
