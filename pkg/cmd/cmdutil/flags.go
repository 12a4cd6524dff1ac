package cmdutil

import "github.com/spf13/pflag"

// PersistentFlags defines the flags for environments
func PersistentFlags(flags *pflag.FlagSet) {
	flags.String("bitbank-api-key", "", "bitbank api key")
	flags.String("bitbank-api-secret", "", "bitbank api secret")
	flags.String("bitbank-otp-secret", "", "the base32 two-factor secret used to generate withdrawal otp tokens")
	flags.String("env-prefix", "", "read the credentials from PREFIX_API_KEY, PREFIX_API_SECRET and PREFIX_OTP_SECRET")
	flags.String("proxy", "", "http proxy url, like http://127.0.0.1:3128")
}
