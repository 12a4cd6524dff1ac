package cmdutil

import (
	"time"

	"github.com/pkg/errors"
	"github.com/pquerna/otp/totp"
)

// OTPToken returns the given token if any, otherwise generates one from secret.
func OTPToken(token, secret string, now time.Time) (string, error) {
	if len(token) > 0 {
		return token, nil
	}

	if len(secret) == 0 {
		return "", nil
	}

	code, err := totp.GenerateCode(secret, now)
	if err != nil {
		return "", errors.Wrap(err, "unable to generate the otp token")
	}

	return code, nil
}
