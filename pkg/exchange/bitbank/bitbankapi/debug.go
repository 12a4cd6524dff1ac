package bitbankapi

import (
	"os"
	"strconv"
)

type LogFunction func(msg string, args ...interface{})

var debugf LogFunction

func getDebugFunction() LogFunction {
	if v, err := strconv.ParseBool(os.Getenv("DEBUG_BITBANK")); err == nil && v {
		return log.Infof
	}

	return log.Debugf
}

func init() {
	debugf = getDebugFunction()
}
