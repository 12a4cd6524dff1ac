package cmd

import (
	"github.com/c9s/bitbank/pkg/cmd/cmdutil"
	"github.com/c9s/bitbank/pkg/exchange/bitbank"
)

// exchangeOptions are appended to every exchange built by the commands.
var exchangeOptions []bitbank.Option

func newExchange() (*bitbank.Exchange, error) {
	return cmdutil.NewExchangeStandard(cmdutil.LoadConfig(), exchangeOptions...)
}

func newPrivateExchange() (*bitbank.Exchange, error) {
	return cmdutil.NewPrivateExchange(cmdutil.LoadConfig(), exchangeOptions...)
}
