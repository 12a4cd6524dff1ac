package bitbankapi

import (
	"time"

	"github.com/c9s/requestgen"
)

// TransactionDateLayout is the layout of the :date segment of the transactions endpoint
const TransactionDateLayout = "20060102"

//go:generate GetRequest -url "/:pair/transactions" -type GetTransactionsRequest -responseDataType .TransactionList
type GetTransactionsRequest struct {
	client requestgen.APIClient

	pair string `param:"pair,slug,required"`
}

//go:generate GetRequest -url "/:pair/transactions/:date" -type GetTransactionsByDateRequest -responseDataType .TransactionList
type GetTransactionsByDateRequest struct {
	client requestgen.APIClient

	pair string `param:"pair,slug,required"`

	// date is formatted as YYYYMMDD
	date string `param:"date,slug,required"`
}

// NewGetTransactionsRequest returns the latest transactions of a pair.
func (c *RestClient) NewGetTransactionsRequest() *GetTransactionsRequest {
	return &GetTransactionsRequest{client: c}
}

func (c *RestClient) NewGetTransactionsByDateRequest() *GetTransactionsByDateRequest {
	return &GetTransactionsByDateRequest{client: c}
}

// Time sets the date segment from t.
func (g *GetTransactionsByDateRequest) Time(t time.Time) *GetTransactionsByDateRequest {
	return g.Date(t.Format(TransactionDateLayout))
}
