package style

import (
	"github.com/fatih/color"
	"github.com/shopspring/decimal"
)

var (
	green = color.New(color.FgHiGreen).SprintFunc()
	red   = color.New(color.FgHiRed).SprintFunc()
)

var UpEmoji = "📈"
var DownEmoji = "📉"

// ChangeRatio returns (last - open) / open, zero when open is zero.
func ChangeRatio(open, last decimal.Decimal) decimal.Decimal {
	if open.IsZero() {
		return decimal.Zero
	}
	return last.Sub(open).Div(open)
}

// ChangeSignString formats a change ratio as a signed percentage, like +1.25%.
func ChangeSignString(ratio decimal.Decimal) string {
	s := ratio.Shift(2).StringFixed(2) + "%"
	if ratio.Sign() > 0 {
		return "+" + s
	}
	return s
}

// ChangeColored is ChangeSignString painted green for gains and red for losses.
func ChangeColored(ratio decimal.Decimal) string {
	s := ChangeSignString(ratio)
	switch ratio.Sign() {
	case 1:
		return green(s)
	case -1:
		return red(s)
	}
	return s
}

func ChangeEmoji(ratio decimal.Decimal) string {
	switch ratio.Sign() {
	case 1:
		return UpEmoji
	case -1:
		return DownEmoji
	}
	return ""
}
