package style

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestChangeRatio(t *testing.T) {
	r := ChangeRatio(decimal.NewFromInt(100), decimal.NewFromInt(110))
	assert.Equal(t, "0.1", r.String())
	assert.True(t, ChangeRatio(decimal.Zero, decimal.NewFromInt(1)).IsZero())
}

func TestChangeSignString(t *testing.T) {
	assert.Equal(t, "+1.25%", ChangeSignString(decimal.RequireFromString("0.0125")))
	assert.Equal(t, "-3.00%", ChangeSignString(decimal.RequireFromString("-0.03")))
	assert.Equal(t, "0.00%", ChangeSignString(decimal.Zero))
}

func TestChangeEmoji(t *testing.T) {
	assert.Equal(t, UpEmoji, ChangeEmoji(decimal.NewFromInt(1)))
	assert.Equal(t, DownEmoji, ChangeEmoji(decimal.NewFromInt(-1)))
	assert.Equal(t, "", ChangeEmoji(decimal.Zero))
}

func TestNewTable(t *testing.T) {
	var buf bytes.Buffer
	tbl := NewTable(&buf, "", "PAIR", "LAST")
	tbl.AppendRow(table.Row{"btc_jpy", "5219999"})
	tbl.Render()

	out := buf.String()
	assert.True(t, strings.Contains(out, "btc_jpy"))
	assert.True(t, strings.Contains(out, "5219999"))
}

func TestChangeColored(t *testing.T) {
	assert.Contains(t, ChangeColored(decimal.RequireFromString("0.0125")), "+1.25%")
	assert.Contains(t, ChangeColored(decimal.RequireFromString("-0.03")), "-3.00%")
	assert.Equal(t, "0.00%", ChangeColored(decimal.Zero))
}
