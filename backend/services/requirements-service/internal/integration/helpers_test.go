//go:build integration

package integration

import (
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

func stringsReader(s string) io.Reader {
	return strings.NewReader(s)
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}
