package hxshop

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Money is an amount in a single currency. Amounts arrive from the platform
// as decimal strings and are compared numerically.
type Money struct {
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
}

// Format prints m with its currency symbol using the number conventions of
// tag, rounded to the currency's standard scale. Digits come from the
// decimal amount, never from a float. Unknown currency codes fall back to
// "<amount> <code>".
func (m Money) Format(tag language.Tag) string {
	unit, err := currency.ParseISO(m.CurrencyCode)
	if err != nil {
		return strings.TrimSpace(m.Amount.StringFixed(2) + " " + m.CurrencyCode)
	}
	scale, _ := currency.Standard.Rounding(unit)
	p := message.NewPrinter(tag)

	fixed := m.Amount.Abs().StringFixed(int32(scale))
	whole, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if m.Amount.Round(int32(scale)).IsNegative() {
		b.WriteByte('-')
	}
	b.WriteString(p.Sprint(currency.Symbol(unit)))
	b.WriteByte(' ')
	b.WriteString(groupDigits(p, whole))
	if frac != "" {
		b.WriteString(decimalSeparator(p))
		b.WriteString(frac)
	}
	return b.String()
}

// groupDigits inserts the locale's grouping separators into a run of
// integer digits. Runs too long for int64 are returned as is.
func groupDigits(p *message.Printer, digits string) string {
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return digits
	}
	return p.Sprint(number.Decimal(n))
}

// decimalSeparator returns the separator the printer's locale writes
// between integer and fraction digits.
func decimalSeparator(p *message.Printer) string {
	sep := strings.TrimSuffix(strings.TrimPrefix(p.Sprint(number.Decimal(1.5)), "1"), "5")
	if sep == "" {
		return "."
	}
	return sep
}

// Image is a remote image reference.
type Image struct {
	URL     string `json:"url"`
	AltText string `json:"altText"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
}

// Product is a catalog item as shown on listing pages.
type Product struct {
	ID             string
	Title          string
	Handle         string
	Vendor         string
	Image          *Image
	Price          Money
	CompareAtPrice *Money
}

// OnSale reports whether the compare-at price strictly exceeds the current
// price. Prices in different currencies are never compared.
func (p Product) OnSale() bool {
	if p.CompareAtPrice == nil {
		return false
	}
	if !strings.EqualFold(p.CompareAtPrice.CurrencyCode, p.Price.CurrencyCode) {
		return false
	}
	return p.CompareAtPrice.Amount.GreaterThan(p.Price.Amount)
}

// URL is the storefront path of the product page.
func (p Product) URL() string {
	return "/products/" + p.Handle
}

// Collection is an ordered group of products.
type Collection struct {
	ID       string
	Title    string
	Handle   string
	Image    *Image
	Products []Product
}

// URL is the storefront path of the collection page.
func (c Collection) URL() string {
	return "/collections/" + c.Handle
}
