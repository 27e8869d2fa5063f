package hxshop

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

func usd(amount string) Money {
	return Money{Amount: decimal.RequireFromString(amount), CurrencyCode: "USD"}
}

func TestProductOnSale(t *testing.T) {
	tests := []struct {
		name      string
		price     Money
		compareAt *Money
		want      bool
	}{
		{"no compare-at", usd("10"), nil, false},
		{"compare-at greater", usd("10"), ptr(usd("15")), true},
		{"compare-at equal", usd("20"), ptr(usd("20.00")), false},
		{"compare-at lower", usd("20"), ptr(usd("5")), false},
		// "9.5" > "10.0" as strings; numerically it is lower
		{"numeric not lexical", usd("10.0"), ptr(usd("9.5")), false},
		{"numeric greater with more digits", usd("9.99"), ptr(usd("100")), true},
		{"different currency", usd("10"), &Money{Amount: decimal.RequireFromString("15"), CurrencyCode: "EUR"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{Price: tt.price, CompareAtPrice: tt.compareAt}
			if got := p.OnSale(); got != tt.want {
				t.Errorf("OnSale() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMoneyFormat(t *testing.T) {
	got := usd("10.5").Format(language.English)
	if !strings.Contains(got, "10.50") {
		t.Errorf("Format() = %q, want it to contain 10.50", got)
	}
	if !strings.Contains(got, "$") {
		t.Errorf("Format() = %q, want a currency symbol", got)
	}

	unknown := Money{Amount: decimal.RequireFromString("3"), CurrencyCode: "ZZZ"}
	if got := unknown.Format(language.English); got != "3.00 ZZZ" {
		t.Errorf("Format(unknown currency) = %q, want %q", got, "3.00 ZZZ")
	}
}

func TestMoneyFormatExact(t *testing.T) {
	tests := []struct {
		name  string
		money Money
		tag   language.Tag
		want  string
	}{
		{"beyond float precision", usd("12345678901234567.89"), language.English, "$ 12,345,678,901,234,567.89"},
		{"rounds to currency scale", usd("0.125"), language.English, "$ 0.13"},
		{"negative", usd("-5"), language.English, "-$ 5.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.money.Format(tt.tag); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMoneyFormatLocaleDigits(t *testing.T) {
	tests := []struct {
		name   string
		money  Money
		tag    language.Tag
		digits string
	}{
		{"german separators", usd("1234.5"), language.German, " 1.234,50"},
		{"zero-decimal currency", Money{Amount: decimal.RequireFromString("1234"), CurrencyCode: "JPY"}, language.English, " 1,234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.money.Format(tt.tag); !strings.HasSuffix(got, tt.digits) {
				t.Errorf("Format() = %q, want digits %q", got, tt.digits)
			}
		})
	}
}

func TestCatalogURLs(t *testing.T) {
	if got := (Product{Handle: "loop-kit"}).URL(); got != "/products/loop-kit" {
		t.Errorf("Product.URL() = %q", got)
	}
	if got := (Collection{Handle: "drums"}).URL(); got != "/collections/drums" {
		t.Errorf("Collection.URL() = %q", got)
	}
}

func ptr[T any](v T) *T {
	return &v
}
