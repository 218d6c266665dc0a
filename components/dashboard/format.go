package dashboard

import (
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/nisiafloresta/painel-bi/components/dataset"
	"github.com/nisiafloresta/painel-bi/components/transparency"
)

var defaultLocale = language.BrazilianPortuguese

// Formatter prints indicator values the way the municipality publishes them
// (pt-BR grouping and decimal separators).
type Formatter struct {
	printer *message.Printer
}

// NewFormatter builds a formatter for tag. The zero tag means pt-BR.
func NewFormatter(tag language.Tag) *Formatter {
	if tag == language.Und {
		tag = defaultLocale
	}
	return &Formatter{printer: message.NewPrinter(tag)}
}

// Integer prints v rounded with thousands separators.
func (f *Formatter) Integer(v float64) string {
	return f.printer.Sprint(number.Decimal(math.Round(v), number.MaxFractionDigits(0)))
}

// Decimal prints v with up to digits fraction digits.
func (f *Formatter) Decimal(v float64, digits int) string {
	return f.printer.Sprint(number.Decimal(v, number.MaxFractionDigits(digits)))
}

// Currency prints v in reais, abbreviating millions.
func (f *Formatter) Currency(v float64) string {
	if math.Abs(v) >= 1e6 {
		return "R$ " + f.Decimal(v/1e6, 1) + " mi"
	}
	return "R$ " + f.Integer(v)
}

// Percent prints v (already in percent units) with a trailing %.
func (f *Formatter) Percent(v float64) string {
	return f.Decimal(v, 1) + "%"
}

// Indicator prints an indicator value, preferring its fixed display text.
func (f *Formatter) Indicator(ind dataset.Indicator) string {
	if display := strings.TrimSpace(ind.Display); display != "" {
		return display
	}
	switch ind.Format {
	case dataset.FormatDecimal:
		return f.Decimal(ind.Value, 3)
	case dataset.FormatCurrency:
		return f.Currency(ind.Value)
	case dataset.FormatPercent:
		return f.Percent(ind.Value)
	default:
		return f.Integer(ind.Value)
	}
}

// Card builds the KPI tile for ind.
func (f *Formatter) Card(ind dataset.Indicator) Card {
	return Card{
		Key:       ind.Key,
		Label:     ind.Label,
		Value:     f.Indicator(ind),
		Unit:      ind.Unit,
		Reference: ind.Reference,
		Badge:     transparency.For(ind.Provenance, ind.Source),
	}
}

// Cards builds one tile per indicator.
func (f *Formatter) Cards(indicators []dataset.Indicator) []Card {
	out := make([]Card, len(indicators))
	for i, ind := range indicators {
		out[i] = f.Card(ind)
	}
	return out
}
