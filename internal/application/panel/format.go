package panel

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	billion = decimal.New(1, 9)
	million = decimal.New(1, 6)
)

// Formatter formatea cifras del panel con la convención indonesia (separador de miles ".").
type Formatter struct {
	p *message.Printer
}

// NewFormatter construye el formateador para id-ID.
func NewFormatter() *Formatter {
	return &Formatter{p: message.NewPrinter(language.Indonesian)}
}

// Count entero con separador de miles: 1240 → "1.240".
func (f *Formatter) Count(n int) string {
	return f.p.Sprintf("%d", n)
}

// Rupiah monto abreviado: miliar → "M", juta → "jt". 248e9 → "Rp 248M", 82e6 → "Rp 82jt".
func (f *Formatter) Rupiah(amount decimal.Decimal) string {
	switch {
	case amount.Abs().GreaterThanOrEqual(billion):
		return "Rp " + short(amount.Div(billion)) + "M"
	case amount.Abs().GreaterThanOrEqual(million):
		return "Rp " + short(amount.Div(million)) + "jt"
	default:
		return "Rp " + f.p.Sprintf("%d", amount.Round(0).IntPart())
	}
}

func short(d decimal.Decimal) string {
	s := d.Round(1).String()
	return strings.TrimSuffix(s, ".0")
}
