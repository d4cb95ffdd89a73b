// Package money formatea montos en rupias como los muestra el portal ("Rs. 245,000").
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Prefix símbolo de moneda del marketplace.
const Prefix = "Rs. "

var printer = message.NewPrinter(language.English)

// Format devuelve el monto con separador de miles. Los decimales solo se muestran
// cuando el monto no es entero (redondeado a 2 cifras).
func Format(d decimal.Decimal) string {
	r := d.Round(2)
	if r.Equal(r.Truncate(0)) {
		return Prefix + printer.Sprintf("%d", r.IntPart())
	}
	f, _ := r.Float64()
	return Prefix + printer.Sprintf("%.2f", f)
}

// Percent formatea una tasa como "12.5%".
func Percent(d decimal.Decimal) string {
	return d.Round(2).String() + "%"
}
