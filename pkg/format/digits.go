package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/rbrabson/bigmin/pkg/bigint"
	"github.com/rbrabson/bigmin/pkg/math"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const noValue = "<no value>"

// Printer returns a message printer for the locale, falling back to English if
// the locale can't be parsed.
func Printer(locale string) *message.Printer {
	tag, err := language.Parse(locale)
	if err != nil {
		log.Warningf("Unknown locale %q, using English, error=%s", locale, err.Error())
		tag = language.English
	}
	return message.NewPrinter(tag)
}

// Digits returns a table describing the digits of each value.
func Digits(p *message.Printer, values []*bigint.BigInt) string {
	log.Trace("--> format.Digits")
	defer log.Trace("<-- format.Digits")

	var tableBuffer strings.Builder
	table := tablewriter.NewWriter(&tableBuffer)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.SetNoWhiteSpace(true)
	table.SetHeader([]string{"#", "Digits", "Count", "Nonzero", "Smallest", "Largest"})
	for i, value := range values {
		data := []string{
			strconv.Itoa(i + 1),
			value.String(),
			p.Sprintf("%d", value.NumDigits()),
			p.Sprintf("%d", value.NumNonzeroDigits()),
			digit(p, value.SmallestDigit),
			digit(p, value.LargestDigit),
		}
		table.Append(data)
	}
	table.Render()

	return tableBuffer.String()
}

// Minimum describes the minimum element of values.
func Minimum(values []*bigint.BigInt) string {
	smallest, ok := math.MinOf(values)
	if !ok {
		return fmt.Sprintf("min element of %v is %s", values, noValue)
	}
	return fmt.Sprintf("min element of %v is %v", values, smallest)
}

// ScalarMinimum describes the minimum of plain numbers.
func ScalarMinimum[N math.Number](values []N) string {
	smallest, ok := math.MinOf(math.Scalars(values))
	if !ok {
		return fmt.Sprintf("min element of %v is %s", values, noValue)
	}
	return fmt.Sprintf("min element of %v is %v", values, smallest.Value)
}

// digit formats the result of a digit query.
func digit(p *message.Printer, query func() (uint64, bool)) string {
	d, ok := query()
	if !ok {
		return "-"
	}
	return p.Sprintf("%d", d)
}
