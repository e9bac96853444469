package validate

import (
	"fmt"
	"strconv"
	"strings"

	kcsv "github.com/cartload/cartload/pkg/loader/csv"
	xe "github.com/cartload/cartload/pkg/errors"
)

// RequiredColumns must all be present in an import file.
var RequiredColumns = []string{
	kcsv.ColOrderId,
	kcsv.ColProduct,
	kcsv.ColCategory,
	kcsv.ColQuantity,
	kcsv.ColPrice,
	kcsv.ColOrderDate,
	kcsv.ColCustomerId,
	kcsv.ColCountry,
}

// Structure checks a parsed table before cleaning.
//
// Missing required columns are fatal and abort the import.
// Everything else is reported as issues; the cleaning stage
// drops or repairs the offending records.
func Structure(table kcsv.Table) ([]string, error) {
	missing := []string{}
	for _, col := range RequiredColumns {
		if !table.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	if 0 < len(missing) {
		return nil, xe.Wrap(fmt.Errorf(
			"missing required columns: %s", strings.Join(missing, ", "),
		))
	}

	issues := []string{}

	report := func(lines []int, format string) {
		if len(lines) == 0 {
			return
		}
		issues = append(issues, fmt.Sprintf(format, len(lines))+" ("+lineRefs(lines)+")")
	}

	blankOrderIds := []int{}
	blankProducts := []int{}
	badQuantities := []int{}
	nonPositiveQuantities := []int{}
	badPrices := []int{}
	nonPositivePrices := []int{}
	badCustomerIds := []int{}
	badDates := []int{}
	for _, rec := range table.Records {
		if strings.TrimSpace(rec.OrderId) == "" {
			blankOrderIds = append(blankOrderIds, rec.Line)
		}
		if strings.TrimSpace(rec.Product) == "" {
			blankProducts = append(blankProducts, rec.Line)
		}

		if q := strings.TrimSpace(rec.Quantity); q != "" {
			if n, err := strconv.Atoi(q); err != nil {
				badQuantities = append(badQuantities, rec.Line)
			} else if n <= 0 {
				nonPositiveQuantities = append(nonPositiveQuantities, rec.Line)
			}
		}
		if p := strings.TrimSpace(rec.Price); p != "" {
			if v, err := strconv.ParseFloat(p, 64); err != nil {
				badPrices = append(badPrices, rec.Line)
			} else if v <= 0 {
				nonPositivePrices = append(nonPositivePrices, rec.Line)
			}
		}
		if c := strings.TrimSpace(rec.CustomerId); c != "" {
			if _, err := strconv.Atoi(c); err != nil {
				badCustomerIds = append(badCustomerIds, rec.Line)
			}
		}
		if d := strings.TrimSpace(rec.OrderDate); d != "" {
			if !ParseableDate(d) {
				badDates = append(badDates, rec.Line)
			}
		}
	}

	report(blankOrderIds, "%d records have an empty OrderID")
	report(blankProducts, "%d records have an empty Product")
	report(badQuantities, "%d records have a non-numeric Quantity")
	report(nonPositiveQuantities, "%d records have a zero or negative Quantity")
	report(badPrices, "%d records have a non-numeric Price")
	report(nonPositivePrices, "%d records have a zero or negative Price")
	report(badCustomerIds, "%d records have a non-numeric CustomerID")
	report(badDates, "%d records have an unparseable OrderDate")

	return issues, nil
}

// lineRefs renders source line numbers like "line 4" or "lines 4, 7, ...".
// Listing is capped so one broken column does not flood the log.
func lineRefs(lines []int) string {
	const shownAtMost = 5

	noun := "lines"
	if len(lines) == 1 {
		noun = "line"
	}

	shown := lines
	suffix := ""
	if shownAtMost < len(shown) {
		shown = shown[:shownAtMost]
		suffix = ", ..."
	}

	refs := make([]string, len(shown))
	for i, line := range shown {
		refs[i] = strconv.Itoa(line)
	}
	return noun + " " + strings.Join(refs, ", ") + suffix
}

// DateLayouts are the accepted OrderDate formats, tried in order.
var DateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"2006/01/02",
	"01/02/2006",
}

func ParseableDate(value string) bool {
	_, ok := ParseDate(value)
	return ok
}
