package csv

import (
	gocsv "encoding/csv"
	"io"
	"strings"
)

// Column names as they appear in the source CSV files.
const (
	ColOrderId    = "OrderID"
	ColProduct    = "Product"
	ColCategory   = "Category"
	ColQuantity   = "Quantity"
	ColPrice      = "Price"
	ColOrderDate  = "OrderDate"
	ColCustomerId = "CustomerID"
	ColCountry    = "Country"
	ColTotalValue = "TotalValue"
	ColSegment    = "CustomerSegment"
)

// RawOrder is one CSV record, untyped.
//
// Fields for columns not present in the file are left empty.
type RawOrder struct {
	OrderId    string
	Product    string
	Category   string
	Quantity   string
	Price      string
	OrderDate  string
	CustomerId string
	Country    string
	TotalValue string
	Segment    string

	// Line is the 1-based line number in the source, for diagnostics.
	Line int
}

// Table is a parsed CSV file: its (trimmed) header and all records.
type Table struct {
	Columns []string
	Records []RawOrder
}

func (t Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Read parses CSV content into a Table.
//
// The first row is the header. Header names are trimmed.
// Records shorter than the header are allowed; missing cells are empty.
func Read(r io.Reader) (Table, error) {
	cr := gocsv.NewReader(r)
	cr.FieldsPerRecord = -1 // ragged rows are cleaned up later, not rejected here

	header, err := cr.Read()
	if err == io.EOF {
		return Table{Columns: []string{}, Records: []RawOrder{}}, nil
	}
	if err != nil {
		return Table{}, err
	}

	columns := make([]string, len(header))
	index := map[string]int{}
	for nth, name := range header {
		name = strings.TrimSpace(name)
		columns[nth] = name
		index[name] = nth
	}

	pick := func(record []string, col string) string {
		nth, ok := index[col]
		if !ok || len(record) <= nth {
			return ""
		}
		return record[nth]
	}

	records := []RawOrder{}
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Table{}, err
		}
		line += 1

		records = append(records, RawOrder{
			OrderId:    pick(record, ColOrderId),
			Product:    pick(record, ColProduct),
			Category:   pick(record, ColCategory),
			Quantity:   pick(record, ColQuantity),
			Price:      pick(record, ColPrice),
			OrderDate:  pick(record, ColOrderDate),
			CustomerId: pick(record, ColCustomerId),
			Country:    pick(record, ColCountry),
			TotalValue: pick(record, ColTotalValue),
			Segment:    pick(record, ColSegment),
			Line:       line,
		})
	}

	return Table{Columns: columns, Records: records}, nil
}
