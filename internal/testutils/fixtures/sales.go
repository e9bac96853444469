// Deterministic sales datasets for import pipeline tests.
package fixtures

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

type product struct {
	name     string
	category string
	minPrice float64
	maxPrice float64
}

var products = []product{
	{"Laptop", "Electronics", 500, 2000},
	{"Smartphone", "Electronics", 200, 1200},
	{"Headphones", "Electronics", 20, 350},
	{"Monitor", "Electronics", 100, 700},
	{"Desk", "Furniture", 80, 600},
	{"Office Chair", "Furniture", 50, 400},
	{"Bookshelf", "Furniture", 40, 250},
	{"Coffee Maker", "Appliances", 25, 200},
	{"Blender", "Appliances", 20, 150},
	{"Novel", "Books", 5, 30},
	{"Cookbook", "Books", 10, 45},
	{"Running Shoes", "Sports", 40, 180},
	{"Yoga Mat", "Sports", 10, 60},
}

var countries = []string{
	"Germany", "France", "Italy", "Spain", "Netherlands",
	"Poland", "Sweden", "Austria", "Belgium", "Portugal",
}

// SalesCSV renders a CSV dataset with n valid records.
//
// The same seed always yields the same dataset.
func SalesCSV(n int, seed int64) string {
	rnd := rand.New(rand.NewSource(seed))
	sb := new(strings.Builder)
	fmt.Fprintln(sb, "OrderID,Product,Category,Quantity,Price,OrderDate,CustomerID,Country")

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for nth := 0; nth < n; nth += 1 {
		p := products[rnd.Intn(len(products))]
		quantity := 1 + rnd.Intn(5)
		price := p.minPrice + rnd.Float64()*(p.maxPrice-p.minPrice)
		orderDate := start.AddDate(0, 0, rnd.Intn(365))
		customerId := 1 + rnd.Intn(500)
		country := countries[rnd.Intn(len(countries))]

		fmt.Fprintf(
			sb, "ORD-%06d,%s,%s,%d,%.2f,%s,%d,%s\n",
			nth+1, p.name, p.category, quantity, price,
			orderDate.Format("2006-01-02"), customerId, country,
		)
	}

	return sb.String()
}

// MessySalesCSV is SalesCSV plus records a cleaning pass should reject:
// blank fields, non-numeric values, non-positive amounts and duplicates.
//
// It returns the CSV content and how many junk records it appended.
func MessySalesCSV(n int, seed int64) (string, int) {
	sb := new(strings.Builder)
	sb.WriteString(SalesCSV(n, seed))

	junk := []string{
		// no order id
		",Laptop,Electronics,1,99.99,2024-03-01,1,Germany",
		// non-numeric quantity
		"ORD-junk-1,Laptop,Electronics,two,99.99,2024-03-01,1,Germany",
		// zero quantity
		"ORD-junk-2,Laptop,Electronics,0,99.99,2024-03-01,1,Germany",
		// negative price
		"ORD-junk-3,Laptop,Electronics,1,-5,2024-03-01,1,Germany",
		// unparseable date
		"ORD-junk-4,Laptop,Electronics,1,99.99,someday,1,Germany",
	}
	for _, line := range junk {
		fmt.Fprintln(sb, line)
	}

	return sb.String(), len(junk)
}
