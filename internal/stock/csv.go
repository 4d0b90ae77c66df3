package stock

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
)

// positionalColumns is the fixed schema assumed for header-less files.
// It matches the CSV export format.
var positionalColumns = []string{"id", "sku", "name", "category", "quantity", "price", "status", "image"}

// headerNames are the column names that mark the first row as a header.
var headerNames = map[string]bool{
	"name": true, "title": true, "sku": true,
	"quantity": true, "qty": true, "price": true, "category": true,
}

// RowKind classifies a parsed CSV row against the existing inventory.
type RowKind int

const (
	RowNew RowKind = iota
	RowConflict
	RowInvalid
)

// Row is one classified import row. For RowConflict, MatchID is the id
// of the existing product the row resolves to (id-match takes
// precedence over sku-match).
type Row struct {
	Kind     RowKind
	MatchID  uint
	SKU      string
	Name     string
	Category string
	Quantity int
	Price    float64
	Image    string
}

// ReadRows parses CSV bytes into normalized key→value maps. If the
// first row contains a recognizable column name it is treated as a
// header; otherwise columns map positionally onto the export schema.
// Field counts may vary per record (ragged files are tolerated).
func ReadRows(r io.Reader) ([]map[string]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	columns := positionalColumns
	hasHeader := false
	for _, cell := range records[0] {
		if headerNames[strings.ToLower(strings.TrimSpace(cell))] {
			hasHeader = true
			break
		}
	}
	if hasHeader {
		columns = make([]string, len(records[0]))
		for i, cell := range records[0] {
			columns[i] = strings.ToLower(strings.TrimSpace(cell))
		}
		records = records[1:]
	}

	rows := make([]map[string]string, 0, len(records))
	for _, rec := range records {
		row := map[string]string{}
		for i, col := range columns {
			if i < len(rec) {
				row[col] = strings.TrimSpace(rec[i])
			}
		}
		rows = append(rows, normalizeRow(row))
	}
	return rows, nil
}

// normalizeRow collapses column aliases: title→name, qty→quantity, and
// barcode→sku when no sku was given.
func normalizeRow(row map[string]string) map[string]string {
	if v, ok := row["title"]; ok && row["name"] == "" {
		row["name"] = v
	}
	if v, ok := row["qty"]; ok && row["quantity"] == "" {
		row["quantity"] = v
	}
	if v, ok := row["barcode"]; ok && row["sku"] == "" {
		row["sku"] = v
	}
	return row
}

// ParseInt accepts integers and numeric strings with a fractional part
// (truncated). Empty and non-numeric input return ok=false.
func ParseInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return int(f), true
}

// ParseFloat parses a number, rejecting empty and non-numeric input.
func ParseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Classify validates a normalized row and resolves it against the
// existing inventory. existingIDs holds current product ids; skuIndex
// maps non-empty SKUs to product ids. Pure: no I/O, no mutation of the
// indexes.
func Classify(row map[string]string, existingIDs map[uint]bool, skuIndex map[string]uint) Row {
	name := row["name"]
	sku := row["sku"]
	category := NormalizeCategory(row["category"])

	qty, qtyOK := ParseInt(row["quantity"])
	price, priceOK := ParseFloat(row["price"])
	if name == "" || !qtyOK || !priceOK || qty < 0 || price < 0 {
		return Row{Kind: RowInvalid}
	}

	out := Row{
		Kind:     RowNew,
		SKU:      sku,
		Name:     name,
		Category: category,
		Quantity: qty,
		Price:    price,
		Image:    row["image"],
	}

	// Id-match wins over sku-match when both resolve.
	if id, ok := ParseInt(row["id"]); ok && id > 0 && existingIDs[uint(id)] {
		out.Kind = RowConflict
		out.MatchID = uint(id)
		return out
	}
	if sku != "" {
		if id, ok := skuIndex[sku]; ok {
			out.Kind = RowConflict
			out.MatchID = id
			return out
		}
	}
	return out
}
