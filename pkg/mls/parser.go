package mls

import (
	"strings"
)

// ResolveColumns maps each target field to the index of the first
// header column containing one of its keywords, case-insensitively.
// Fields with no matching column are absent from the result.
func ResolveColumns(header []string) map[Field]int {
	cols := make(map[Field]int)
	for field, keywords := range fieldKeywords {
		for i, h := range header {
			if headerMatches(h, keywords) {
				cols[field] = i
				break
			}
		}
	}
	return cols
}

func headerMatches(header string, keywords []string) bool {
	h := strings.ToLower(header)
	for _, k := range keywords {
		if strings.Contains(h, strings.ToLower(k)) {
			return true
		}
	}
	return false
}

// Parse converts raw pasted text (tab-delimited, first line a header
// row) into records. Rows with MLS number, sale price and list price
// all blank are discarded as non-data lines; everything else is kept
// as-is. Parse never fails on malformed input; at worst it returns no
// records. The result is intended to wholesale-replace any previously
// imported collection.
func Parse(raw string) []Record {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if len(lines) < 2 {
		return nil
	}

	header := strings.Split(strings.TrimRight(lines[0], "\r"), "\t")
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	cols := ResolveColumns(header)

	var records []Record
	for _, line := range lines[1:] {
		cells := strings.Split(strings.TrimRight(line, "\r"), "\t")
		get := func(f Field) string {
			return cellValue(cols, cells, f)
		}

		r := Record{
			MLSNumber:    get(FieldMLSNumber),
			Status:       get(FieldStatus),
			ListPrice:    get(FieldListPrice),
			SalePrice:    get(FieldSalePrice),
			ListDate:     get(FieldListDate),
			CloseDate:    get(FieldCloseDate),
			DaysOnMarket: get(FieldDaysOnMarket),
			PendingDate:  get(FieldPendingDate),
			LivingArea:   get(FieldLivingArea),
			YearBuilt:    get(FieldYearBuilt),
			Acres:        get(FieldAcres),
			Bedrooms:     get(FieldBedrooms),
			Baths:        get(FieldBaths),
			Garage:       get(FieldGarage),
			GarageType:   get(FieldGarageType),
			Pool:         get(FieldPool),
			Concessions:  get(FieldConcessions),
			REO:          get(FieldREO),
			ShortSale:    get(FieldShortSale),
			Stories:      get(FieldStories),
		}

		if r.MLSNumber == "" && r.SalePrice == "" && r.ListPrice == "" {
			continue
		}
		records = append(records, r)
	}
	return records
}

// cellValue extracts and normalizes one cell. A field with no resolved
// column, or a row shorter than the column index, yields "".
func cellValue(cols map[Field]int, cells []string, f Field) string {
	idx, ok := cols[f]
	if !ok || idx >= len(cells) {
		return ""
	}
	v := strings.TrimSpace(cells[idx])
	switch {
	case currencyFields[f]:
		v = strings.NewReplacer("$", "", ",", "").Replace(v)
	case areaFields[f]:
		v = strings.ReplaceAll(v, ",", "")
	}
	return v
}
