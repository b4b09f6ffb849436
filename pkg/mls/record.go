// Package mls parses pasted tab-delimited MLS text into normalized
// records. Column layout is discovered from the header row by keyword
// matching, so exports from different MLS systems map onto one schema.
package mls

// Record is one listing or sale row. Numeric-looking fields are stored
// as normalized text (currency symbols and thousands separators
// stripped) and parsed to numbers on demand by consumers, so an
// unparsable cell degrades downstream instead of failing the import.
type Record struct {
	MLSNumber    string
	Status       string
	ListPrice    string
	SalePrice    string
	ListDate     string
	CloseDate    string
	DaysOnMarket string
	PendingDate  string
	LivingArea   string
	YearBuilt    string
	Acres        string
	Bedrooms     string
	Baths        string
	Garage       string
	GarageType   string
	Pool         string
	Concessions  string
	REO          string
	ShortSale    string
	Stories      string
}

// Field names one target column of the import schema.
type Field string

const (
	FieldMLSNumber    Field = "mlsNumber"
	FieldStatus       Field = "status"
	FieldListPrice    Field = "listPrice"
	FieldSalePrice    Field = "salePrice"
	FieldListDate     Field = "listDate"
	FieldCloseDate    Field = "closeDate"
	FieldDaysOnMarket Field = "dom"
	FieldPendingDate  Field = "pendDate"
	FieldLivingArea   Field = "gla"
	FieldYearBuilt    Field = "yearBuilt"
	FieldAcres        Field = "acres"
	FieldBedrooms     Field = "bedrooms"
	FieldBaths        Field = "baths"
	FieldGarage       Field = "garage"
	FieldGarageType   Field = "garageType"
	FieldPool         Field = "pool"
	FieldConcessions  Field = "concessions"
	FieldREO          Field = "reo"
	FieldShortSale    Field = "shortSale"
	FieldStories      Field = "stories"
)

// fieldKeywords lists, per target field, the header substrings that
// identify its column. Matching is case-insensitive and the first
// matching column wins.
var fieldKeywords = map[Field][]string{
	FieldMLSNumber:    {"MLS", "Listing #", "Listing Number"},
	FieldStatus:       {"Status"},
	FieldListPrice:    {"List Price", "Orig Price"},
	FieldSalePrice:    {"Sold Price", "Sale Price", "Sold"},
	FieldListDate:     {"List Date", "Lst Date"},
	FieldCloseDate:    {"Close Date", "Closing Date"},
	FieldDaysOnMarket: {"DOM", "Days on Market"},
	FieldPendingDate:  {"Pend Date", "Pending", "Contract"},
	FieldLivingArea:   {"GLA", "SqFt", "ApxFinSqft", "Livable"},
	FieldYearBuilt:    {"Year Built", "Year"},
	FieldAcres:        {"Acres", "Lot Size"},
	FieldBedrooms:     {"Bed", "Beds"},
	FieldBaths:        {"Bath", "Baths"},
	FieldGarage:       {"Garage Cap", "Garage Count", "Garage"},
	FieldGarageType:   {"Garage Type"},
	FieldPool:         {"Pool", "In-Ground"},
	FieldConcessions:  {"Concessions", "ClsContrib"},
	FieldREO:          {"REO", "FC", "Foreclosure"},
	FieldShortSale:    {"Short Sale"},
	FieldStories:      {"Stories", "Level"},
}

// currencyFields get currency symbols and thousands separators
// stripped; areaFields get thousands separators stripped.
var (
	currencyFields = map[Field]bool{
		FieldListPrice:   true,
		FieldSalePrice:   true,
		FieldConcessions: true,
	}
	areaFields = map[Field]bool{
		FieldLivingArea: true,
	}
)
