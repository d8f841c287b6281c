package item

import "fmt"

const (
	// UnnamedItem is used when an imported row carries no item name.
	UnnamedItem = "Unnamed Item"
	// UncataloguedItem is the name given to placeholder records.
	UncataloguedItem = "Uncatalogued Item"
	// Unknown fills missing category, showroom area and counter values.
	Unknown = "Unknown"
)

// Record is one tagged jewelry item.
type Record struct {
	// EPC is the RFID tag identifier ("Tag No").
	EPC string `json:"epc"`
	// Name is the display name ("Item Name").
	Name string `json:"name"`
	// ImageURL references the item picture ("Image").
	ImageURL string `json:"image_url"`

	// ShowroomArea is the floor area the item belongs to.
	ShowroomArea string `json:"showroom_area"`
	// CounterName is the display counter inside the area.
	CounterName string `json:"counter_name"`

	// Price is the retail price ("Mrp"). Zero is a valid price.
	Price   float64  `json:"price"`
	Costing *float64 `json:"costing,omitempty"`

	Category string  `json:"category"`
	Design   *string `json:"design,omitempty"`
	Remarks  *string `json:"remarks,omitempty"`

	Pc          *float64 `json:"pc,omitempty"`
	GrossWeight *float64 `json:"gr_wt,omitempty"`
	NetWeight   *float64 `json:"net_wt,omitempty"`
	GoldWeight  *float64 `json:"gold_wt,omitempty"`

	DiamondWeight *float64 `json:"dia_wt,omitempty"`
	DiamondPieces *float64 `json:"dia_pc,omitempty"`
	DiamondSize   *string  `json:"dia_size,omitempty"`
	DiamondItem   *string  `json:"dia_item,omitempty"`
	DiamondValue  *float64 `json:"dia_value,omitempty"`
	Rate          *float64 `json:"rate,omitempty"`
	Colour        *string  `json:"colour,omitempty"`
	Clarity       *string  `json:"clarity,omitempty"`
	Size          *string  `json:"size,omitempty"`

	Date *string `json:"date,omitempty"`
	// Hallmark is the "HM" column.
	Hallmark *string `json:"hm,omitempty"`
	// Certificate is the "Certif" column.
	Certificate *string `json:"certif,omitempty"`
	Supplier    *string `json:"supplier,omitempty"`
}

// Valid reports whether the record has a tag identifier.
func (r Record) Valid() bool {
	return r.EPC != ""
}

// PlaceholderImage returns the deterministic image reference for a seed,
// normally the EPC.
func PlaceholderImage(seed string) string {
	if seed == "" {
		seed = "default"
	}
	return fmt.Sprintf("https://picsum.photos/seed/%s/200", seed)
}

// Placeholder synthesizes a record for a scanned tag that has no master match.
func Placeholder(epc string) Record {
	return Record{
		EPC:          epc,
		Name:         UncataloguedItem,
		Category:     Unknown,
		Price:        0,
		ImageURL:     PlaceholderImage(epc),
		ShowroomArea: Unknown,
		CounterName:  Unknown,
	}
}

// Float returns a pointer to v, for building optional numeric fields.
func Float(v float64) *float64 {
	return &v
}

// String returns a pointer to s, for building optional text fields.
func String(s string) *string {
	return &s
}
