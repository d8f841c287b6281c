package csvimport

import (
	"strings"

	"showroom-audit/core/item"

	"golang.org/x/text/cases"
)

// Field identifies a canonical record attribute a CSV column can populate.
type Field int

const (
	FieldEPC Field = iota
	FieldName
	FieldImage
	FieldShowroomArea
	FieldCounterName
	FieldPrice
	FieldCosting
	FieldCategory
	FieldDesign
	FieldRemarks
	FieldPc
	FieldGrossWeight
	FieldNetWeight
	FieldGoldWeight
	FieldDiamondWeight
	FieldDiamondPieces
	FieldDiamondSize
	FieldDiamondItem
	FieldDiamondValue
	FieldRate
	FieldColour
	FieldClarity
	FieldSize
	FieldDate
	FieldHallmark
	FieldCertificate
	FieldSupplier
)

// Required headers, checked in this order.
const (
	HeaderTagNo    = "tag no"
	HeaderItemName = "item name"
	HeaderMrp      = "mrp"
)

var requiredHeaders = []string{HeaderTagNo, HeaderItemName, HeaderMrp}

// headerFields maps normalized header names to fields.
var headerFields = map[string]Field{
	HeaderTagNo:     FieldEPC,
	HeaderItemName:  FieldName,
	"image":         FieldImage,
	"showroom area": FieldShowroomArea,
	"counter name":  FieldCounterName,
	HeaderMrp:       FieldPrice,
	"costing":       FieldCosting,
	"category":      FieldCategory,
	"design":        FieldDesign,
	"remarks":       FieldRemarks,
	"pc":            FieldPc,
	"gr.wt":         FieldGrossWeight,
	"n.wt":          FieldNetWeight,
	"gold wt":       FieldGoldWeight,
	"dia wt":        FieldDiamondWeight,
	"dia pc":        FieldDiamondPieces,
	"dia size":      FieldDiamondSize,
	"dia item":      FieldDiamondItem,
	"dia value":     FieldDiamondValue,
	"rate":          FieldRate,
	"colour":        FieldColour,
	"clarity":       FieldClarity,
	"size":          FieldSize,
	"date":          FieldDate,
	"hm":            FieldHallmark,
	"certif":        FieldCertificate,
	"supplier":      FieldSupplier,
}

// fieldSpec describes how a field is written into a record.
// Exactly one of setText or setNumber is set.
type fieldSpec struct {
	setText   func(r *item.Record, v string)
	setNumber func(r *item.Record, v float64)
	// optional numeric fields stay nil on an empty cell
	optional bool
}

func text(set func(r *item.Record, v string)) fieldSpec {
	return fieldSpec{setText: set}
}

func optText(ptr func(r *item.Record) **string) fieldSpec {
	return fieldSpec{setText: func(r *item.Record, v string) {
		*ptr(r) = item.String(v)
	}, optional: true}
}

func optNumber(ptr func(r *item.Record) **float64) fieldSpec {
	return fieldSpec{setNumber: func(r *item.Record, v float64) {
		*ptr(r) = item.Float(v)
	}, optional: true}
}

var fieldSpecs = map[Field]fieldSpec{
	FieldEPC:          text(func(r *item.Record, v string) { r.EPC = v }),
	FieldName:         text(func(r *item.Record, v string) { r.Name = v }),
	FieldImage:        text(func(r *item.Record, v string) { r.ImageURL = v }),
	FieldShowroomArea: text(func(r *item.Record, v string) { r.ShowroomArea = v }),
	FieldCounterName:  text(func(r *item.Record, v string) { r.CounterName = v }),
	FieldCategory:     text(func(r *item.Record, v string) { r.Category = v }),
	FieldPrice:        {setNumber: func(r *item.Record, v float64) { r.Price = v }},

	FieldCosting:       optNumber(func(r *item.Record) **float64 { return &r.Costing }),
	FieldPc:            optNumber(func(r *item.Record) **float64 { return &r.Pc }),
	FieldGrossWeight:   optNumber(func(r *item.Record) **float64 { return &r.GrossWeight }),
	FieldNetWeight:     optNumber(func(r *item.Record) **float64 { return &r.NetWeight }),
	FieldGoldWeight:    optNumber(func(r *item.Record) **float64 { return &r.GoldWeight }),
	FieldDiamondWeight: optNumber(func(r *item.Record) **float64 { return &r.DiamondWeight }),
	FieldDiamondPieces: optNumber(func(r *item.Record) **float64 { return &r.DiamondPieces }),
	FieldDiamondValue:  optNumber(func(r *item.Record) **float64 { return &r.DiamondValue }),
	FieldRate:          optNumber(func(r *item.Record) **float64 { return &r.Rate }),

	FieldDesign:      optText(func(r *item.Record) **string { return &r.Design }),
	FieldRemarks:     optText(func(r *item.Record) **string { return &r.Remarks }),
	FieldDiamondSize: optText(func(r *item.Record) **string { return &r.DiamondSize }),
	FieldDiamondItem: optText(func(r *item.Record) **string { return &r.DiamondItem }),
	FieldColour:      optText(func(r *item.Record) **string { return &r.Colour }),
	FieldClarity:     optText(func(r *item.Record) **string { return &r.Clarity }),
	FieldSize:        optText(func(r *item.Record) **string { return &r.Size }),
	FieldDate:        optText(func(r *item.Record) **string { return &r.Date }),
	FieldHallmark:    optText(func(r *item.Record) **string { return &r.Hallmark }),
	FieldCertificate: optText(func(r *item.Record) **string { return &r.Certificate }),
	FieldSupplier:    optText(func(r *item.Record) **string { return &r.Supplier }),
}

// NormalizeHeader trims and case-folds a header cell.
func NormalizeHeader(h string) string {
	// Casers keep state, so one is built per call.
	return cases.Fold().String(strings.TrimSpace(h))
}

// LookupHeader resolves a raw header cell to its field.
func LookupHeader(h string) (Field, bool) {
	f, ok := headerFields[NormalizeHeader(h)]
	return f, ok
}

// IsNumeric reports whether a field holds a number.
func (f Field) IsNumeric() bool {
	return fieldSpecs[f].setNumber != nil
}
