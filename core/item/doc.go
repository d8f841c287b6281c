// Package item defines the canonical inventory record shared by every part of
// the showroom audit.
//
// A Record describes one physical jewelry item carrying an RFID tag. The tag
// identifier (EPC) is the only identity key: matching, deduplication and the
// reconciliation diff all compare records by EPC and nothing else.
//
// # Required and Optional Attributes
//
// Name, price, category, showroom area, counter and image are always set
// (import parsing fills defaults). The remaining descriptive fields (weights,
// diamond details, supplier, certification...) are pointers; nil means the
// value was absent in the source and is rendered as an empty cell on export.
//
// # Placeholders
//
// When the reader reports a tag that the master inventory does not know,
// Placeholder synthesizes a minimal record so the scan can continue.
//
// # Usage
//
//	idx := item.Index(master)
//	rec, ok := idx["300833B2DDD9014000000000"]
//	if !ok {
//	    rec = item.Placeholder(epc)
//	}
package item
