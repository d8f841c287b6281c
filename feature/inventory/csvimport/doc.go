// Package csvimport turns inventory CSV exports from the point-of-sale
// system into canonical item.Record values.
//
// # Tokenizer
//
// Reader splits text into rows using standard CSV quoting: fields are comma
// separated, a double-quoted field may contain commas, line breaks and
// doubled quotes ("" decodes to "). Quotes are handled tolerantly; an
// unterminated quote runs to the end of input instead of failing.
//
// # Header Resolution
//
// The first non-blank row is the header. Each cell is trimmed, case-folded
// and looked up in a fixed table ("tag no", "item name", "mrp", "gr.wt",
// "dia wt", "showroom area", ...). Unknown headers are ignored so files may
// carry extra columns. "tag no", "item name" and "mrp" are required.
//
// # Row Handling
//
//   - Blank rows are skipped.
//   - Numeric columns are parsed leniently; text that is not a number becomes
//     0 and is reported as a Warning.
//   - Missing name, category, area, counter and image get defaults.
//   - Rows without a tag identifier are dropped and counted.
//
// Only structural problems fail the import: input with fewer than two rows
// (ErrEmptyOrTooShort) or a missing required header (*MalformedHeaderError).
//
// # Usage
//
//	records, err := csvimport.Parse(file)
//	var mh *csvimport.MalformedHeaderError
//	if errors.As(err, &mh) {
//	    fmt.Println("missing column", mh.Column)
//	}
package csvimport
