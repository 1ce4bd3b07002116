// Package export writes aggregates in their wire form.
//
// The wire form is the same document the data option and data files accept,
// so an exported aggregate can be fed back in to skip aggregation:
//
//	{
//	  "years": {"2024": {"offset": 0, "days": 366}},
//	  "counts": {"2024-60": 2}
//	}
//
// Two formats are supported, JSON and YAML:
//
//	export.FormatJSON(printer, data)               // Write to printer
//	export.WriteFile(data, "graph.yaml", export.YAML) // Write a file
package export
