// Package content reads the inputs of a post graph from disk.
//
// Three sources are supported:
//
//   - a content directory of markdown or HTML pages with front matter
//     (YAML "---", TOML "+++" or JSON "{ }"), read by Loader.LoadDir;
//   - a posts file, a YAML or JSON list of {date} or {data: {date}} records;
//   - a data file holding a precomputed aggregate in wire form.
//
// Source picks one of them for a render call.
package content
