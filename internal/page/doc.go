// Package page renders standalone preview pages around a post graph.
//
// Pages are html/template files with optional YAML front matter naming and
// describing them. A page calls postGraph (and graphOptions) from
// postgraph.FuncMap:
//
//	---
//	name: archive
//	description: Newest year first, linked to the year archives
//	---
//	<body>{{postGraph .Posts (graphOptions "sort" "desc" "hyperlinks" true)}}</body>
//
// Templates are looked up by name in .postgraph/templates, then in the
// templates directory under the user config dir, then among the built-ins.
package page
