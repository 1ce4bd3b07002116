// Package termgraph draws post-activity heatmaps in the terminal.
//
// Each year is a grid of seven rows (Monday through Sunday) and one column per
// week, colored with the same palette the HTML renderer uses:
//
//	2024
//	Mon   ■ ■ ■ ■ ...
//	Tue ■ ■ ■ ■ ■ ...
//	...
//	12 posts on 9 days
package termgraph
