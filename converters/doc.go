// Package converters bridges core.Graph to the gonum graph ecosystem.
//
// ToGonum produces a weighted undirected gonum graph whose node IDs equal
// vertex indices, so results computed by gonum's graph/path and graph/topo
// packages map straight back onto core indices.
package converters
