// Package tsplib reads and writes Euclidean instances in the TSPLIB text
// format:
//
//	NAME : Atlanta
//	COMMENT : 20 locations in Atlanta
//	DIMENSION : 20
//	EDGE_WEIGHT_TYPE : EUC_2D
//	NODE_COORD_SECTION
//	1 33665568.000000 -84411070.000000
//	...
//	EOF
//
// Only EUC_2D (or no EDGE_WEIGHT_TYPE at all) is accepted. Node labels are
// read but not trusted: points are numbered 0..n-1 in file order and writers
// print index+1.
//
// Files ending in .gz, .zst or .lz4 are decompressed transparently.
package tsplib
