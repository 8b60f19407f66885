package main

import "strconv"

// formatNumber renders a dimension or volume the shortest way that round
// trips, so 4 prints as "4" and 2.5 as "2.5".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
