package format

import "strconv"

// Marker returns the placeholder text for the n-th parameter (1-based).
type Marker func(n int) string

// MarkerQuestion is the unnumbered ? marker.
func MarkerQuestion(int) string { return "?" }

// MarkerDollar is the $n marker.
func MarkerDollar(n int) string { return "$" + strconv.Itoa(n) }

// MarkerAtP is the @Pn marker.
func MarkerAtP(n int) string { return "@P" + strconv.Itoa(n) }

// MarkerColon is the :n marker.
func MarkerColon(n int) string { return ":" + strconv.Itoa(n) }
