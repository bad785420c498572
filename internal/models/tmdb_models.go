// Package models defines data structures for TMDB API responses.
package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// SearchResult is the subset of the TMDB /find response that is consumed.
// Unknown fields in the payload are ignored by encoding/json.
type SearchResult struct {
	TvResults []TvEntry `json:"tv_results"`
}

// TvEntry is a single TV show match returned by /find.
type TvEntry struct {
	ID         int     `json:"id"`
	Title      string  `json:"name"`
	MediaType  string  `json:"media_type"`
	Popularity float64 `json:"popularity"`
	// Rating carries TMDB's vote_count as-is.
	Rating float64 `json:"vote_count"`
}

// String dumps the fields in declaration order.
func (e TvEntry) String() string {
	return fmt.Sprintf("TvEntry(id=%d, title=%s, mediaType=%s, popularity=%s, rating=%s)",
		e.ID, e.Title, e.MediaType, formatDouble(e.Popularity), formatDouble(e.Rating))
}

// formatDouble renders f the way the JVM's Double.toString does: plain
// notation with at least one fractional digit inside [1e-3, 1e7), computerized
// scientific notation ("1.0E7", "1.0E-4") outside it.
func formatDouble(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}

	abs := math.Abs(f)
	if abs == 0 || (abs >= 1e-3 && abs < 1e7) {
		return withFraction(strconv.FormatFloat(f, 'f', -1, 64))
	}

	// 'E' yields e.g. "1.2345E+08"; strip the sign padding of the exponent.
	s := strconv.FormatFloat(f, 'E', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "E")
	n, _ := strconv.Atoi(exp)
	return withFraction(mantissa) + "E" + strconv.Itoa(n)
}

func withFraction(s string) string {
	if strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}
