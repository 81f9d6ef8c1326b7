// This file defines the metadata record extracted from a comic archive.
// Only the fields needed to derive a link path are kept.

package models

// ComicInfo holds the subset of the embedded ComicInfo.xml metadata used
// to place a comic in the link tree. Number stays a string because issue
// numbers are not always integers ("12.5", "Annual"). Volume is an opaque
// label, never used for arithmetic.
type ComicInfo struct {
	Publisher string
	Series    string
	Volume    string
	Number    string
	Year      int
	Month     int
}

// Validate reports whether all required fields are present. Required
// fields are Publisher, Series, Volume, Number and Year; Month is
// optional and does not affect validity.
func (c *ComicInfo) Validate() bool {
	return c.Publisher != "" &&
		c.Series != "" &&
		c.Volume != "" &&
		c.Number != "" &&
		c.Year != 0
}
