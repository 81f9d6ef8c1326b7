// This file tests validation of the comic metadata record.

package models

import "testing"

func TestComicInfoValidate(t *testing.T) {
	complete := func() ComicInfo {
		return ComicInfo{
			Publisher: "Marvel",
			Series:    "X-Men",
			Volume:    "2009",
			Number:    "12",
			Year:      2013,
			Month:     9,
		}
	}

	testCases := []struct {
		name   string
		mutate func(*ComicInfo)
		valid  bool
	}{
		{"Complete record", func(c *ComicInfo) {}, true},
		{"Missing publisher", func(c *ComicInfo) { c.Publisher = "" }, false},
		{"Missing series", func(c *ComicInfo) { c.Series = "" }, false},
		{"Missing volume", func(c *ComicInfo) { c.Volume = "" }, false},
		{"Missing number", func(c *ComicInfo) { c.Number = "" }, false},
		{"Missing year", func(c *ComicInfo) { c.Year = 0 }, false},
		{"Missing month is still valid", func(c *ComicInfo) { c.Month = 0 }, true},
		{"Non-integer number is valid", func(c *ComicInfo) { c.Number = "12.5" }, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			info := complete()
			tc.mutate(&info)
			if got := info.Validate(); got != tc.valid {
				t.Errorf("Validate() = %v, want %v", got, tc.valid)
			}
		})
	}
}
