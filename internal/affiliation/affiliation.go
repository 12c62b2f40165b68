// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package affiliation classifies free-text author affiliations as academic
// or non-academic using fixed keyword lists, and extracts contact emails.
//
// Matching is case-insensitive and unanchored: "med" matches "Medical" and
// "inc" matches "Lincoln". The lists are kept as they are; changing them
// changes which papers qualify.
package affiliation

import (
	"regexp"
	"strings"
)

// academicMarkers veto a non-academic classification when any is present.
var academicMarkers = []string{
	"university", "college", "institute", "school",
	"hospital", "centre", "center", "faculty",
}

// commercialMarkers must appear at least once for a non-academic classification.
var commercialMarkers = []string{
	"pharma", "biotech", "therapeutics", "labs", "inc", "ltd", "gmbh",
	"corporation", "healthcare", "biosciences", "med", "clinical",
}

var emailPattern = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)

// AcademicMarkers returns a copy of the academic marker substrings.
func AcademicMarkers() []string {
	return append([]string(nil), academicMarkers...)
}

// CommercialMarkers returns a copy of the commercial marker substrings.
func CommercialMarkers() []string {
	return append([]string(nil), commercialMarkers...)
}

// IsNonAcademic reports whether text contains no academic marker and at
// least one commercial marker. The empty string is academic.
func IsNonAcademic(text string) bool {
	lower := strings.ToLower(text)
	if containsAny(lower, academicMarkers) {
		return false
	}
	return containsAny(lower, commercialMarkers)
}

// ExtractEmail returns the first email address in text, or "" if none.
func ExtractEmail(text string) string {
	return emailPattern.FindString(text)
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
