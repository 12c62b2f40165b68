// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for get-papers-list:
// the Paper record emitted for each qualifying PubMed article and the
// configuration consumed by the E-utilities client.
package types

import "strings"

// Columns is the fixed output column order. File writers emit it as the
// header row and the console printer labels each field with it.
var Columns = []string{
	"PubmedID",
	"Title",
	"Publication Date",
	"Non-academicAuthor(s)",
	"CompanyAffiliation(s)",
	"Corresponding Author Email",
}

// FieldSeparator joins multi-valued fields (authors, affiliations) into a
// single display string.
const FieldSeparator = "; "

// JoinField joins values with FieldSeparator.
func JoinField(values []string) string {
	return strings.Join(values, FieldSeparator)
}

// SplitField reverses JoinField. An empty string yields no values.
func SplitField(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, FieldSeparator)
}
