// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// textPolicy strips every tag and keeps character data.
var textPolicy = bluemonday.StrictPolicy()

// cdataSection matches an XML CDATA section, which the HTML sanitizer would
// otherwise drop as a comment.
var cdataSection = regexp.MustCompile(`(?s)<!\[CDATA\[(.*?)\]\]>`)

// EFetch PubmedArticleSet XML structures. Only the fields used to build a
// Paper are mapped.
type articleSet struct {
	Articles []pubmedArticle `xml:"PubmedArticle"`
}

type pubmedArticle struct {
	Citation medlineCitation `xml:"MedlineCitation"`
}

type medlineCitation struct {
	PMID    string  `xml:"PMID"`
	Article article `xml:"Article"`
}

type article struct {
	Title      *markupText `xml:"ArticleTitle"`
	PubDate    *pubDate    `xml:"Journal>JournalIssue>PubDate"`
	AuthorList *authorList `xml:"AuthorList"`
}

type authorList struct {
	Authors []author `xml:"Author"`
}

type author struct {
	LastName       string       `xml:"LastName"`
	ForeName       string       `xml:"ForeName"`
	CollectiveName string       `xml:"CollectiveName"`
	Affiliations   []markupText `xml:"AffiliationInfo>Affiliation"`
}

// displayName joins the non-empty ForeName and LastName with a space. Group
// authors carry only a CollectiveName, which is used instead.
func (a author) displayName() string {
	var parts []string
	if a.ForeName != "" {
		parts = append(parts, a.ForeName)
	}
	if a.LastName != "" {
		parts = append(parts, a.LastName)
	}
	if len(parts) == 0 {
		return a.CollectiveName
	}
	return strings.Join(parts, " ")
}

type pubDate struct {
	Year  string `xml:"Year"`
	Month string `xml:"Month"`
	Day   string `xml:"Day"`
}

// String formats the date as "year-month-day", substituting "01" for a
// missing month or day. A missing year is left empty.
func (d pubDate) String() string {
	month, day := d.Month, d.Day
	if month == "" {
		month = "01"
	}
	if day == "" {
		day = "01"
	}
	return d.Year + "-" + month + "-" + day
}

// markupText captures an element's raw content, which in PubMed may carry
// inline tags such as <i>, <sup> or <sub>.
type markupText struct {
	Inner string `xml:",innerxml"`
}

// text returns the element content with tags removed and entities decoded.
// CDATA sections are kept as text.
func (m markupText) text() string {
	inner := cdataSection.ReplaceAllStringFunc(m.Inner, func(s string) string {
		return html.EscapeString(cdataSection.FindStringSubmatch(s)[1])
	})
	return html.UnescapeString(textPolicy.Sanitize(inner))
}
