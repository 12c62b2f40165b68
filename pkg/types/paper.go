// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

const (
	// NoTitle replaces a missing ArticleTitle.
	NoTitle = "No Title"

	// UnknownDate is used when the record has no PubDate block.
	UnknownDate = "Unknown"

	// EmailNotAvailable is used when no non-academic affiliation carries an email.
	EmailNotAvailable = "N/A"
)

// Paper is one PubMed article with at least one non-academic author.
// Papers are assembled once by the fetch stage and not modified afterwards.
type Paper struct {
	// PubmedID is the PMID of the record.
	PubmedID string `json:"pubmed_id" yaml:"pubmed_id"`

	// Title is the article title, or NoTitle.
	Title string `json:"title" yaml:"title"`

	// PublicationDate is "year-month-day" as found in the journal issue
	// PubDate, with "01" substituted for a missing month or day.
	PublicationDate string `json:"publication_date" yaml:"publication_date"`

	// NonAcademicAuthors lists authors with a non-academic affiliation,
	// deduplicated in document order.
	NonAcademicAuthors []string `json:"non_academic_authors" yaml:"non_academic_authors"`

	// CompanyAffiliations lists the non-academic affiliation strings,
	// trimmed and deduplicated in document order.
	CompanyAffiliations []string `json:"company_affiliations" yaml:"company_affiliations"`

	// CorrespondingEmail is the first email found in a non-academic
	// affiliation, or EmailNotAvailable.
	CorrespondingEmail string `json:"corresponding_email" yaml:"corresponding_email"`
}

// Row returns the display values of p in Columns order.
func (p Paper) Row() []string {
	return []string{
		p.PubmedID,
		p.Title,
		p.PublicationDate,
		JoinField(p.NonAcademicAuthors),
		JoinField(p.CompanyAffiliations),
		p.CorrespondingEmail,
	}
}
