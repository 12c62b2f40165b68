// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/get-papers-list/internal/affiliation"
	"github.com/pdiddy/get-papers-list/internal/httputil"
	"github.com/pdiddy/get-papers-list/pkg/types"
)

const debugTitleLen = 60

// FetchPapers retrieves the records for ids in a single EFetch request and
// returns, in document order, the papers that have at least one author with
// a non-academic affiliation. When debug is set a one-line notice per kept
// paper is written to w.
func (c *Client) FetchPapers(ctx context.Context, ids []string, debug bool, w io.Writer) ([]types.Paper, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("no PubMed IDs to fetch")
	}
	if w == nil {
		w = io.Discard
	}

	params := c.baseParams()
	params.Set("id", strings.Join(ids, ","))
	params.Set("retmode", "xml")

	endpoint := c.endpoint("efetch.fcgi")
	c.Logger.Debug("efetch", "ids", len(ids), "url", redactedURL(endpoint, params))

	body, err := httputil.Get(ctx, c.HTTP, endpoint, params, c.Config.UserAgent)
	if err != nil {
		return nil, fmt.Errorf("PubMed fetch: %w", err)
	}

	papers, err := ParseArticles(body)
	if err != nil {
		return nil, err
	}

	if debug {
		for _, p := range papers {
			fmt.Fprintf(w, "✔ %s...\n", truncate(p.Title, debugTitleLen))
		}
	}
	c.Logger.Debug("efetch done", "kept", len(papers))
	return papers, nil
}

// ParseArticles decodes an EFetch XML document and returns the papers with
// at least one non-academic author.
func ParseArticles(data []byte) ([]types.Paper, error) {
	var set articleSet
	if err := xml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("parsing PubMed XML: %w", err)
	}

	var papers []types.Paper
	for _, a := range set.Articles {
		if p, ok := toPaper(a.Citation); ok {
			papers = append(papers, p)
		}
	}
	return papers, nil
}

// toPaper assembles a Paper from one citation. ok is false when no author
// has a non-academic affiliation.
func toPaper(c medlineCitation) (types.Paper, bool) {
	var authors, companies, emails orderedSet

	if c.Article.AuthorList != nil {
		for _, au := range c.Article.AuthorList.Authors {
			name := au.displayName()
			for _, aff := range au.Affiliations {
				text := aff.text()
				if !affiliation.IsNonAcademic(text) {
					continue
				}
				authors.add(name)
				companies.add(strings.TrimSpace(text))
				if email := affiliation.ExtractEmail(text); email != "" {
					emails.add(email)
				}
			}
		}
	}

	if authors.len() == 0 {
		return types.Paper{}, false
	}

	p := types.Paper{
		PubmedID:            c.PMID,
		Title:               types.NoTitle,
		PublicationDate:     types.UnknownDate,
		NonAcademicAuthors:  authors.items,
		CompanyAffiliations: companies.items,
		CorrespondingEmail:  types.EmailNotAvailable,
	}
	if c.Article.Title != nil {
		p.Title = c.Article.Title.text()
	}
	if c.Article.PubDate != nil {
		p.PublicationDate = c.Article.PubDate.String()
	}
	if emails.len() > 0 {
		p.CorrespondingEmail = emails.items[0]
	}
	return p, true
}

// orderedSet keeps the first occurrence of each value in insertion order.
type orderedSet struct {
	seen  map[string]struct{}
	items []string
}

func (s *orderedSet) add(v string) {
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.items = append(s.items, v)
}

func (s *orderedSet) len() int { return len(s.items) }

// truncate shortens s to at most max runes.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
