// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/get-papers-list/internal/pubmed"
	"github.com/pdiddy/get-papers-list/pkg/types"
)

const companyArticleXML = `<PubmedArticleSet>
<PubmedArticle><MedlineCitation><PMID>111</PMID><Article>
<Journal><JournalIssue><PubDate><Year>2024</Year><Month>05</Month></PubDate></JournalIssue></Journal>
<ArticleTitle>A phase 2 trial of compound X.</ArticleTitle>
<AuthorList>
<Author><LastName>Doe</LastName><ForeName>Jane</ForeName>
<AffiliationInfo><Affiliation>Dr. Jane Doe, BioTech Labs Inc, contact: jane.doe@biotechlabs.com</Affiliation></AffiliationInfo>
</Author>
</AuthorList></Article></MedlineCitation></PubmedArticle>
</PubmedArticleSet>`

const academicArticleXML = `<PubmedArticleSet>
<PubmedArticle><MedlineCitation><PMID>222</PMID><Article>
<ArticleTitle>Academic only.</ArticleTitle>
<AuthorList>
<Author><LastName>Smith</LastName><ForeName>Sam</ForeName>
<AffiliationInfo><Affiliation>Department of Oncology, Stanford University School of Medicine</Affiliation></AffiliationInfo>
</Author>
</AuthorList></Article></MedlineCitation></PubmedArticle>
</PubmedArticleSet>`

// fakeEutils serves fixed ESearch IDs and an EFetch body, counting fetches.
func fakeEutils(t *testing.T, ids []string, fetchStatus int, fetchBody string) (*pubmed.Client, *int) {
	t.Helper()
	fetches := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/esearch.fcgi":
			quoted := make([]string, len(ids))
			for i, id := range ids {
				quoted[i] = `"` + id + `"`
			}
			fmt.Fprintf(w, `{"esearchresult": {"count": "%d", "idlist": [%s]}}`, len(ids), strings.Join(quoted, ","))
		case "/efetch.fcgi":
			fetches++
			w.WriteHeader(fetchStatus)
			fmt.Fprint(w, fetchBody)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(ts.Close)

	c := pubmed.NewClient(types.PubMedConfig{BaseURL: ts.URL}, nil)
	c.HTTP = ts.Client()
	return c, &fetches
}

func TestRunQuery_NoResults(t *testing.T) {
	client, fetches := fakeEutils(t, nil, http.StatusOK, companyArticleXML)
	file := filepath.Join(t.TempDir(), "out.csv")

	var buf bytes.Buffer
	runQuery(context.Background(), client, queryOptions{Query: "zzz", File: file}, &buf)

	assert.Equal(t, "❌ No results found.\n", buf.String())
	assert.Equal(t, 0, *fetches)
	assert.NoFileExists(t, file)
}

func TestRunQuery_NoQualifyingResults(t *testing.T) {
	client, _ := fakeEutils(t, []string{"222"}, http.StatusOK, academicArticleXML)
	file := filepath.Join(t.TempDir(), "out.csv")

	var buf bytes.Buffer
	runQuery(context.Background(), client, queryOptions{Query: "oncology", File: file}, &buf)

	assert.Equal(t, "❌ No non-academic pharma/biotech authors found.\n", buf.String())
	assert.NoFileExists(t, file)
}

func TestRunQuery_PrintsToConsole(t *testing.T) {
	client, _ := fakeEutils(t, []string{"111"}, http.StatusOK, companyArticleXML)

	var buf bytes.Buffer
	runQuery(context.Background(), client, queryOptions{Query: "compound x"}, &buf)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, strings.Repeat("-", 50)+"\n"))
	assert.Contains(t, out, "PubmedID: 111\n")
	assert.Contains(t, out, "Publication Date: 2024-05-01\n")
	assert.Contains(t, out, "Non-academicAuthor(s): Jane Doe\n")
	assert.Contains(t, out, "Corresponding Author Email: jane.doe@biotechlabs.com\n")
}

func TestRunQuery_DebugNotice(t *testing.T) {
	client, _ := fakeEutils(t, []string{"111"}, http.StatusOK, companyArticleXML)

	var buf bytes.Buffer
	runQuery(context.Background(), client, queryOptions{Query: "compound x", Debug: true}, &buf)

	assert.True(t, strings.HasPrefix(buf.String(), "✔ A phase 2 trial of compound X....\n"))
}

func TestRunQuery_WritesFile(t *testing.T) {
	client, _ := fakeEutils(t, []string{"111"}, http.StatusOK, companyArticleXML)
	file := filepath.Join(t.TempDir(), "out.csv")

	var buf bytes.Buffer
	runQuery(context.Background(), client, queryOptions{Query: "compound x", File: file}, &buf)

	assert.Equal(t, fmt.Sprintf("✅ Saved 1 results to %s\n", file), buf.String())

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\r\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "PubmedID,Title,Publication Date,Non-academicAuthor(s),CompanyAffiliation(s),Corresponding Author Email", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "111,A phase 2 trial of compound X.,2024-05-01,Jane Doe,"))
}

func TestRunQuery_DefaultsToCSVWhateverTheExtension(t *testing.T) {
	client, _ := fakeEutils(t, []string{"111"}, http.StatusOK, companyArticleXML)
	file := filepath.Join(t.TempDir(), "out.json")

	var buf bytes.Buffer
	runQuery(context.Background(), client, queryOptions{Query: "compound x", File: file}, &buf)

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), strings.Join(types.Columns, ",")+"\r\n"), string(data))
}

func TestRootCommand_FileFlagWritesCSVByDefault(t *testing.T) {
	client, _ := fakeEutils(t, []string{"111"}, http.StatusOK, companyArticleXML)
	viper.Set("eutils.base_url", client.Config.BaseURL)
	file := filepath.Join(t.TempDir(), "out.json")

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"compound x", "-f", file})
	t.Cleanup(func() {
		viper.Reset()
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		rootCmd.Flags().Set("file", "")
	})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, fmt.Sprintf("✅ Saved 1 results to %s\n", file), buf.String())

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), strings.Join(types.Columns, ",")+"\r\n"), string(data))
}

func TestRunQuery_AutoFormatFollowsExtension(t *testing.T) {
	client, _ := fakeEutils(t, []string{"111"}, http.StatusOK, companyArticleXML)
	file := filepath.Join(t.TempDir(), "out.json")

	var buf bytes.Buffer
	runQuery(context.Background(), client, queryOptions{Query: "compound x", File: file, Format: "auto"}, &buf)

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(string(data)), "{"), string(data))
	assert.Contains(t, string(data), `"query": "compound x"`)
}

func TestRunQuery_ReportsErrors(t *testing.T) {
	client, _ := fakeEutils(t, []string{"111"}, http.StatusInternalServerError, "")
	file := filepath.Join(t.TempDir(), "out.csv")

	var buf bytes.Buffer
	runQuery(context.Background(), client, queryOptions{Query: "q", File: file}, &buf)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "⚠️ Error: "), out)
	assert.Contains(t, out, "HTTP 500")
	assert.Equal(t, 1, strings.Count(out, "\n"))
	assert.NoFileExists(t, file)
}

func TestRunQuery_MalformedXML(t *testing.T) {
	client, _ := fakeEutils(t, []string{"111"}, http.StatusOK, "<PubmedArticleSet>")

	var buf bytes.Buffer
	runQuery(context.Background(), client, queryOptions{Query: "q"}, &buf)

	assert.Contains(t, buf.String(), "⚠️ Error: parsing PubMed XML")
}

func TestPubmedConfig(t *testing.T) {
	viper.Set("eutils.base_url", "http://localhost:9999/eutils")
	viper.Set("eutils.max_results", 25)
	viper.Set("eutils.api_key", "k")
	viper.Set("http.timeout", "30s")
	t.Cleanup(viper.Reset)

	cfg := pubmedConfig()
	assert.Equal(t, "http://localhost:9999/eutils", cfg.BaseURL)
	assert.Equal(t, 25, cfg.MaxResults)
	assert.Equal(t, "k", cfg.APIKey)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "get-papers-list dev\n", buf.String())
}

func TestRootCommandRequiresQuery(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	assert.Error(t, rootCmd.Execute())
}
