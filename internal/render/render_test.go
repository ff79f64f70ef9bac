package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"github.com/five82/hackdex/internal/catalog"
)

func parseHTML(t testing.TB, body []byte) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

func renderResults(t testing.TB, cards []Card) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, WriteResults(&buf, cards))
	return buf.Bytes()
}

var names = catalog.Names{
	"status":     {"complete": "Completed", "in_progress": "In Progress"},
	"base":       {"emerald": "Emerald"},
	"difficulty": {"hard": "Hard"},
	"pokedex":    {"gen3": "Gen III"},
}

func TestWriteResults_EmptyListShowsPlaceholderOnly(t *testing.T) {
	t.Parallel()

	for _, cards := range [][]Card{nil, {}} {
		doc := parseHTML(t, renderResults(t, cards))
		require.Equal(t, 1, doc.Find("p.no-results").Length())
		require.Equal(t, NoResultsMessage, strings.TrimSpace(doc.Find("p.no-results").Text()))
		require.Zero(t, doc.Find("div.card").Length())
	}
}

func TestWriteResults_OneCardPerHack(t *testing.T) {
	t.Parallel()

	hacks := []catalog.Hack{
		{ID: "alpha", Title: "Alpha", Base: "emerald", Status: "complete", Cover: "cover.png"},
		{ID: "beta", Title: "Beta", Base: "firered", Status: "in_progress"},
		{ID: "gamma", Title: "Gamma"},
	}
	doc := parseHTML(t, renderResults(t, BuildCards(hacks, names)))

	cards := doc.Find("div.card")
	require.Equal(t, len(hacks), cards.Length())
	require.Zero(t, doc.Find("p.no-results").Length())

	cards.Each(func(i int, card *goquery.Selection) {
		id := string(hacks[i].ID)
		href, _ := card.Find("a.card-link").Attr("href")
		require.Equal(t, "h/"+id, href)

		src, _ := card.Find(".cover img").Attr("src")
		if hacks[i].Cover != "" {
			require.Equal(t, "h/"+id+"/"+hacks[i].Cover, src)
		} else {
			require.Equal(t, PlaceholderImage, src)
		}
		onerror, _ := card.Find(".cover img").Attr("onerror")
		require.Contains(t, onerror, "parentElement.style.display='none'")
		require.Equal(t, hacks[i].Title, card.Find(".title").Text())
	})

	require.Equal(t, "Completed", doc.Find("div.card").First().Find(".status").Text())
	require.Equal(t, "In Progress", doc.Find("div.card").Eq(1).Find(".status").Text())
}

func TestWriteResults_Scenario(t *testing.T) {
	t.Parallel()

	hack := catalog.Hack{ID: "only", Title: "Only", Status: "complete", Base: "emerald", Pokedex: []string{}}
	doc := parseHTML(t, renderResults(t, BuildCards([]catalog.Hack{hack}, names)))

	require.Equal(t, 1, doc.Find("div.card").Length())
	require.Zero(t, doc.Find("div.info").Length(), "no difficulty, story, date or length blocks")
	require.Zero(t, doc.Find("div.info-full").Length(), "empty pokedex suppresses its block")
	src, _ := doc.Find(".cover img").Attr("src")
	require.Equal(t, PlaceholderImage, src)
}

func TestWriteResults_OptionalBlocks(t *testing.T) {
	t.Parallel()

	hack := catalog.Hack{
		ID:         "full",
		Title:      "Full",
		Status:     "complete",
		Base:       "emerald",
		Difficulty: "hard",
		Story:      "new_region",
		Length:     "long",
		LastUpdate: catalog.Timestamp{Raw: "2024-03-05", Present: true},
		Pokedex:    []string{"gen3", "fakemon_plus"},
		Features:   []string{"pss"},
		Languages:  []string{"en", "es"},
	}
	doc := parseHTML(t, renderResults(t, BuildCards([]catalog.Hack{hack}, names)))

	var labels, values []string
	doc.Find("div.info").Each(func(_ int, s *goquery.Selection) {
		spans := s.Find("span")
		labels = append(labels, spans.Eq(0).Text())
		values = append(values, spans.Eq(1).Text())
	})
	require.Equal(t, []string{"Difficulty", "Story", "Last updated", "Length"}, labels)
	require.Equal(t, []string{"Hard", "New region", "Mar 5, 2024", "Long"}, values)

	full := doc.Find("div.info-full")
	require.Equal(t, 2, full.Length())
	require.Equal(t, "Pokédex: Gen III, Fakemon plus", full.Eq(0).Text())
	require.Equal(t, "Features: Pss", full.Eq(1).Text())
	require.Contains(t, doc.Find(".cover").Text(), "en, es")
}

func TestWriteResults_EscapesCatalogStrings(t *testing.T) {
	t.Parallel()

	hack := catalog.Hack{ID: "x", Title: `<script>alert("x")</script>`, Creator: "A & B"}
	body := renderResults(t, BuildCards([]catalog.Hack{hack}, nil))

	require.NotContains(t, string(body), "<script>")
	doc := parseHTML(t, body)
	require.Equal(t, hack.Title, doc.Find(".title").Text())
	require.Contains(t, doc.Find(".cover").Text(), "by A & B")
}

func TestWriteResults_Idempotent(t *testing.T) {
	t.Parallel()

	cards := BuildCards([]catalog.Hack{{ID: "a", Title: "A"}, {ID: "b", Title: "B", Cover: "c.png"}}, names)
	first := renderResults(t, cards)
	second := renderResults(t, cards)
	require.Equal(t, string(first), string(second))
}

func TestBuildCard_Placeholders(t *testing.T) {
	card := BuildCard(catalog.Hack{ID: "bare"}, nil)

	if card.Title != "Untitled" {
		t.Fatalf("Title = %q, want Untitled", card.Title)
	}
	if card.Creator != "Unknown" || card.BaseLabel != "Unknown" {
		t.Fatalf("Creator/BaseLabel = %q/%q, want Unknown", card.Creator, card.BaseLabel)
	}
	if card.StatusLabel != "N/A" {
		t.Fatalf("StatusLabel = %q, want N/A", card.StatusLabel)
	}
	if card.Languages != "N/A" {
		t.Fatalf("Languages = %q, want N/A", card.Languages)
	}
	if card.HasCover || card.Image != PlaceholderImage {
		t.Fatalf("Image = %q, want placeholder", card.Image)
	}
	if len(card.Info) != 0 || len(card.Lists) != 0 {
		t.Fatalf("blocks = %#v %#v, want none", card.Info, card.Lists)
	}
}

func TestBuildCard_LastUpdate(t *testing.T) {
	cases := []struct {
		name      string
		ts        catalog.Timestamp
		wantBlock bool
		want      string
	}{
		{"absent", catalog.Timestamp{}, false, ""},
		{"unparseable", catalog.Timestamp{Raw: "soon", Present: true}, true, "N/A"},
		{"valid", catalog.Timestamp{Raw: "2023-12-25T08:00:00Z", Present: true}, true, "Dec 25, 2023"},
		{"year only", catalog.Timestamp{Raw: "2024", Present: true}, true, "Jan 1, 2024"},
		{"compact digits", catalog.Timestamp{Raw: "20240305", Present: true}, true, "N/A"},
		{"epoch millis number", catalog.Timestamp{Raw: "1700000000000", Present: true, Numeric: true}, true, "Nov 14, 2023"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			card := BuildCard(catalog.Hack{ID: "x", LastUpdate: tc.ts}, nil)
			block, ok := card.Block("Last updated")
			if ok != tc.wantBlock {
				t.Fatalf("Last updated block present = %v, want %v", ok, tc.wantBlock)
			}
			if ok && block.Value != tc.want {
				t.Fatalf("Last updated = %q, want %q", block.Value, tc.want)
			}
		})
	}
}

func TestBuildCard_EscapesPathSegments(t *testing.T) {
	card := BuildCard(catalog.Hack{ID: "a b", Cover: "cover art.png"}, nil)
	if card.Link != "h/a%20b" {
		t.Fatalf("Link = %q, want h/a%%20b", card.Link)
	}
	if card.Image != "h/a%20b/cover%20art.png" {
		t.Fatalf("Image = %q, want escaped cover path", card.Image)
	}
}

func TestWritePage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := WritePage(&buf, Page{
		BaseURL:   "https://hackdex.app/",
		Filter:    "status[]=complete",
		Total:     10,
		Cards:     BuildCards([]catalog.Hack{{ID: "a", Title: "A"}}, nil),
		Generated: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	doc := parseHTML(t, buf.Bytes())
	require.Equal(t, "hackdex", doc.Find("title").Text())
	base, _ := doc.Find("base").Attr("href")
	require.Equal(t, "https://hackdex.app/", base)
	require.Equal(t, 1, doc.Find("#results-container div.card").Length())

	summary := doc.Find("p.summary").Text()
	require.Contains(t, summary, "1 of 10 hacks")
	require.Contains(t, summary, "status[]=complete")
	require.Contains(t, summary, "Jan 2, 2024")
}
