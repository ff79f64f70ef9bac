package render

import (
	"net/url"
	"strings"

	"github.com/five82/hackdex/internal/catalog"
)

const (
	// PlaceholderImage is shown for hacks without a cover.
	PlaceholderImage = "/placeholder.png"
	// NoResultsMessage replaces the card list when nothing matches.
	NoResultsMessage = "No hacks found matching your criteria."
	// DateLayout formats last_update.
	DateLayout = "Jan 2, 2006"

	untitled     = "Untitled"
	unknown      = "Unknown"
	notAvailable = "N/A"
)

// Labeler resolves display names. catalog.Names and *catalog.Formatter
// both satisfy it.
type Labeler interface {
	Format(category, key string) string
}

// Info is one labelled block on a card.
type Info struct {
	Label string
	Value string
}

// Card is the view model of one hack. Optional blocks are present in Info
// and Lists only when the hack carries the field.
type Card struct {
	ID      string
	Title   string
	Creator string
	Link    string
	Image   string
	// HasCover is false when Image is the placeholder.
	HasCover bool

	Status      string
	StatusLabel string
	Base        string
	BaseLabel   string
	Languages   string

	// Info holds Difficulty, Story, Last updated and Length, in that order.
	Info []Info
	// Lists holds the Pokédex and Features blocks.
	Lists []Info
}

// Block returns the Info or Lists block with the given label.
func (c Card) Block(label string) (Info, bool) {
	for _, in := range c.Info {
		if in.Label == label {
			return in, true
		}
	}
	for _, in := range c.Lists {
		if in.Label == label {
			return in, true
		}
	}
	return Info{}, false
}

// BuildCards builds one card per hack, in order.
func BuildCards(hacks []catalog.Hack, labeler Labeler) []Card {
	if labeler == nil {
		labeler = catalog.Names(nil)
	}
	cards := make([]Card, 0, len(hacks))
	for _, hack := range hacks {
		cards = append(cards, buildCard(hack, labeler))
	}
	return cards
}

// BuildCard builds the card of a single hack.
func BuildCard(hack catalog.Hack, labeler Labeler) Card {
	if labeler == nil {
		labeler = catalog.Names(nil)
	}
	return buildCard(hack, labeler)
}

func buildCard(hack catalog.Hack, labeler Labeler) Card {
	id := string(hack.ID)
	card := Card{
		ID:      id,
		Title:   orDefault(hack.Title, untitled),
		Creator: orDefault(hack.Creator, unknown),
		Link:    DetailPath(id),
		Image:   PlaceholderImage,
		Status:  hack.Status,
		Base:    hack.Base,
	}
	if hack.Cover != "" {
		card.Image = DetailPath(id) + "/" + url.PathEscape(hack.Cover)
		card.HasCover = true
	}

	card.StatusLabel = labeler.Format("status", orDefault(hack.Status, notAvailable))
	if hack.Base != "" {
		card.BaseLabel = labeler.Format("base", hack.Base)
	} else {
		card.BaseLabel = unknown
	}
	card.Languages = orDefault(strings.Join(hack.Languages, ", "), notAvailable)

	if hack.Difficulty != "" {
		card.Info = append(card.Info, Info{Label: "Difficulty", Value: labeler.Format("difficulty", hack.Difficulty)})
	}
	if hack.Story != "" {
		card.Info = append(card.Info, Info{Label: "Story", Value: labeler.Format("story", hack.Story)})
	}
	if hack.LastUpdate.Present {
		card.Info = append(card.Info, Info{Label: "Last updated", Value: FormatDate(hack.LastUpdate)})
	}
	if hack.Length != "" {
		card.Info = append(card.Info, Info{Label: "Length", Value: labeler.Format("length", hack.Length)})
	}

	if v := joinLabels(labeler, "pokedex", hack.Pokedex); v != "" {
		card.Lists = append(card.Lists, Info{Label: "Pokédex", Value: v})
	}
	if v := joinLabels(labeler, "features", hack.Features); v != "" {
		card.Lists = append(card.Lists, Info{Label: "Features", Value: v})
	}
	return card
}

// DetailPath returns the site-relative detail page of a hack.
func DetailPath(id string) string {
	return "h/" + url.PathEscape(id)
}

// FormatDate renders a timestamp with DateLayout, or "N/A" when it is
// absent or cannot be parsed.
func FormatDate(ts catalog.Timestamp) string {
	parsed, ok := ts.Time()
	if !ok {
		return notAvailable
	}
	return parsed.Format(DateLayout)
}

func joinLabels(labeler Labeler, category string, values []string) string {
	labels := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		labels = append(labels, labeler.Format(category, v))
	}
	return strings.Join(labels, ", ")
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
