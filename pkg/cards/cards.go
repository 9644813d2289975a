// Package cards decorates classified words for flashcard display.
package cards

import (
	"strings"

	"github.com/dtnitsch/lemma-crawler/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Label is the display metadata of a part of speech or attribute.
type Label struct {
	Text        string `json:"text" yaml:"text"`
	Label       string `json:"label" yaml:"label"`
	Color       string `json:"color" yaml:"color"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Icon        string `json:"icon,omitempty" yaml:"icon,omitempty"`
}

// Card is one flashcard.
type Card struct {
	Word       string `json:"word" yaml:"word"`
	Pos        Label  `json:"pos" yaml:"pos"`
	Attribute  Label  `json:"gender_or_group" yaml:"gender_or_group"`
	TotalCards int    `json:"total_cards" yaml:"total_cards"`
}

var posLabels = map[string]Label{
	"verb":         {Label: "Verb", Color: "#667eea", Description: "Action or state word"},
	"noun":         {Label: "Noun", Color: "#f093fb", Description: "Person, place, or thing"},
	"adjective":    {Label: "Adjective", Color: "#4fd1c5", Description: "Describes a noun"},
	"adverb":       {Label: "Adverb", Color: "#fbd38d", Description: "Modifies a verb or adjective"},
	"pronoun":      {Label: "Pronoun", Color: "#fc8181", Description: "Replaces a noun"},
	"preposition":  {Label: "Preposition", Color: "#9f7aea", Description: "Shows relationship between words"},
	"conjunction":  {Label: "Conjunction", Color: "#ed8936", Description: "Connects words or phrases"},
	"interjection": {Label: "Interjection", Color: "#f56565", Description: "Expresses emotion"},
	"article":      {Label: "Article", Color: "#48bb78", Description: "Defines a noun (the, a, an)"},
}

var attributeLabels = map[string]Label{
	models.Masculine:   {Label: "Masculine", Color: "#4299e1", Icon: "♂"},
	models.Feminine:    {Label: "Feminine", Color: "#ed64a6", Icon: "♀"},
	models.GroupFirst:  {Label: "1st Group", Color: "#38b2ac", Icon: "①"},
	models.GroupSecond: {Label: "2nd Group", Color: "#9f7aea", Icon: "②"},
	models.GroupThird:  {Label: "3rd Group", Color: "#ed8936", Icon: "③"},
}

// PosLabel returns display metadata for a part of speech, with a grey fallback.
func PosLabel(pos string) Label {
	l, ok := posLabels[strings.ToLower(pos)]
	if !ok {
		l = Label{Label: title(pos), Color: "#718096", Description: "Word type"}
	}
	l.Text = pos
	return l
}

// AttributeLabel returns display metadata for a gender or group.
func AttributeLabel(attr string) Label {
	l, ok := attributeLabels[strings.ToLower(attr)]
	if !ok {
		l = Label{Label: title(attr), Color: "#a0aec0", Icon: "•"}
	}
	l.Text = attr
	return l
}

// New builds a card for r out of total classified words.
func New(r models.ClassifiedRecord, total int) Card {
	return Card{
		Word:       r.Word,
		Pos:        PosLabel(r.PartOfSpeech),
		Attribute:  AttributeLabel(r.Attribute),
		TotalCards: total,
	}
}

func title(s string) string {
	return cases.Title(language.English).String(s)
}
