// Package classifier turns a dictionary page into a part-of-speech verdict.
//
// Classification is a lexical scan over the page's visible text, not a
// schema-aware parse: rules are tried in order and the first match wins.
// Verbs are checked before nouns.
package classifier

import (
	"bytes"
	"io"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/lemma-crawler/models"
	"golang.org/x/net/html"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Rule inspects a normalized page and reports a classification when it applies.
type Rule struct {
	Name  string
	Match func(p *models.Page, text string) (models.Classification, bool)
}

// DefaultRules is the verb rule followed by the noun rule.
var DefaultRules = []Rule{
	{Name: "verb", Match: matchVerb},
	{Name: "noun", Match: matchNoun},
}

type Classifier struct {
	rules  []Rule
	logger *slog.Logger
}

// New returns a classifier using rules in order, or DefaultRules when none are given.
func New(logger *slog.Logger, rules ...Rule) *Classifier {
	if len(rules) == 0 {
		rules = DefaultRules
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Classifier{rules: rules, logger: logger}
}

// Classify never fails: unparseable or empty content yields PosOther.
func (c *Classifier) Classify(content []byte, word string) models.Classification {
	page, err := ParsePage(content)
	if err != nil {
		c.logger.Warn("Failed to parse page", "word", word, "error", err)
		return models.Classification{PartOfSpeech: models.PosOther}
	}
	c.logger.Debug("Parsed page", "word", word, "title", page.Title)

	text := page.ToPlainText()
	for _, r := range c.rules {
		if cl, ok := r.Match(page, text); ok {
			c.logger.Debug("Classified word", "word", word, "rule", r.Name, "pos", cl.PartOfSpeech, "attribute", cl.Attribute)
			return cl
		}
	}

	c.logger.Debug("No verb or noun found", "word", word)
	return models.Classification{PartOfSpeech: models.PosOther}
}

// ParsePage extracts the visible text nodes of an HTML document, NFC-normalized
// and lowercased, in document order.
func ParsePage(content []byte) (*models.Page, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}

	page := &models.Page{
		Title: normalizeText(doc.Find("title").First().Text()),
	}
	for _, n := range doc.Nodes {
		collectText(n, &page.Fragments)
	}
	return page, nil
}

func collectText(n *html.Node, out *[]string) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style", "noscript", "template":
			return
		}
	}
	if n.Type == html.TextNode {
		if t := normalizeText(n.Data); t != "" {
			*out = append(*out, t)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, out)
	}
}

func normalizeText(s string) string {
	s = norm.NFC.String(s)
	s = cases.Lower(language.French).String(s)
	return strings.Join(strings.Fields(s), " ")
}

func matchVerb(p *models.Page, text string) (models.Classification, bool) {
	if !strings.Contains(text, "verbe") {
		return models.Classification{}, false
	}
	fragment, ok := p.FirstFragment("groupe")
	if !ok {
		return models.Classification{}, false
	}
	return models.Classification{PartOfSpeech: models.PosVerb, Attribute: groupOf(fragment)}, true
}

// groupOf reads the conjugation group ordinal from a fragment mentioning "groupe".
func groupOf(fragment string) string {
	switch {
	case strings.Contains(fragment, "troisième") || strings.Contains(fragment, "3e"):
		return models.GroupThird
	case strings.Contains(fragment, "deuxième") || strings.Contains(fragment, "2e"):
		return models.GroupSecond
	case strings.Contains(fragment, "premier") || strings.Contains(fragment, "1er"):
		return models.GroupFirst
	default:
		return models.GroupUnknown
	}
}

func matchNoun(p *models.Page, _ string) (models.Classification, bool) {
	fragment, ok := p.FirstFragment("masculin", "féminin")
	if !ok {
		return models.Classification{}, false
	}
	gender := models.Feminine
	if strings.Contains(fragment, "masc") {
		gender = models.Masculine
	}
	return models.Classification{PartOfSpeech: models.PosNoun, Attribute: gender}, true
}
