package models

import "strings"

// Page is the visible text of a dictionary page, split into the text
// fragments it was rendered from.
type Page struct {
	Title     string   `json:"title"`
	Fragments []string `json:"fragments"`
}

// ToPlainText concatenates all fragments, one per line.
func (p *Page) ToPlainText() string {
	var sb strings.Builder

	for _, f := range p.Fragments {
		sb.WriteString(f)
		sb.WriteString("\n")
	}

	return sb.String()
}

// FirstFragment returns the first fragment containing any of the needles.
func (p *Page) FirstFragment(needles ...string) (string, bool) {
	for _, f := range p.Fragments {
		for _, n := range needles {
			if strings.Contains(f, n) {
				return f, true
			}
		}
	}
	return "", false
}
