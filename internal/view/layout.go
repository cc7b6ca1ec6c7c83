package view

import (
	"time"

	"crazy-coffee/internal/model"
	"crazy-coffee/internal/navigation"
)

// Link is one navigation entry.
type Link struct {
	Label string
	Href  string
}

// Layout captures the shared page chrome: titles, navigation state and the
// session flag.
type Layout struct {
	Title           string
	CurrentPage     string
	IsAuthenticated bool
	User            *model.UserData
	Notice          string
	Year            int
}

// LayoutProvider exposes layout metadata to the renderer.
type LayoutProvider interface {
	LayoutData() *Layout
}

// LayoutData implements LayoutProvider.
func (l *Layout) LayoutData() *Layout { return l }

// NewLayout builds the chrome for page. user is nil when nobody is logged in.
func NewLayout(title, page string, user *model.UserData, notice string) Layout {
	return Layout{
		Title:           title,
		CurrentPage:     page,
		IsAuthenticated: user != nil,
		User:            user,
		Notice:          notice,
		Year:            time.Now().Year(),
	}
}

// MainLinks are the header entries shown on every page.
func (l Layout) MainLinks() []Link {
	return []Link{
		{Label: "Inicio", Href: navigation.HomePath},
		{Label: "Menú", Href: navigation.MenuPath},
	}
}

// SectionLinks are the menu shortcuts in the header.
func (l Layout) SectionLinks() []Link {
	links := make([]Link, 0, len(model.MenuSections))
	for _, key := range model.MenuSections {
		links = append(links, Link{Label: key.Title(), Href: navigation.MenuSectionPath(string(key))})
	}
	return links
}
