package model

// SectionKey identifies a block of the menu page. The keys double as the
// anchor ids the page links to.
type SectionKey string

const (
	SectionAll    SectionKey = "all"
	SectionDrinks SectionKey = "bebidas"
	SectionFood   SectionKey = "comida"
)

// MenuSections lists the renderable sections in page order.
var MenuSections = []SectionKey{SectionDrinks, SectionFood}

var sectionCategories = map[SectionKey]Category{
	SectionDrinks: CategoryDrinks,
	SectionFood:   CategoryFood,
}

var sectionTitles = map[SectionKey]string{
	SectionDrinks: "Bebidas",
	SectionFood:   "Comestibles",
}

// CategoryFor returns the catalog category backing a menu section.
func (k SectionKey) CategoryFor() (Category, bool) {
	c, ok := sectionCategories[k]
	return c, ok
}

// Title returns the heading shown above the section.
func (k SectionKey) Title() string {
	return sectionTitles[k]
}

// SectionFor maps a catalog category back to its menu section.
func SectionFor(c Category) (SectionKey, bool) {
	for k, v := range sectionCategories {
		if v == c {
			return k, true
		}
	}
	return "", false
}
