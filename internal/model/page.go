package model

// Anchor names a section of the landing page that navigation can target.
type Anchor string

// Page sections, in scroll order.
const (
	AnchorHero    Anchor = "hero"
	AnchorSavings Anchor = "savings"
	AnchorRange   Anchor = "range"
	AnchorService Anchor = "service"
	AnchorCTA     Anchor = "cta"
)

// Target is a navigation button: a label and the section it scrolls to.
type Target struct {
	Label  string `json:"label"`
	Anchor Anchor `json:"anchor"`
}

// Slide is one hero carousel entry.
type Slide struct {
	ID        string `json:"id"`
	Eyebrow   string `json:"eyebrow"`
	Title     string `json:"title"`
	Accent    string `json:"accent"`
	Subtitle  string `json:"subtitle"`
	Image     string `json:"image"`
	Primary   Target `json:"primary"`
	Secondary Target `json:"secondary"`
}

// StatCard is a headline figure shown under the hero.
type StatCard struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Sub   string `json:"sub,omitempty"`
}

// ServiceItem is one tile of the service showcase.
type ServiceItem struct {
	Tag   string `json:"tag"`
	Title string `json:"title"`
	Desc  string `json:"desc"`
}

// Section is the heading block of a page section.
type Section struct {
	Anchor  Anchor `json:"anchor"`
	Label   string `json:"label"`
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

// Page is the full static content of the landing page.
type Page struct {
	Brand       string        `json:"brand"`
	Tagline     string        `json:"tagline"`
	Sections    []Section     `json:"sections"`
	Slides      []Slide       `json:"slides"`
	Stats       []StatCard    `json:"stats"`
	HeroPills   []string      `json:"hero_pills"`
	SavingPills []string      `json:"saving_pills"`
	SocialProof []string      `json:"social_proof"`
	Riders      []string      `json:"riders"`
	Rating      string        `json:"rating"`
	Services    []ServiceItem `json:"services"`
	CTA         Target        `json:"cta"`
	Footer      string        `json:"footer"`
}

// SectionFor returns the section with the given anchor.
func (p Page) SectionFor(a Anchor) (Section, bool) {
	for _, s := range p.Sections {
		if s.Anchor == a {
			return s, true
		}
	}
	return Section{}, false
}
