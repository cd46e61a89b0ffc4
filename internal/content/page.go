// Package content holds the static copy of the landing page: sections, hero
// slides, stat cards, pills and the service showcase.
package content

import "github.com/theirongolddev/switchride/internal/model"

// Brand is the name shown in the nav bar and footer.
const Brand = "Ola Electric"

// BookTestRide is the label of the floating call to action.
const BookTestRide = "Book a test ride"

var sections = []model.Section{
	{
		Anchor:  model.AnchorHero,
		Label:   "Home",
		Heading: "Switch to electric. Save every ride.",
		Body:    "Minimal maintenance. More distance per rupee. Service designed for convenience.",
	},
	{
		Anchor:  model.AnchorSavings,
		Label:   "Savings",
		Heading: "Spend less. Ride more.",
		Body:    "Petrol costs add up daily. Electric keeps running costs predictable, so savings show up ride after ride.",
	},
	{
		Anchor:  model.AnchorRange,
		Label:   "Range",
		Heading: "Go farther on every rupee.",
		Body:    "See how far petrol and electric two-wheelers take you for the same spend. Toggle your budget and compare instantly.",
	},
	{
		Anchor:  model.AnchorService,
		Label:   "Hyper Service",
		Heading: "Service, upgraded.",
		Body:    "Wider network, convenience, transparency, and a fully digital journey. Built to feel effortless.",
	},
	{
		Anchor:  model.AnchorCTA,
		Label:   "Ready to switch?",
		Heading: "Calculate savings. Book a test ride.",
		Body:    "A minimal decision: set your distance, see the number.",
	},
}

var slides = []model.Slide{
	{
		ID:        "switch",
		Eyebrow:   "Upfront savings",
		Title:     "Switch to electric.",
		Accent:    "Save every ride.",
		Subtitle:  "Minimal maintenance. More distance per rupee. Service designed for convenience.",
		Image:     "/hero/switch.jpg",
		Primary:   model.Target{Label: "Calculate savings", Anchor: model.AnchorSavings},
		Secondary: model.Target{Label: "Compare Range", Anchor: model.AnchorRange},
	},
	{
		ID:        "range",
		Eyebrow:   "More distance per rupee",
		Title:     "Go farther.",
		Accent:    "Spend less.",
		Subtitle:  "The same ₹100 takes an electric scooter about four times as far as petrol.",
		Image:     "/hero/range.jpg",
		Primary:   model.Target{Label: "Compare Range", Anchor: model.AnchorRange},
		Secondary: model.Target{Label: BookTestRide, Anchor: model.AnchorCTA},
	},
	{
		ID:        "service",
		Eyebrow:   "Hyper Service",
		Title:     "Service, upgraded.",
		Accent:    "Same day.",
		Subtitle:  "Genuine parts at verified MRP, real-time tracking, and same-day service.",
		Image:     "/hero/service.jpg",
		Primary:   model.Target{Label: "Explore Hyper Service", Anchor: model.AnchorService},
		Secondary: model.Target{Label: "Calculate savings", Anchor: model.AnchorSavings},
	},
}

var stats = []model.StatCard{
	{Label: "Est. savings / year", Value: "₹25,000+", Sub: "avg. for daily commuters"},
	{Label: "Cost per km", Value: "₹0.15", Sub: "vs ₹2.80 for petrol"},
	{Label: "Range per charge", Value: "151 km", Sub: "Ola S1 Pro certified range"},
}

var services = []model.ServiceItem{
	{Tag: "Network", Title: "Wider Service Network", Desc: "Servicing your Ola is now easier and closer than ever."},
	{Tag: "Parts", Title: "Convenience", Desc: "Just a click away. Order Ola parts online on app and website."},
	{Tag: "MRP", Title: "Transparency you can trust", Desc: "Genuine Ola parts at verified MRP."},
	{Tag: "Same-day", Title: "Same-Day Service Guarantee", Desc: "Your Ola gets serviced the very same day. No extra cost, no delays. Now live in Bengaluru."},
	{Tag: "Tracking", Title: "Fully Digital & Transparent Journey", Desc: "Track your service end to end with real-time updates and complete visibility."},
	{Tag: "Comfort", Title: "Designed for You", Desc: "Relax in a dedicated customer lounge with free Wi-Fi while we take care of your ride."},
}

// Page returns a fresh copy of the landing page content. Callers may modify
// the result freely.
func Page() model.Page {
	return model.Page{
		Brand:       Brand,
		Tagline:     "Switch to electric. Save every ride.",
		Sections:    append([]model.Section(nil), sections...),
		Slides:      Slides(),
		Stats:       append([]model.StatCard(nil), stats...),
		HeroPills:   []string{"Upfront savings", "More distance per rupee", "Hyper Service"},
		SavingPills: []string{"No oil changes", "Minimal maintenance", "Charge at home"},
		SocialProof: []string{"Popular choice", "Rider-rated", "Made for daily commutes", "Trusted by millions of rides"},
		Riders:      []string{"A", "S", "R", "K", "M"},
		Rating:      "4.6",
		Services:    append([]model.ServiceItem(nil), services...),
		CTA:         model.Target{Label: BookTestRide, Anchor: model.AnchorSavings},
		Footer:      Brand + " campaign landing page",
	}
}

// Slides returns the hero carousel slides in display order.
func Slides() []model.Slide {
	return append([]model.Slide(nil), slides...)
}

// Anchors lists the page sections in scroll order.
func Anchors() []model.Anchor {
	out := make([]model.Anchor, len(sections))
	for i, s := range sections {
		out[i] = s.Anchor
	}
	return out
}

// ParseAnchor resolves a section name such as "savings" to its anchor.
func ParseAnchor(s string) (model.Anchor, bool) {
	for _, sec := range sections {
		if string(sec.Anchor) == s {
			return sec.Anchor, true
		}
	}
	return "", false
}
