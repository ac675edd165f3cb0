package portfolio

// Template is one of the fixed portfolio styles. MaxChars bounds the
// extracted resume text accepted for it; denser layouts tolerate more.
type Template struct {
	ID       string
	MaxChars int
	Style    string
}

// DefaultTemplateID is used when the request omits a template.
const DefaultTemplateID = "elegant-serif"

var templates = map[string]Template{
	"elegant-serif": {
		ID:       "elegant-serif",
		MaxChars: 15000,
		Style: `Refined editorial look: a serif display face (e.g. Playfair Display or Cormorant) for headings,
a quiet sans-serif for body text, generous whitespace, a warm ivory background with charcoal text,
thin hairline dividers between sections, and subtle small-caps section labels.`,
	},
	"dark-modern": {
		ID:       "dark-modern",
		MaxChars: 20000,
		Style: `Sleek dark theme: near-black background, high-contrast white headings, a single electric accent
color for links and highlights, a geometric sans-serif, card-based sections with soft shadows,
and smooth scroll-reveal transitions.`,
	},
	"minimal-light": {
		ID:       "minimal-light",
		MaxChars: 15000,
		Style: `Stark minimalism: pure white background, a single neutral type family, tight typographic scale,
no decorative elements, section breaks expressed only through spacing, and muted gray metadata text.`,
	},
	"creative-gradient": {
		ID:       "creative-gradient",
		MaxChars: 25000,
		Style: `Playful and bold: a vivid multi-stop gradient hero, rounded cards, oversized display headings,
pill-shaped skill tags, and loose asymmetric section layouts that still collapse cleanly on mobile.`,
	},
	"brutalist-mono": {
		ID:       "brutalist-mono",
		MaxChars: 35000,
		Style: `Raw brutalist style: monospace type throughout, visible borders, flat unstyled-looking blocks,
aggressive black-on-white contrast with one clashing accent, and dense unapologetic information layout.`,
	},
}

// TemplateByID resolves a template, defaulting when id is empty.
func TemplateByID(id string) (Template, bool) {
	if id == "" {
		id = DefaultTemplateID
	}
	tpl, ok := templates[id]
	return tpl, ok
}

// TemplateIDs lists the known template identifiers.
func TemplateIDs() []string {
	ids := make([]string, 0, len(templates))
	for id := range templates {
		ids = append(ids, id)
	}
	return ids
}
