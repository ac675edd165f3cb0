package portfolio

import (
	"fmt"
	"strings"
)

// validResumeToken is the accept marker for the classification stage. The
// check is substring containment, deliberately lenient: models often wrap
// the verdict in extra prose.
const validResumeToken = "VALID_RESUME"

const classifyMaxChars = 2000

// classificationPrompt asks the model to decide whether the text is a resume.
// Only the first classifyMaxChars characters are embedded.
func classificationPrompt(text string) string {
	excerpt := text
	if len(excerpt) > classifyMaxChars {
		excerpt = excerpt[:classifyMaxChars]
	}
	return fmt.Sprintf(`You are a strict document classifier. Decide whether the following text is the content of a professional resume or CV.

Respond with exactly %s if it is a resume, or NOT_A_RESUME if it is anything else (an article, an invoice, a book excerpt, random text, etc).

Document text:
---
%s
---`, validResumeToken, excerpt)
}

// structuringPrompt asks the model to convert the full resume text into the
// fixed JSON shape consumed by the rendering stage.
func structuringPrompt(text string) string {
	return fmt.Sprintf(`Extract the content of the following resume into a single JSON object with exactly these top-level keys: %s.

- "personalInfo": object with name, title, email, phone, location, links (array of strings). Use empty strings for missing fields.
- "summary": a short professional summary string.
- "workExperience": array of objects with company, role, period, highlights (array of strings).
- "education": array of objects with institution, degree, period.
- "skills": array of strings.
- "projects": array of objects with name, description, link.

Respond with only the JSON object, no commentary.

Resume text:
---
%s
---`, strings.Join(structuredResumeKeys, ", "), text)
}

// creativeVariations are inserted into the rendering prompt purely to reduce
// repetition across regenerations; they carry no semantic meaning.
var creativeVariations = []string{
	"Lean into generous negative space and let one section visually dominate the page.",
	"Use an unexpected but tasteful accent color somewhere it isn't strictly needed.",
	"Give the hero section an unusual composition, such as off-center alignment.",
	"Introduce one distinctive typographic detail, like an oversized pull quote or numeral.",
	"Vary the rhythm between sections so the page doesn't read as a uniform list.",
	"Add one subtle, restrained animation or hover effect that rewards attention.",
}

// renderPrompt builds the final page-generation prompt. variation and seed
// come from the service's randomness source so tests can pin them.
func renderPrompt(structuredJSON string, tpl Template, variation string, seed int64, imageURL string) string {
	var b strings.Builder

	b.WriteString("Generate a complete, single-file HTML portfolio page (inline CSS, inline JS if needed) for the resume data below.\n\n")

	b.WriteString("Template style: ")
	b.WriteString(tpl.ID)
	b.WriteString("\n")
	b.WriteString(tpl.Style)
	b.WriteString("\n\n")

	b.WriteString("Creative variation: ")
	b.WriteString(variation)
	b.WriteString("\n")
	fmt.Fprintf(&b, "Variation seed: %d\n\n", seed)

	if imageURL != "" {
		fmt.Fprintf(&b, "A profile photo is available at %s — reference it inline (e.g. in the hero section) with appropriate alt text.\n\n", imageURL)
	} else {
		b.WriteString("No profile photo was provided. Do not include any image placeholders or <img> tags for a photo.\n\n")
	}

	b.WriteString("Requirements:\n")
	b.WriteString("- Mobile responsive, semantic HTML, accessible contrast.\n")
	b.WriteString("- Every section present in the data must appear on the page.\n")
	b.WriteString("- Do not invent facts that are not in the data.\n")
	b.WriteString("- Respond with only the HTML document, no commentary.\n\n")

	b.WriteString("Resume data (JSON):\n")
	b.WriteString(structuredJSON)

	return b.String()
}
