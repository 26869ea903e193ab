// Package media resolves project images and their fallbacks.
package media

import (
	"regexp"
	"strings"

	"folio.dev/internal/models"
)

// Placeholder is shown when a project image cannot be resolved or loaded
const Placeholder = "https://via.placeholder.com/1200x800?text=Image+Unavailable"

// ProfilePlaceholder replaces a hero portrait that fails to load
const ProfilePlaceholder = "https://via.placeholder.com/500x500?text=Profile+Image"

var (
	whitespace = regexp.MustCompile(`\s+`)
	nonAlnum   = regexp.MustCompile(`[^a-z0-9]`)
)

// TitleKey sanitizes a project title into an image lookup key
func TitleKey(title string) string {
	key := strings.ToLower(title)
	key = whitespace.ReplaceAllString(key, "")
	return nonAlnum.ReplaceAllString(key, "")
}

// Resolver maps project titles to bundled image paths
type Resolver struct {
	images      map[string]string
	placeholder string
}

// NewResolver indexes the image of every project by its title key.
// An empty placeholder selects the default one.
func NewResolver(projects []models.Project, placeholder string) *Resolver {
	if placeholder == "" {
		placeholder = Placeholder
	}
	r := &Resolver{
		images:      make(map[string]string, len(projects)),
		placeholder: placeholder,
	}
	for _, p := range projects {
		if p.Title == "" || p.Image == "" {
			continue
		}
		r.images[TitleKey(p.Title)] = p.Image
	}
	return r
}

// Placeholder returns the fallback source
func (r *Resolver) Placeholder() string {
	return r.placeholder
}

// Resolve returns the image for a project, or the placeholder
func (r *Resolver) Resolve(p *models.Project) string {
	if p == nil || p.Title == "" {
		return r.placeholder
	}
	if img, ok := r.images[TitleKey(p.Title)]; ok {
		return img
	}
	return r.placeholder
}

// Source is the image currently rendered for one element. It falls back
// to the placeholder on the first load failure and then stays there.
type Source struct {
	src         string
	placeholder string
	failed      bool
}

// NewSource starts rendering primary
func NewSource(primary, placeholder string) Source {
	return Source{src: primary, placeholder: placeholder}
}

// Src is the source to render
func (s Source) Src() string {
	return s.src
}

// Failed reports whether the fallback has been applied
func (s Source) Failed() bool {
	return s.failed
}

// Fail records a load failure. Only the first failure swaps the source;
// later ones, including a failing placeholder, change nothing.
func (s *Source) Fail() {
	if s.failed {
		return
	}
	s.failed = true
	s.src = s.placeholder
}

var techEmojis = map[string]string{
	"React":      "⚛️",
	"Node":       "🟢",
	"MongoDB":    "🍃",
	"Express":    "🚄",
	"Tailwind":   "🎨",
	"JavaScript": "🟨",
	"TypeScript": "🔷",
	"MySQL":      "🐬",
	"Git":        "📦",
	"Vite":       "⚡",
	"JWT":        "🔐",
	"HTML":       "📝",
	"CSS":        "🎨",
	"Bootstrap":  "🅱️",
	"Postman":    "📬",
	"API":        "🔌",
	"Webhook":    "🪝",
	"CRUD":       "💾",
	"Responsive": "📱",
	"MERN":       "🚀",
	"Hooks":      "⚓",
}

// DefaultEmoji marks technologies without a dedicated badge
const DefaultEmoji = "🛠️"

// TechEmoji returns the badge for a technology name
func TechEmoji(tech string) string {
	if e, ok := techEmojis[tech]; ok {
		return e
	}
	return DefaultEmoji
}

// CardBadgeLimit is how many tech badges float over a card image
const CardBadgeLimit = 4

// CardBadges returns the leading technologies shown on a card
func CardBadges(stack []string) []string {
	if len(stack) > CardBadgeLimit {
		return stack[:CardBadgeLimit]
	}
	return stack
}
