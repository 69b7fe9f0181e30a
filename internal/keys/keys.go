package keys

import (
	"strings"
)

// TemplateKey produces the canonical key for a card template name.
// Behavior: trims, lower-cases, replaces runs of spaces with a single
// underscore. Suitable for card IDs and stable DB references.
func TemplateKey(name string) string {
	fields := strings.Fields(strings.ToLower(name))
	return strings.Join(fields, "_")
}

// ProfileKey namespaces a player profile for the progress store. Empty
// profiles fall back to "default".
func ProfileKey(namespace, profile string) string {
	p := TemplateKey(profile)
	if p == "" {
		p = "default"
	}
	return namespace + ":" + p
}
