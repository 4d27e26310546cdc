// Package docs serves the markdown help shipped inside the binary, so
// `brewstock docs` and the TUI help overlay work offline.
package docs

import (
	"embed"
	"sort"
	"strings"
)

//go:embed content/*.md
var content embed.FS

const contentDir = "content"

// Topics lists the embedded topic names, alphabetically.
func Topics() []string {
	entries, err := content.ReadDir(contentDir)
	if err != nil {
		return []string{}
	}
	topics := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".md") {
			continue
		}
		topics = append(topics, strings.TrimSuffix(name, ".md"))
	}
	sort.Strings(topics)
	return topics
}

// Get returns the markdown body for a topic. Lookup is case-insensitive.
func Get(topic string) (string, bool) {
	topic = strings.ToLower(strings.TrimSpace(topic))
	if topic == "" {
		return "", false
	}
	b, err := content.ReadFile(contentDir + "/" + topic + ".md")
	if err != nil {
		return "", false
	}
	return string(b), true
}
