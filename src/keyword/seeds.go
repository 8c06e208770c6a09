package keyword

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"
)

var nonLetters = regexp.MustCompile(`[^a-zA-Z]+`)

// IsURL reports whether input is treated as a URL rather than a search
// string.
func IsURL(input string) bool {
	return strings.HasPrefix(input, "http")
}

// ExtractSeeds derives the seed keywords of input. For a URL these are the
// host labels minus the TLD followed by the path segments, split on
// non-letters and on CamelCase boundaries, lowercased, in order and with
// duplicates. Any other input is lowercased and split on whitespace. It
// never fails.
func ExtractSeeds(input string) []string {
	if !IsURL(input) {
		return strings.Fields(strings.ToLower(input))
	}

	host, path := splitURL(input)
	parts := DomainLabels(host)
	for _, p := range strings.Split(path, "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}

	var seeds []string
	for _, part := range parts {
		for _, word := range nonLetters.Split(part, -1) {
			if word == "" {
				continue
			}
			seeds = append(seeds, SplitCamelCase(word)...)
		}
	}
	return seeds
}

// SearchQuery is the query sent to the search endpoint: the seeds joined
// with OR for a URL, the input verbatim otherwise.
func SearchQuery(input string, seeds []string) string {
	if !IsURL(input) {
		return input
	}
	return strings.Join(seeds, " OR ")
}

// DomainLabels returns the dot-separated labels of host without the final
// one. A single-label host is returned as is.
func DomainLabels(host string) []string {
	labels := strings.Split(host, ".")
	if len(labels) < 2 {
		return labels
	}
	return labels[:len(labels)-1]
}

// DomainLabel joins DomainLabels, so sub.example.com becomes subexample.
func DomainLabel(host string) string {
	return strings.Join(DomainLabels(host), "")
}

// SplitCamelCase splits word before every uppercase letter and lowercases
// the pieces. A leading lowercase run is kept as its own piece.
func SplitCamelCase(word string) []string {
	var (
		out     []string
		current strings.Builder
	)
	for _, r := range word {
		if unicode.IsUpper(r) && current.Len() > 0 {
			out = append(out, strings.ToLower(current.String()))
			current.Reset()
		}
		current.WriteRune(r)
	}
	if current.Len() > 0 {
		out = append(out, strings.ToLower(current.String()))
	}
	return out
}

// splitURL returns the network location and path of raw. When net/url
// rejects raw it falls back to cutting the string by hand.
func splitURL(raw string) (string, string) {
	if u, err := url.Parse(raw); err == nil {
		return u.Host, u.Path
	}

	rest := raw
	if i := strings.Index(rest, "://"); i >= 0 {
		rest = rest[i+3:]
	}
	if i := strings.IndexAny(rest, "?#"); i >= 0 {
		rest = rest[:i]
	}
	host, path := rest, ""
	if i := strings.Index(rest, "/"); i >= 0 {
		host, path = rest[:i], rest[i:]
	}
	return host, path
}
