package campsite

import "strings"

// Tags are stored as a single comma-joined column. A tag containing the
// delimiter would not round-trip.
const tagDelimiter = ","

func joinTags(tags []string) string {
	return strings.Join(tags, tagDelimiter)
}

func splitTags(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, tagDelimiter)
}
