package playlist

import (
	"errors"
	"fmt"
	"strings"
)

// Entry is a channel ready to be rendered back into M3U text, with the
// resolved identifier when resolution succeeded.
type Entry struct {
	TvgID string // empty when unresolved
	Name  string
	URL   string
}

// ToM3UFormat renders entries as an extended-M3U document. The header
// declares the EPG resource the identifiers were resolved against.
// Each entry occupies exactly two lines.
func ToM3UFormat(entries []Entry, epgPath string) (string, error) {
	if len(entries) == 0 {
		return "", errors.New("no channels found")
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("#EXTM3U url-tvg=%q\n", epgPath))
	for _, entry := range entries {
		writeEntry(&sb, entry)
	}
	return sb.String(), nil
}

// ToCleanM3UFormat renders a resolved section followed by a bounded
// unresolved section, each prefixed with a comment header line. The
// unresolved section is capped to keep noise out of the output.
func ToCleanM3UFormat(resolved, unresolved []Entry, epgPath string, maxUnresolved int) (string, error) {
	if len(resolved) == 0 && len(unresolved) == 0 {
		return "", errors.New("no channels found")
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("#EXTM3U url-tvg=%q\n", epgPath))

	sb.WriteString(fmt.Sprintf("# resolved channels (%d)\n", len(resolved)))
	for _, entry := range resolved {
		writeEntry(&sb, entry)
	}

	capped := unresolved
	if len(capped) > maxUnresolved {
		capped = capped[:maxUnresolved]
	}
	sb.WriteString(fmt.Sprintf("# unresolved channels (%d of %d)\n", len(capped), len(unresolved)))
	for _, entry := range capped {
		writeEntry(&sb, entry)
	}
	return sb.String(), nil
}

func writeEntry(sb *strings.Builder, entry Entry) {
	if entry.TvgID != "" {
		sb.WriteString(fmt.Sprintf("#EXTINF:-1 tvg-id=%q,%s\n%s\n", entry.TvgID, entry.Name, entry.URL))
	} else {
		sb.WriteString(fmt.Sprintf("#EXTINF:-1 ,%s\n%s\n", entry.Name, entry.URL))
	}
}
