package playlist

import (
	"regexp"
	"strings"
)

// Channel is a single playlist entry as authored upstream.
type Channel struct {
	Name  string `json:"name"`  // display name from the #EXTINF line
	TvgID string `json:"tvgId"` // externally supplied hint, often empty or wrong
	URL   string `json:"url"`   // stream location
}

const extinfMarker = "#EXTINF"

var tvgIDRegex = regexp.MustCompile(`tvg-id="(.*?)"`)

// ParseM3U extracts channel entries from extended-M3U text.
// An entry is a #EXTINF directive line followed by a location line.
// A missing tvg-id attribute is tolerated (treated as empty). Entries
// with an empty display name or no location line are dropped.
func ParseM3U(data string) []Channel {
	lines := strings.Split(strings.ReplaceAll(data, "\r\n", "\n"), "\n")

	channels := make([]Channel, 0, len(lines)/2)
	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if !strings.HasPrefix(line, extinfMarker) {
			continue
		}

		// Extract the optional tvg-id attribute
		var tvgID string
		if matches := tvgIDRegex.FindStringSubmatch(line); len(matches) == 2 {
			tvgID = matches[1]
		}

		// The display name trails the first comma
		var name string
		if idx := strings.Index(line, ","); idx >= 0 {
			name = strings.TrimSpace(line[idx+1:])
		}
		if name == "" {
			continue
		}

		// The location is the next non-blank, non-directive line
		var streamURL string
		for j := i + 1; j < len(lines); j++ {
			next := strings.TrimSpace(lines[j])
			if next == "" {
				continue
			}
			if strings.HasPrefix(next, "#") {
				break
			}
			streamURL = next
			i = j
			break
		}
		if streamURL == "" {
			continue
		}

		channels = append(channels, Channel{
			Name:  name,
			TvgID: tvgID,
			URL:   streamURL,
		})
	}
	return channels
}
