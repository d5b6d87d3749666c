// Package epg loads XMLTV channel catalogs.
package epg

import (
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"strings"
)

var ErrNoChannels = errors.New("the EPG catalog contains no channels")

// TV is the root element of an XMLTV document. Programme data is not
// needed for name reconciliation and is left undecoded.
type TV struct {
	XMLName  xml.Name  `xml:"tv"`
	Channels []Channel `xml:"channel"`
}

// Channel is a single catalog record with its canonical identifier.
type Channel struct {
	ID           string        `xml:"id,attr"`
	DisplayNames []DisplayName `xml:"display-name"`
}

type DisplayName struct {
	Lang  string `xml:"lang,attr"`
	Value string `xml:",chardata"`
}

// DisplayName returns the first localized display name of the channel.
func (c Channel) DisplayName() string {
	if len(c.DisplayNames) == 0 {
		return ""
	}
	return strings.TrimSpace(c.DisplayNames[0].Value)
}

func (c Channel) valid() bool {
	return c.ID != "" && c.DisplayName() != ""
}

// Load reads the XMLTV catalog at fPath and returns its channel records.
// Records without an identifier or display name are skipped.
func Load(fPath string) ([]Channel, error) {
	data, err := os.ReadFile(fPath)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes XMLTV text into channel records.
func Parse(data []byte) ([]Channel, error) {
	var doc TV
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse EPG catalog: %w", err)
	}

	channels := make([]Channel, 0, len(doc.Channels))
	for _, ch := range doc.Channels {
		if !ch.valid() {
			continue
		}
		channels = append(channels, ch)
	}
	if len(channels) == 0 {
		return nil, ErrNoChannels
	}
	return channels, nil
}
