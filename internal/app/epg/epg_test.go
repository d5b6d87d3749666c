package epg

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const sampleXMLTV = `<?xml version="1.0" encoding="UTF-8"?>
<tv generator-info-name="test">
  <channel id="TF1.fr">
    <display-name lang="fr">TF1</display-name>
    <display-name lang="fr">TF1 HD</display-name>
  </channel>
  <channel id="France2.fr">
    <display-name>France 2</display-name>
  </channel>
  <channel id="">
    <display-name>Ghost</display-name>
  </channel>
  <channel id="Empty.fr"></channel>
</tv>
`

func TestParse(t *testing.T) {
	channels, err := Parse([]byte(sampleXMLTV))
	if err != nil {
		t.Fatal(err)
	}

	if len(channels) != 2 {
		t.Fatalf("got %d channels, want 2 (records without id or name are skipped): %+v", len(channels), channels)
	}

	// The first display-name entry wins
	if channels[0].ID != "TF1.fr" || channels[0].DisplayName() != "TF1" {
		t.Errorf("got %q/%q, want TF1.fr/TF1", channels[0].ID, channels[0].DisplayName())
	}
	if channels[1].ID != "France2.fr" || channels[1].DisplayName() != "France 2" {
		t.Errorf("got %q/%q, want France2.fr/France 2", channels[1].ID, channels[1].DisplayName())
	}
}

func TestParseMalformed(t *testing.T) {
	if _, err := Parse([]byte("<tv><channel id=\"x\">")); err == nil {
		t.Error("expected an error for a truncated document")
	}
}

func TestParseNoChannels(t *testing.T) {
	_, err := Parse([]byte("<tv></tv>"))
	if !errors.Is(err, ErrNoChannels) {
		t.Errorf("got %v, want ErrNoChannels", err)
	}
}

func TestLoad(t *testing.T) {
	fPath := filepath.Join(t.TempDir(), "epg.xml")
	if err := os.WriteFile(fPath, []byte(sampleXMLTV), 0o644); err != nil {
		t.Fatal(err)
	}

	channels, err := Load(fPath)
	if err != nil {
		t.Fatal(err)
	}
	if len(channels) != 2 {
		t.Errorf("got %d channels, want 2", len(channels))
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.xml")); err == nil {
		t.Error("expected an error for a missing catalog file")
	}
}
