package reconcile

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"epgsync/internal/app/config"
)

const testPlaylist = `#EXTM3U
#EXTINF:-1 ,TF1
http://example.com/tf1
#EXTINF:-1 ,Unknown Channel X
http://example.com/x
`

const testCatalog = `<?xml version="1.0" encoding="UTF-8"?>
<tv>
  <channel id="TF1.fr">
    <display-name lang="fr">TF1</display-name>
  </channel>
</tv>
`

func newTestReconciler(t *testing.T, playlistBody string) *Reconciler {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(playlistBody))
	}))
	t.Cleanup(srv.Close)

	epgPath := filepath.Join(t.TempDir(), "epg.xml")
	if err := os.WriteFile(epgPath, []byte(testCatalog), 0o644); err != nil {
		t.Fatal(err)
	}

	return New(srv.Client(), &config.Config{
		PlaylistURL: srv.URL,
		EpgFile:     epgPath,
	})
}

func TestFix(t *testing.T) {
	rec := newTestReconciler(t, testPlaylist)

	result, err := rec.Fix(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if len(result.Channels) != 2 {
		t.Fatalf("got %d channels, want 2", len(result.Channels))
	}
	if len(result.Matches) != 1 || len(result.Unmatched) != 1 {
		t.Fatalf("got %d matches and %d unmatched, want 1 and 1",
			len(result.Matches), len(result.Unmatched))
	}

	m := result.Matches[0]
	if m.EpgID != "TF1.fr" || m.Score != 1.0 {
		t.Errorf("got %+v, want TF1 matched to TF1.fr at score 1.0", m)
	}

	// Matched entries come first, unmatched follow without an identifier
	lines := strings.Split(strings.TrimRight(result.Playlist, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d playlist lines, want 5:\n%s", len(lines), result.Playlist)
	}
	if !strings.Contains(lines[0], "url-tvg=") {
		t.Errorf("header does not declare the EPG resource: %q", lines[0])
	}
	if lines[1] != "#EXTINF:-1 tvg-id=\"TF1.fr\",TF1" {
		t.Errorf("got %q, want the matched entry to carry tvg-id", lines[1])
	}
	if lines[3] != "#EXTINF:-1 ,Unknown Channel X" {
		t.Errorf("got %q, want the unmatched entry without tvg-id", lines[3])
	}
}

func TestFixMissingCatalog(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(testPlaylist))
	}))
	t.Cleanup(srv.Close)

	rec := New(srv.Client(), &config.Config{
		PlaylistURL: srv.URL,
		EpgFile:     filepath.Join(t.TempDir(), "missing.xml"),
	})

	if _, err := rec.Fix(context.Background()); err == nil {
		t.Error("expected an error when the EPG catalog is unreadable")
	}
}

func TestFixPlaylistServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	epgPath := filepath.Join(t.TempDir(), "epg.xml")
	if err := os.WriteFile(epgPath, []byte(testCatalog), 0o644); err != nil {
		t.Fatal(err)
	}

	rec := New(srv.Client(), &config.Config{
		PlaylistURL: srv.URL,
		EpgFile:     epgPath,
	})

	if _, err := rec.Fix(context.Background()); err == nil {
		t.Error("expected an error when the playlist source fails")
	}
}

func TestClean(t *testing.T) {
	rec := newTestReconciler(t, testPlaylist)

	result, err := rec.Clean(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if len(result.Resolved) != 1 || len(result.Unresolved) != 1 {
		t.Fatalf("got %d resolved and %d unresolved, want 1 and 1",
			len(result.Resolved), len(result.Unresolved))
	}
	if result.Resolved[0].ID != "TF1.fr" {
		t.Errorf("got id %q, want TF1.fr from the override table", result.Resolved[0].ID)
	}

	if !strings.Contains(result.Playlist, "# resolved channels (1)") {
		t.Errorf("missing resolved section header:\n%s", result.Playlist)
	}
	if !strings.Contains(result.Playlist, "# unresolved channels (1 of 1)") {
		t.Errorf("missing unresolved section header:\n%s", result.Playlist)
	}
	if !strings.Contains(result.Playlist, "tvg-id=\"TF1.fr\",TF1") {
		t.Errorf("resolved entry missing its identifier:\n%s", result.Playlist)
	}
}
