// Package reconcile runs the two reconciliation passes over a playlist:
// the fuzzy match against the EPG catalog and the override-table lookup.
// The passes are independent and each produces its own output playlist.
package reconcile

import (
	"context"
	"fmt"
	"net/http"

	"epgsync/internal/app/config"
	"epgsync/internal/app/epg"
	"epgsync/internal/app/match"
	"epgsync/internal/app/playlist"
)

// MaxUnresolved caps the unresolved section of the clean playlist.
const MaxUnresolved = 10

type Reconciler struct {
	client   *playlist.Client
	resolver *match.Resolver

	playlistURL string
	epgFile     string
}

func New(httpClient *http.Client, conf *config.Config) *Reconciler {
	return &Reconciler{
		client:      playlist.NewClient(httpClient, conf.Headers),
		resolver:    match.NewResolver(match.DefaultOverrides()),
		playlistURL: conf.PlaylistURL,
		epgFile:     conf.EpgFile,
	}
}

// FixResult is the outcome of the fuzzy pass.
type FixResult struct {
	Channels  []playlist.Channel
	Matches   []match.Result
	Unmatched []playlist.Channel
	Playlist  string // rendered corrected playlist
}

// Fix fetches the playlist, loads the EPG catalog and runs the fuzzy
// matcher. The corrected playlist lists matched channels first, then
// the unmatched ones, so the full input set is always covered.
func (r *Reconciler) Fix(ctx context.Context) (*FixResult, error) {
	catalog, err := epg.Load(r.epgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load the EPG catalog %s (an XMLTV file is required next to the playlist URL): %w", r.epgFile, err)
	}

	channels, err := r.client.Fetch(ctx, r.playlistURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch the playlist %s: %w", r.playlistURL, err)
	}

	matches, unmatched := match.Match(channels, catalog)

	entries := make([]playlist.Entry, 0, len(channels))
	for _, m := range matches {
		entries = append(entries, playlist.Entry{
			TvgID: m.EpgID,
			Name:  m.Channel.Name,
			URL:   m.Channel.URL,
		})
	}
	for _, ch := range unmatched {
		entries = append(entries, playlist.Entry{
			Name: ch.Name,
			URL:  ch.URL,
		})
	}

	content, err := playlist.ToM3UFormat(entries, r.epgFile)
	if err != nil {
		return nil, err
	}

	return &FixResult{
		Channels:  channels,
		Matches:   matches,
		Unmatched: unmatched,
		Playlist:  content,
	}, nil
}

// CleanResult is the outcome of the override pass.
type CleanResult struct {
	Channels   []playlist.Channel
	Resolved   []match.Mapped
	Unresolved []match.Mapped
	Playlist   string // rendered clean playlist
}

// Clean fetches the playlist and applies the override table. The EPG
// catalog is not consulted; the pass trades recall for precision.
func (r *Reconciler) Clean(ctx context.Context) (*CleanResult, error) {
	channels, err := r.client.Fetch(ctx, r.playlistURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch the playlist %s: %w", r.playlistURL, err)
	}

	mapped := r.resolver.ResolveAll(channels)

	resolved := make([]match.Mapped, 0, len(mapped))
	unresolved := make([]match.Mapped, 0)
	resolvedEntries := make([]playlist.Entry, 0, len(mapped))
	unresolvedEntries := make([]playlist.Entry, 0)
	for _, m := range mapped {
		if m.HasID {
			resolved = append(resolved, m)
			resolvedEntries = append(resolvedEntries, playlist.Entry{
				TvgID: m.ID,
				Name:  m.Channel.Name,
				URL:   m.Channel.URL,
			})
		} else {
			unresolved = append(unresolved, m)
			unresolvedEntries = append(unresolvedEntries, playlist.Entry{
				Name: m.Channel.Name,
				URL:  m.Channel.URL,
			})
		}
	}

	content, err := playlist.ToCleanM3UFormat(resolvedEntries, unresolvedEntries, r.epgFile, MaxUnresolved)
	if err != nil {
		return nil, err
	}

	return &CleanResult{
		Channels:   channels,
		Resolved:   resolved,
		Unresolved: unresolved,
		Playlist:   content,
	}, nil
}
