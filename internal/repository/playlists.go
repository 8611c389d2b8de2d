package repository

import (
	"net/url"
	"strings"

	"commitflow/internal/storage"
)

// PlaylistRepo keeps the list of focus-playlist URLs shown on the
// dashboard.
type PlaylistRepo struct {
	store storage.Store
}

func NewPlaylistRepo(store storage.Store) *PlaylistRepo {
	return &PlaylistRepo{store: store}
}

// Add appends a playlist URL after basic validation.
func (r *PlaylistRepo) Add(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return &ValidationError{Field: "url"}
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return &ValidationError{Field: "url"}
	}

	playlists, err := r.List()
	if err != nil {
		return err
	}
	return storage.SetJSON(r.store, storage.KeyPlaylists, append(playlists, raw))
}

// Delete removes the playlist at position.
func (r *PlaylistRepo) Delete(position int) error {
	playlists, err := r.List()
	if err != nil {
		return err
	}
	if position < 0 || position >= len(playlists) {
		return ErrNotFound
	}
	playlists = append(playlists[:position], playlists[position+1:]...)
	return storage.SetJSON(r.store, storage.KeyPlaylists, playlists)
}

func (r *PlaylistRepo) List() ([]string, error) {
	var playlists []string
	if err := storage.GetJSON(r.store, storage.KeyPlaylists, &playlists); err != nil {
		return nil, err
	}
	if playlists == nil {
		playlists = []string{}
	}
	return playlists, nil
}
