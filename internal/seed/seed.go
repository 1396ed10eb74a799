// Package seed loads an optional yaml file with demo accounts, favorites
// and playlists, applied once at startup. Meant for local development and
// demos; the stores start empty without it.
package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"moviefinder/internal/auth"
	"moviefinder/internal/domain"
	"moviefinder/internal/logger"
	"moviefinder/internal/store"
)

// File is the top-level structure of the seed yaml.
type File struct {
	Users []UserSpec `yaml:"users"`
}

// UserSpec is one demo account with its collections.
type UserSpec struct {
	Name      string         `yaml:"name"`
	Email     string         `yaml:"email"`
	Password  string         `yaml:"password"`
	Favorites []MovieSpec    `yaml:"favorites,omitempty"`
	Playlists []PlaylistSpec `yaml:"playlists,omitempty"`
}

// PlaylistSpec is one demo playlist.
type PlaylistSpec struct {
	Name   string      `yaml:"name"`
	Movies []MovieSpec `yaml:"movies,omitempty"`
}

// MovieSpec is a minimal movie reference for seeding.
type MovieSpec struct {
	ID         int64  `yaml:"id"`
	Title      string `yaml:"title,omitempty"`
	PosterPath string `yaml:"poster_path,omitempty"`
}

// Loader reads and parses the seed file.
type Loader struct {
	filePath string
}

// NewLoader creates a seed loader for the given file path.
func NewLoader(filePath string) *Loader {
	return &Loader{filePath: filePath}
}

// Load reads and parses the seed yaml.
func (l *Loader) Load() (*File, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse seed yaml: %w", err)
	}
	return &file, nil
}

// Apply registers the seeded accounts and fills their collections. Entries
// that fail validation are logged and skipped; seeding never aborts startup.
func Apply(file *File, users *store.UserStore, playlists *store.PlaylistStore, favorites *store.FavoriteStore, log logger.Logger) {
	for _, spec := range file.Users {
		if err := domain.ValidateRegistration(spec.Name, spec.Email, spec.Password); err != nil {
			log.Warn("skipping invalid seed user",
				logger.String("email", spec.Email),
				logger.Error(err))
			continue
		}

		hash, err := auth.HashPassword(spec.Password)
		if err != nil {
			log.Warn("skipping seed user, hash failed",
				logger.String("email", spec.Email),
				logger.Error(err))
			continue
		}

		user, err := users.Create(spec.Name, spec.Email, hash)
		if err != nil {
			log.Warn("skipping seed user",
				logger.String("email", spec.Email),
				logger.Error(err))
			continue
		}

		for _, movie := range spec.Favorites {
			if _, err := favorites.Add(user.ID, movieRef(movie)); err != nil {
				log.Warn("skipping seed favorite",
					logger.String("email", spec.Email),
					logger.Int64("movie_id", movie.ID),
					logger.Error(err))
			}
		}

		for _, playlistSpec := range spec.Playlists {
			playlist, err := playlists.Create(user.ID, playlistSpec.Name)
			if err != nil {
				log.Warn("skipping seed playlist",
					logger.String("email", spec.Email),
					logger.String("playlist", playlistSpec.Name),
					logger.Error(err))
				continue
			}
			for _, movie := range playlistSpec.Movies {
				if _, err := playlists.AddMovie(playlist.ID, user.ID, movieRef(movie)); err != nil {
					log.Warn("skipping seed playlist movie",
						logger.Int64("playlist_id", playlist.ID),
						logger.Int64("movie_id", movie.ID),
						logger.Error(err))
				}
			}
		}
	}

	log.Info("seed applied",
		logger.Int("users", users.Count()),
		logger.Int("playlists", playlists.Count()))
}

func movieRef(spec MovieSpec) domain.MovieRef {
	return domain.MovieRef{ID: spec.ID, Title: spec.Title, PosterPath: spec.PosterPath}
}
