package domain

// Genre is a catalog genre as exposed by the upstream movie database.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// MovieRef is a movie record supplied by the external catalog. The core only
// depends on ID; everything else is opaque display payload carried along for
// the UI. Two MovieRefs are the same movie iff their IDs are equal, even when
// the display fields have drifted.
type MovieRef struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview,omitempty"`
	PosterPath  string  `json:"poster_path,omitempty"`
	ReleaseDate string  `json:"release_date,omitempty"`
	VoteAverage float64 `json:"vote_average,omitempty"`
	VoteCount   int64   `json:"vote_count,omitempty"`
	Runtime     int     `json:"runtime,omitempty"`
	Budget      int64   `json:"budget,omitempty"`
	Revenue     int64   `json:"revenue,omitempty"`
	Genres      []Genre `json:"genres,omitempty"`
	GenreIDs    []int64 `json:"genre_ids,omitempty"`
}

// Validate checks the only field the core relies on.
func (m MovieRef) Validate() error {
	if m.ID <= 0 {
		return NewValidationError("movie", "movie id is required")
	}
	return nil
}
