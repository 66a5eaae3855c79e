package models

// Movie is a catalog item. GenreID is a soft reference and is not checked
// against the genres table.
type Movie struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	PosterURL   string `json:"posterUrl"`
	GenreID     *int64 `json:"genreId"`
}

// ApplyUpdate copies the mutable catalog fields from in.
func (m *Movie) ApplyUpdate(in Movie) {
	m.Description = in.Description
	m.PosterURL = in.PosterURL
	m.Title = in.Title
	m.GenreID = in.GenreID
}
