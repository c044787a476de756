package entity

// Book is a catalog record. ID is assigned at creation and never changes;
// Authors, Publisher, PublishedDate, Language and Summary come from the
// enrichment providers.
type Book struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	ISBN          string   `json:"ISBN"`
	Genre         string   `json:"genre"`
	Authors       string   `json:"authors"`
	Publisher     string   `json:"publisher"`
	PublishedDate string   `json:"publishedDate"`
	Language      []string `json:"language"`
	Summary       string   `json:"summary"`
}
