package response_models

type Source struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	URL            string `json:"url"`
	Domain         string `json:"domain"`
	PublishedDate  string `json:"publishedDate,omitempty"`
	Snippet        string `json:"snippet"`
	CitationNumber int    `json:"citationNumber"`
}

type TravelAnswer struct {
	ID        string   `json:"id"`
	Query     string   `json:"query"`
	Answer    string   `json:"answer"`
	Sources   []Source `json:"sources"`
	Timestamp string   `json:"timestamp"`
}
