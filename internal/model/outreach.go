package model

const (
	SourceSerpAPI = "serpapi"

	CompanyNotFound = "No data found"
)

type GenerationRequest struct {
	Name        string `json:"name"`
	Position    string `json:"position"`
	CompanyName string `json:"company_name"`
	CompanySize string `json:"company_size"`
	Note        string `json:"note"`
}

type NewsItem struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Snippet     string `json:"snippet"`
	PublishedAt string `json:"published_at"`
}

// CompanyProfile is built from search results. Error is only set when the
// lookup failed and the record holds nothing but the requested name.
type CompanyProfile struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"type"`
	Website     string `json:"website"`
	Source      string `json:"source"`
	Error       string `json:"error,omitempty"`
}

type PersonProfile struct {
	Name        string `json:"name"`
	ProfileLink string `json:"linkedin"`
	Title       string `json:"title"`
	Snippet     string `json:"snippet"`
	Source      string `json:"source"`
}

type GenerationResult struct {
	LinkedInMessage string     `json:"linkedin_msg"`
	EmailHTML       string     `json:"email_html"`
	NewsItems       []NewsItem `json:"news_summary"`
}
