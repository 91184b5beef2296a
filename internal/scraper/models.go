package scraper

// Profile is a candidate alumni record returned by a scrape. The generator
// is a stand-in for a real scraping pipeline: it fabricates plausible
// profiles from the requested keywords.
type Profile struct {
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	Batch       int      `json:"batch"`
	Degree      string   `json:"degree"`
	Designation string   `json:"designation"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Bio         string   `json:"bio"`
	Image       string   `json:"image"`
	ProfileURL  string   `json:"profileUrl"`
	Skills      []string `json:"skills"`
	Source      string   `json:"source"`
}

const (
	SourceLinkedIn = "linkedin"
	SourceNaukri   = "naukri"
)

type ScrapeRequest struct {
	Keywords string `json:"keywords" validate:"required"`
	Source   string `json:"source" validate:"required,oneof=linkedin naukri"`
	Limit    int    `json:"limit" validate:"omitempty,min=1,max=20"`
}

type ScrapeMeta struct {
	Source   string   `json:"source"`
	Keywords []string `json:"keywords"`
	Limit    int      `json:"limit"`
	Count    int      `json:"count"`
}

type ScrapeResponse struct {
	Profiles []Profile  `json:"profiles"`
	Meta     ScrapeMeta `json:"meta"`
}

// PromoteProfileRequest adds a scraped profile to the alumni directory.
type PromoteProfileRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required"`
	Source      string `json:"source" validate:"required"`
	Phone       string `json:"phone"`
	Batch       int    `json:"batch"`
	Degree      string `json:"degree"`
	Designation string `json:"designation"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Bio         string `json:"bio"`
	Image       string `json:"image"`
	ProfileURL  string `json:"profileUrl"`
}
