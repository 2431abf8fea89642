package catalog

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type Document struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Type        string   `json:"type"`
	Size        string   `json:"size"`
	Date        string   `json:"date"`
	Description string   `json:"description"`
	FilePath    string   `json:"filePath"`
	Tags        []string `json:"tags"`
}

type TeamMember struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Position     string   `json:"position"`
	Image        string   `json:"image"`
	Bio          string   `json:"bio"`
	Experience   string   `json:"experience"`
	Expertise    []string `json:"expertise"`
	LinkedIn     string   `json:"linkedin"`
	Email        string   `json:"email"`
	Achievements []string `json:"achievements"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

// Service serves the static company listings shown on the website.
// The data is hardcoded and returned verbatim; there is no querying.
type Service interface {
	Documents() []Document
	Team() []TeamMember
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type catalogService struct{}

func New() Service {
	return &catalogService{}
}

func (s *catalogService) Documents() []Document {
	return []Document{
		{
			ID:          1,
			Title:       "FIEO Certificate - Yawal Gupta",
			Category:    "certifications",
			Type:        "PDF",
			Size:        "2.4 MB",
			Date:        "2024-01-15",
			Description: "Federation of Indian Export Organizations certificate for international trade operations",
			FilePath:    "/documents/fieo certificate yawal gupta.pdf",
			Tags:        []string{"Export", "FIEO", "International Trade"},
		},
		{
			ID:          2,
			Title:       "RCMC APEDA Certificate - Yawal Gupta",
			Category:    "certifications",
			Type:        "PDF",
			Size:        "1.8 MB",
			Date:        "2023-12-20",
			Description: "Registration-cum-Membership Certificate from Agricultural and Processed Food Products Export Development Authority",
			FilePath:    "/documents/rcmc APEDA YG.pdf",
			Tags:        []string{"APEDA", "Agriculture", "Export"},
		},
		{
			ID:          3,
			Title:       "Business License",
			Category:    "licenses",
			Type:        "PDF",
			Size:        "3.2 MB",
			Date:        "2024-02-10",
			Description: "Official business license for export-import operations and international trade",
			FilePath:    "/documents/license.pdf",
			Tags:        []string{"Business", "License", "Trade"},
		},
	}
}

func (s *catalogService) Team() []TeamMember {
	return []TeamMember{
		{
			ID:         1,
			Name:       "Hukam Chand Gupta",
			Position:   "Director",
			Image:      "/images/Hukam Chand Gupta.jpeg",
			Bio:        "Visionary leader with extensive experience in international trade and agricultural exports. Passionate about connecting India's finest products to global markets and building sustainable business relationships.",
			Experience: "25+ years",
			Expertise: []string{
				"International Trade",
				"Strategic Planning",
				"Business Development",
				"Agricultural Exports",
			},
			LinkedIn: "#",
			Email:    "hukam@the11eximoverseas.com",
			Achievements: []string{
				"Established global trade network",
				"Led successful export operations",
				"Industry leadership recognition",
			},
		},
		{
			ID:         2,
			Name:       "Yawal Gupta",
			Position:   "Director",
			Image:      "/images/Yawal Gupta.jpeg",
			Bio:        "Dynamic leader specializing in modern trade practices and digital transformation of export-import operations. Committed to innovation and excellence in international business.",
			Experience: "15+ years",
			Expertise: []string{
				"Digital Trade Solutions",
				"Export Operations",
				"Client Relations",
				"Market Development",
			},
			LinkedIn: "#",
			Email:    "yawal@the11eximoverseas.com",
			Achievements: []string{
				"Modernized trade processes",
				"Expanded market reach",
				"Technology integration success",
			},
		},
	}
}
