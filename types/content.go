package types

type Partner struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Logo        string   `json:"logo"`
	Description string   `json:"description"`
	Projects    int      `json:"projects"`
	Areas       []string `json:"areas"`
}

// Feature is a titled blurb: partnership benefits, partnership types, contact channels.
type Feature struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Content     string `json:"content,omitempty"`
	Description string `json:"description"`
}

type TeamMember struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Image string `json:"image"`
	Bio   string `json:"bio"`
}

type Stat struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

type WorkflowStep struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}
