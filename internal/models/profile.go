package models

// Profile holds the biography content shown around the project gallery
type Profile struct {
	Site         SiteMeta      `json:"site" yaml:"site"`
	About        []string      `json:"about" yaml:"about"`
	SkillGroups  []SkillGroup  `json:"skills" yaml:"skills"`
	Achievements []Achievement `json:"achievements" yaml:"achievements"`
	Experience   []Experience  `json:"experience" yaml:"experience"`
	SocialLinks  []SocialLink  `json:"social_links" yaml:"social_links"`
}

// SiteMeta is page-level metadata (title, description, keywords)
type SiteMeta struct {
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Keywords    []string `json:"keywords" yaml:"keywords"`
	Author      string   `json:"author" yaml:"author"`
}

// SkillGroup is a named list of skills
type SkillGroup struct {
	Category string   `json:"category" yaml:"category"`
	Items    []string `json:"items" yaml:"items"`
}

// Achievement is an award or recognition
type Achievement struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Highlight   bool   `json:"highlight" yaml:"highlight"`
}

// Experience is one entry of the work timeline
type Experience struct {
	Company      string   `json:"company" yaml:"company"`
	Role         string   `json:"role" yaml:"role"`
	Type         string   `json:"type" yaml:"type"` // Remote, On-Site, Online
	Location     string   `json:"location" yaml:"location"`
	Duration     string   `json:"duration" yaml:"duration"`
	Status       string   `json:"status" yaml:"status"` // Active or Completed
	Description  []string `json:"description" yaml:"description"`
	Technologies []string `json:"technologies" yaml:"technologies"`
}

// Active reports whether the position is ongoing
func (e Experience) Active() bool {
	return e.Status == "Active"
}

// SocialLink is a contact or profile link
type SocialLink struct {
	Name string `json:"name" yaml:"name"`
	Href string `json:"href" yaml:"href"`
}
