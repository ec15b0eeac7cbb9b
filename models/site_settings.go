package models

type SocialLinks struct {
	LinkedIn  string `json:"linkedin"`
	GitHub    string `json:"github"`
	Twitter   string `json:"twitter"`
	Instagram string `json:"instagram"`
	Behance   string `json:"behance"`
	Dribbble  string `json:"dribbble"`
}

// SiteSettings is the singleton profile record of the site.
type SiteSettings struct {
	WireID
	Name        string      `json:"name"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone"`
	Location    string      `json:"location"`
	SocialLinks SocialLinks `json:"socialLinks"`
	CVURL       string      `json:"cvUrl"`
}

// DefaultSiteSettings is served whenever no remote copy exists yet.
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		Name:        "Portfolio Owner",
		Title:       "Software Developer",
		Description: "Welcome to my portfolio.",
		Email:       "contact@example.com",
		Phone:       "+1 (555) 010-0000",
		Location:    "Remote",
	}
}
