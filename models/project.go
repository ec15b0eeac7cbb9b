package models

// Project is a single portfolio entry.
type Project struct {
	WireID
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	LongDescription string   `json:"longDescription"`
	Features        []string `json:"features"`
	Technologies    []string `json:"technologies"`
	MainImage       string   `json:"mainImage"`
	Images          []string `json:"images"`
	Videos          []string `json:"videos,omitempty"`
	DemoURL         string   `json:"demoUrl,omitempty"`
	GithubURL       string   `json:"githubUrl,omitempty"`
	ClientRemarks   string   `json:"clientRemarks,omitempty"`
	Category        string   `json:"category"`
	CompletedDate   string   `json:"completedDate"`
}

// ProjectPatch is a partial update; nil fields are left untouched by the server.
type ProjectPatch struct {
	Title           *string   `json:"title,omitempty"`
	Description     *string   `json:"description,omitempty"`
	LongDescription *string   `json:"longDescription,omitempty"`
	Features        *[]string `json:"features,omitempty"`
	Technologies    *[]string `json:"technologies,omitempty"`
	MainImage       *string   `json:"mainImage,omitempty"`
	Images          *[]string `json:"images,omitempty"`
	Videos          *[]string `json:"videos,omitempty"`
	DemoURL         *string   `json:"demoUrl,omitempty"`
	GithubURL       *string   `json:"githubUrl,omitempty"`
	ClientRemarks   *string   `json:"clientRemarks,omitempty"`
	Category        *string   `json:"category,omitempty"`
	CompletedDate   *string   `json:"completedDate,omitempty"`
}

// Apply merges the non-nil fields of p into project.
func (p ProjectPatch) Apply(project *Project) {
	setString(&project.Title, p.Title)
	setString(&project.Description, p.Description)
	setString(&project.LongDescription, p.LongDescription)
	setList(&project.Features, p.Features)
	setList(&project.Technologies, p.Technologies)
	setString(&project.MainImage, p.MainImage)
	setList(&project.Images, p.Images)
	setList(&project.Videos, p.Videos)
	setString(&project.DemoURL, p.DemoURL)
	setString(&project.GithubURL, p.GithubURL)
	setString(&project.ClientRemarks, p.ClientRemarks)
	setString(&project.Category, p.Category)
	setString(&project.CompletedDate, p.CompletedDate)
}

// File is a binary attachment sent as one multipart part.
type File struct {
	Name string
	Data []byte
}

// ProjectUpload is the payload of the multipart create and update calls.
// ExistingImages and ExistingVideos list the already-stored media URLs
// to keep on update; anything not listed and not re-uploaded is dropped.
type ProjectUpload struct {
	Project
	MainImageFile  *File
	ImageFiles     []File
	VideoFiles     []File
	ExistingImages []string
	ExistingVideos []string
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setList(dst *[]string, v *[]string) {
	if v != nil {
		*dst = append([]string(nil), (*v)...)
	}
}
