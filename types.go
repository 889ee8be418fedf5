package folio

// BlogPost is the core content type stored in SQLite and rendered by templates.
type BlogPost struct {
	Title     string
	Date      string
	Tags      []string
	Summary   string
	Link      string
	Slug      string
	Content   string
	Hero      string // optional social-card image, relative or absolute
	HeroAlt   string
	Published bool
}

// Image records an uploaded image managed through the admin dashboard.
type Image struct {
	Filename     string
	OriginalName string
	Width        int
	Height       int
	Size         int
	UploadedAt   string
}
