package domain

// Website content records managed from the console. All of these are owned by
// the backend; the console holds transient copies only.

type Banner struct {
	ID       FlexID   `json:"id"`
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	Image    string   `json:"image"`
	LinkURL  string   `json:"link_url"`
	Position FlexID   `json:"position"`
	Active   FlexBool `json:"is_active"`
}

type BlogPost struct {
	ID          FlexID   `json:"id"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Excerpt     string   `json:"excerpt"`
	Body        string   `json:"body"`
	CoverImage  string   `json:"cover_image"`
	Author      string   `json:"author"`
	Published   FlexBool `json:"is_published"`
	PublishedAt string   `json:"published_at"`
}

type FAQ struct {
	ID       FlexID   `json:"id"`
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Position FlexID   `json:"position"`
	Active   FlexBool `json:"is_active"`
}

type Page struct {
	ID      FlexID   `json:"id"`
	Title   string   `json:"title"`
	Slug    string   `json:"slug"`
	Body    string   `json:"body"`
	Active  FlexBool `json:"is_active"`
	MetaTag string   `json:"meta_tag"`
}

type Testimonial struct {
	ID      FlexID   `json:"id"`
	Name    string   `json:"name"`
	Role    string   `json:"role"`
	Message string   `json:"message"`
	Rating  FlexID   `json:"rating"`
	Image   string   `json:"image"`
	Active  FlexBool `json:"is_active"`
}
