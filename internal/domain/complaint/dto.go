package complaint

// CreateRequest carries the complaint form fields.
type CreateRequest struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description" binding:"required"`
	Category    string `form:"category" binding:"required"`
	Wilaya      string `form:"wilaya" binding:"required,wilaya"`
	Priority    string `form:"priority"`
}

// Dashboard aggregates one user's complaints for the home page.
type Dashboard struct {
	Total    int
	Open     int
	Resolved int
	Recent   []Complaint
}

// Analytics aggregates the whole corpus for administrators.
type Analytics struct {
	Total      int              `json:"total"`
	ByStatus   map[Status]int   `json:"by_status"`
	ByCategory map[Category]int `json:"by_category"`
}
