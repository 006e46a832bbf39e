package models

// ListPaging is the shared pagination block embedded in every list page
// model. PageWindow is the renderable slice of page controls, gaps included.
type ListPaging struct {
	IsDefaultPage    bool `json:"default_page"`
	TotalPages       int  `json:"total_pages"`
	PageSize         int  `json:"page_size"`
	CurrentPageIndex int  `json:"page_index"`
	PrevPageIndex    int  `json:"prev_page_index"`
	NextPageIndex    int  `json:"next_page_index"`
	LastPageIndex    int  `json:"last_page_index"`

	FirstPageLink string `json:"first_page_link"`
	PrevPageLink  string `json:"prev_page_link"`
	NextPageLink  string `json:"next_page_link"`
	LastPageLink  string `json:"last_page_link"`

	PageWindow []*ListPagingPage `json:"page_window"`
}

type ListPagingPage struct {
	Index  int    `json:"index"`
	Link   string `json:"link"`
	Active bool   `json:"active"`
	Gap    bool   `json:"gap"`
}
