package types

// PageData is a struct to hold web page data
type PageData struct {
	Active         string
	Meta           *Meta
	Data           interface{}
	Version        string
	BuildTime      string
	Year           int
	DashboardTitle string
	SiteSubtitle   string
	SiteLogo       string
	Role           string
	Lang           string
	Debug          bool
	DebounceMs     uint
	MainMenuItems  []MainMenuItem
}

type MainMenuItem struct {
	Label    string
	Path     string
	IsActive bool
	Groups   []NavigationGroup
}

type NavigationGroup struct {
	Label string
	Links []NavigationLink
}

type NavigationLink struct {
	Label string
	Path  string
	Icon  string
}

// Meta is a struct to hold the meta data of the page
type Meta struct {
	Title       string
	Description string
	Domain      string
	Path        string
	Templates   string
}

// Empty is an empty struct to use as page data
type Empty struct {
}
