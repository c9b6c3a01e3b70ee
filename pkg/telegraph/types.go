package telegraph

import "github.com/alterxyz/gotelegraph/pkg/dom"

// Account is a Telegraph account as returned by the API. AccessToken and
// AuthURL are only present on the calls that issue them.
type Account struct {
	ShortName   string `json:"short_name"`
	AuthorName  string `json:"author_name"`
	AuthorURL   string `json:"author_url,omitempty"`
	AccessToken string `json:"access_token,omitempty"`
	AuthURL     string `json:"auth_url,omitempty"`
	PageCount   int    `json:"page_count,omitempty"`
}

// Page is a Telegraph page. Content is only populated when the call asked
// for it with return_content.
type Page struct {
	Path        string      `json:"path"`
	URL         string      `json:"url"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	AuthorName  string      `json:"author_name,omitempty"`
	AuthorURL   string      `json:"author_url,omitempty"`
	ImageURL    string      `json:"image_url,omitempty"`
	Content     []*dom.Node `json:"content,omitempty"`
	Views       int         `json:"views"`
	CanEdit     bool        `json:"can_edit,omitempty"`
}

// PageList is one window of an account's pages, newest first.
type PageList struct {
	TotalCount int    `json:"total_count"`
	Pages      []Page `json:"pages"`
}

// PageViews is the view counter for a page, optionally scoped to a period.
type PageViews struct {
	Views int `json:"views"`
}

// PageOptions carries the optional per-page fields of a create or edit call.
// Empty author fields fall back to the client's account defaults.
type PageOptions struct {
	AuthorName    string
	AuthorURL     string
	ReturnContent bool
}

// ViewsQuery scopes a GetViews call to a period. A more precise field is
// only honored when all less precise ones are set, mirroring the API rule.
type ViewsQuery struct {
	Year  int
	Month int
	Day   int
	Hour  int
}
