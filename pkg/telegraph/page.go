package telegraph

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/alterxyz/gotelegraph/internal/logging"
	"github.com/alterxyz/gotelegraph/pkg/dom"
)

// Page list window limits imposed by the API.
const (
	minPageLimit = 1
	maxPageLimit = 200
)

// Position selects which end of a page AppendMarkdown splices content onto.
type Position int

// Splice positions.
const (
	Front Position = iota
	Back
)

// tombstone is the content DeletePage overwrites a page with; the API has
// no real delete operation.
//
//nolint:gochecknoglobals // Read-only.
var tombstone = []*dom.Node{
	dom.Element(dom.TagP, dom.Text("This page has been deleted.")),
}

// CreatePage creates a page from DOM content and returns it.
func (c *Client) CreatePage(ctx context.Context, title string, content []*dom.Node, opts *PageOptions) (*Page, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}

	params, err := c.pageParams(ctx, content, opts)
	if err != nil {
		return nil, err
	}
	params.Set("title", title)

	var page Page
	if err := c.invoke(ctx, http.MethodPost, "createPage", params, &page); err != nil {
		return nil, err
	}

	c.logger.Debug("page created",
		logging.FieldPath, page.Path,
		logging.FieldURL, page.URL,
	)
	return &page, nil
}

// CreatePageMarkdown converts Markdown and creates a page from it.
func (c *Client) CreatePageMarkdown(ctx context.Context, title, markdown string, opts *PageOptions) (*Page, error) {
	content, err := c.converter.ConvertString(markdown)
	if err != nil {
		return nil, err
	}
	return c.CreatePage(ctx, title, content, opts)
}

// EditPage replaces the content of an existing page. An empty title keeps
// the page's current title, which costs an extra read.
func (c *Client) EditPage(ctx context.Context, pathOrURL, title string, content []*dom.Node, opts *PageOptions) (*Page, error) {
	path, err := ExtractPath(pathOrURL)
	if err != nil {
		return nil, err
	}

	if title == "" {
		existing, err := c.GetPage(ctx, path, false)
		if err != nil {
			return nil, err
		}
		title = existing.Title
	}

	params, err := c.pageParams(ctx, content, opts)
	if err != nil {
		return nil, err
	}
	params.Set("path", path)
	params.Set("title", title)

	var page Page
	if err := c.invoke(ctx, http.MethodPost, "editPage", params, &page); err != nil {
		return nil, err
	}

	c.logger.Debug("page edited",
		logging.FieldPath, page.Path,
		logging.FieldURL, page.URL,
	)
	return &page, nil
}

// EditPageMarkdown converts Markdown and replaces a page's content with it.
func (c *Client) EditPageMarkdown(ctx context.Context, pathOrURL, title, markdown string, opts *PageOptions) (*Page, error) {
	content, err := c.converter.ConvertString(markdown)
	if err != nil {
		return nil, err
	}
	return c.EditPage(ctx, pathOrURL, title, content, opts)
}

// AppendMarkdown converts Markdown and splices it onto an existing page,
// before the current content (Front) or after it (Back).
func (c *Client) AppendMarkdown(ctx context.Context, pathOrURL, markdown string, pos Position, opts *PageOptions) (*Page, error) {
	path, err := ExtractPath(pathOrURL)
	if err != nil {
		return nil, err
	}

	addition, err := c.converter.ConvertString(markdown)
	if err != nil {
		return nil, err
	}

	existing, err := c.GetPage(ctx, path, true)
	if err != nil {
		return nil, err
	}

	var content []*dom.Node
	if pos == Front {
		content = append(addition, existing.Content...)
	} else {
		content = append(existing.Content, addition...)
	}

	return c.EditPage(ctx, path, existing.Title, content, opts)
}

// GetPage fetches a page, retrying transient failures with the client's
// configured attempt count and delay.
func (c *Client) GetPage(ctx context.Context, pathOrURL string, returnContent bool) (*Page, error) {
	path, err := ExtractPath(pathOrURL)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("path", path)
	params.Set("return_content", strconv.FormatBool(returnContent))

	var lastErr error
	for attempt := 1; attempt <= c.retryAttempts; attempt++ {
		var page Page
		if err := c.invoke(ctx, http.MethodGet, "getPage", params, &page); err != nil {
			lastErr = err
			if attempt < c.retryAttempts {
				c.logger.Warn("getPage failed, retrying",
					logging.FieldPath, path,
					logging.FieldAttempt, attempt,
					logging.FieldError, err,
				)
				if serr := c.sleep(ctx); serr != nil {
					return nil, serr
				}
			}
			continue
		}
		return &page, nil
	}

	return nil, fmt.Errorf("getPage after %d attempts: %w", c.retryAttempts, lastErr)
}

// GetPageList returns one window of the account's pages, sorted by most
// recently created. The limit is clamped to the API's 1..200 range.
func (c *Client) GetPageList(ctx context.Context, offset, limit int) (*PageList, error) {
	params, err := c.authorizedParams(ctx)
	if err != nil {
		return nil, err
	}
	params.Set("offset", strconv.Itoa(max(0, offset)))
	params.Set("limit", strconv.Itoa(min(maxPageLimit, max(minPageLimit, limit))))

	var list PageList
	if err := c.invoke(ctx, http.MethodGet, "getPageList", params, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetViews returns the view counter for a page. Period fields in q are only
// sent while every less precise field is also set.
func (c *Client) GetViews(ctx context.Context, pathOrURL string, q ViewsQuery) (*PageViews, error) {
	path, err := ExtractPath(pathOrURL)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("path", path)
	if q.Year != 0 {
		params.Set("year", strconv.Itoa(q.Year))
		if q.Month != 0 {
			params.Set("month", strconv.Itoa(q.Month))
			if q.Day != 0 {
				params.Set("day", strconv.Itoa(q.Day))
				if q.Hour != 0 {
					params.Set("hour", strconv.Itoa(q.Hour))
				}
			}
		}
	}

	var views PageViews
	if err := c.invoke(ctx, http.MethodGet, "getViews", params, &views); err != nil {
		return nil, err
	}
	return &views, nil
}

// DeletePage overwrites a page with tombstone content, the closest the API
// offers to deletion, then reads it back to confirm the overwrite took.
func (c *Client) DeletePage(ctx context.Context, pathOrURL string) error {
	path, err := ExtractPath(pathOrURL)
	if err != nil {
		return err
	}

	params, err := c.pageParams(ctx, tombstone, &PageOptions{AuthorName: "Deleted"})
	if err != nil {
		return err
	}
	params.Set("path", path)
	params.Set("title", "404")

	if err := c.invoke(ctx, http.MethodPost, "editPage", params, nil); err != nil {
		return err
	}

	latest, err := c.GetPage(ctx, path, true)
	if err != nil {
		return err
	}
	if !dom.EqualNodes(latest.Content, tombstone) {
		return errors.New("telegraph: page content was not replaced")
	}
	return nil
}

// pageParams builds the shared parameter set for page write calls: token,
// serialized content, return_content, and author fields with their account
// defaults applied.
func (c *Client) pageParams(ctx context.Context, content []*dom.Node, opts *PageOptions) (url.Values, error) {
	params, err := c.authorizedParams(ctx)
	if err != nil {
		return nil, err
	}

	wire, err := dom.Marshal(content)
	if err != nil {
		return nil, err
	}
	params.Set("content", string(wire))

	if opts == nil {
		opts = &PageOptions{}
	}
	params.Set("return_content", strconv.FormatBool(opts.ReturnContent))

	authorName := opts.AuthorName
	if authorName == "" {
		authorName = c.authorName
	}
	params.Set("author_name", authorName)

	authorURL := opts.AuthorURL
	if authorURL == "" {
		authorURL = c.authorURL
	}
	if authorURL != "" {
		params.Set("author_url", authorURL)
	}

	return params, nil
}
