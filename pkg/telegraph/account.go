package telegraph

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/alterxyz/gotelegraph/internal/logging"
)

// accountFields are the fields GetAccountInfo asks for by default.
//
//nolint:gochecknoglobals // Read-only lookup table.
var accountFields = []string{"short_name", "author_name", "author_url", "page_count"}

// CreateAccount creates a new Telegraph account and returns it, including
// its access token. The token is NOT adopted by the client or persisted;
// use the lazy AccessToken flow for that.
func (c *Client) CreateAccount(ctx context.Context, shortName, authorName, authorURL string) (*Account, error) {
	return c.createAccount(ctx, shortName, authorName, authorURL)
}

func (c *Client) createAccount(ctx context.Context, shortName, authorName, authorURL string) (*Account, error) {
	params := url.Values{}
	params.Set("short_name", shortName)
	params.Set("author_name", authorName)
	if authorURL != "" {
		params.Set("author_url", authorURL)
	}

	var account Account
	if err := c.invoke(ctx, http.MethodPost, "createAccount", params, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// GetAccountInfo returns information about the client's account. With no
// fields given, the full standard field set is requested.
func (c *Client) GetAccountInfo(ctx context.Context, fields ...string) (*Account, error) {
	params, err := c.authorizedParams(ctx)
	if err != nil {
		return nil, err
	}

	if len(fields) == 0 {
		fields = accountFields
	}
	encoded, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("encode fields: %w", err)
	}
	params.Set("fields", string(encoded))

	var account Account
	if err := c.invoke(ctx, http.MethodGet, "getAccountInfo", params, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// AuthorizationURL returns a short-lived URL that logs a browser in as the
// account owner.
func (c *Client) AuthorizationURL(ctx context.Context) (string, error) {
	account, err := c.GetAccountInfo(ctx, "auth_url")
	if err != nil {
		return "", err
	}
	return account.AuthURL, nil
}

// EditAccountInfo updates the account fields that are non-empty and returns
// the updated account.
func (c *Client) EditAccountInfo(ctx context.Context, shortName, authorName, authorURL string) (*Account, error) {
	params, err := c.authorizedParams(ctx)
	if err != nil {
		return nil, err
	}
	if shortName != "" {
		params.Set("short_name", shortName)
	}
	if authorName != "" {
		params.Set("author_name", authorName)
	}
	if authorURL != "" {
		params.Set("author_url", authorURL)
	}

	var account Account
	if err := c.invoke(ctx, http.MethodPost, "editAccountInfo", params, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// RevokeAccessToken invalidates the current token, adopts the replacement
// the API issues, and rewrites the token store.
func (c *Client) RevokeAccessToken(ctx context.Context) (string, error) {
	params, err := c.authorizedParams(ctx)
	if err != nil {
		return "", err
	}

	var account Account
	if err := c.invoke(ctx, http.MethodPost, "revokeAccessToken", params, &account); err != nil {
		return "", err
	}

	c.mu.Lock()
	c.token = account.AccessToken
	c.mu.Unlock()

	if err := c.store.Delete(); err != nil {
		return "", err
	}
	if err := c.store.Save(ctx, account.AccessToken); err != nil {
		return "", err
	}

	c.logger.Info("access token revoked and replaced",
		logging.FieldTokenPath, c.store.Path(),
	)

	return account.AccessToken, nil
}
