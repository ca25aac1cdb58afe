package queryclient

import (
	"context"
	"errors"
	"net/http"
	"strings"

	// Packages
	client "github.com/mutablelogic/go-client"
	ark "github.com/mckinsey/ark-go"
	schema "github.com/mckinsey/ark-go/pkg/schema"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// CreateQuery creates a new query resource. The target type, when a
// target is present, is normalised to lowercase before transmission.
func (c *Client) CreateQuery(ctx context.Context, query schema.Query) (*schema.Query, error) {
	if query.Target != nil {
		query.Target.Type = strings.ToLower(query.Target.Type)
	}

	// Create request
	req, err := client.NewJSONRequest(query)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.Query
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("api", "v1", "queries")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// GetQuery retrieves a query by name. Returns nil without error when
// the query does not exist; any other failure propagates.
func (c *Client) GetQuery(ctx context.Context, name string) (*schema.Query, error) {
	if name == "" {
		return nil, ark.ErrBadParameter.With("query name cannot be empty")
	}

	// Perform request
	var response schema.Query
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("api", "v1", "queries", name)); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	// Return the response
	return &response, nil
}

// ListQueries returns all queries in the order the server reports them.
func (c *Client) ListQueries(ctx context.Context) ([]schema.Query, error) {
	// Perform request
	var response schema.QueryList
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("api", "v1", "queries")); err != nil {
		return nil, err
	}

	// Return the items
	return response.Items, nil
}

// UpdateQuery applies a partial update to the named query. Returns nil
// without error when the query does not exist.
func (c *Client) UpdateQuery(ctx context.Context, name string, query schema.Query) (*schema.Query, error) {
	if name == "" {
		return nil, ark.ErrBadParameter.With("query name cannot be empty")
	}

	// Create request
	req, err := client.NewJSONRequestEx(http.MethodPut, query, "")
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.Query
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("api", "v1", "queries", name)); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	// Return the response
	return &response, nil
}

// DeleteQuery removes the named query. Returns true when the query was
// deleted, false without error when it did not exist.
func (c *Client) DeleteQuery(ctx context.Context, name string) (bool, error) {
	if name == "" {
		return false, ark.ErrBadParameter.With("query name cannot be empty")
	}

	// Perform request
	if err := c.DoWithContext(ctx, client.MethodDelete, nil, client.OptPath("api", "v1", "queries", name)); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, err
	}

	// Return success
	return true, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// isNotFound returns true if the error represents an HTTP 404 response.
func isNotFound(err error) bool {
	var httpErr httpresponse.Err
	return errors.As(err, &httpErr) && int(httpErr) == http.StatusNotFound
}
