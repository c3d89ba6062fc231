package whyleloop

import (
	"context"
	"net/url"

	"github.com/pkg/errors"

	"github.com/whyleloop/whyleloop-go/model"
)

const (
	createLinkPath  = "/api/links/create-sdk"
	resolveSlugPath = "/api/links/get-by-slug"
)

type createLinkResponse struct {
	envelope
	Link model.CreatedLink `json:"link"`
}

type linkDetailsResponse struct {
	envelope
	Link model.LinkDetails `json:"link"`
}

// CreateLink registers a link for the given destination. An empty metadata
// map is omitted from the request body entirely, so the server never
// mistakes "no metadata" for "empty metadata".
func (c *Client) CreateLink(ctx context.Context, destination string, metadata map[string]any) (model.CreatedLink, error) {
	req := model.CreateLinkRequest{
		AppID:       c.appID,
		Destination: destination,
	}
	if len(metadata) > 0 {
		req.Metadata = metadata
	}

	var resp createLinkResponse
	if err := c.postJSON(ctx, createLinkPath, req, &resp); err != nil {
		return model.CreatedLink{}, errors.Wrap(err, "create link")
	}

	return resp.Link, nil
}

// ResolveSlug resolves an inbound slug to its configured destination. A
// non-empty hostname scopes resolution to a custom-domain deployment where
// the same slug may resolve differently per host.
func (c *Client) ResolveSlug(ctx context.Context, slug, hostname string) (model.LinkDetails, error) {
	query := url.Values{}
	query.Set("slug", slug)
	query.Set("appId", c.appID)
	if hostname != "" {
		query.Set("hostname", hostname)
	}

	var resp linkDetailsResponse
	if err := c.getJSON(ctx, resolveSlugPath, query, &resp); err != nil {
		return model.LinkDetails{}, errors.Wrap(err, "resolve slug")
	}

	return resp.Link, nil
}
