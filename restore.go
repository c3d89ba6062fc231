package whyleloop

import (
	"context"

	"github.com/pkg/errors"

	"github.com/whyleloop/whyleloop-go/model"
)

const restorePath = "/api/deferred-deep-linking/restore"

type restoreResponse struct {
	envelope
	RestoredLinks []model.RestoredLink `json:"restoredLinks"`
}

// Restore resolves pending deferred deep links for the given account
// identity. When userEmail is empty the device fingerprint identifies the
// caller instead; exactly one of the two is ever sent. The returned slice
// preserves server order — the client never reorders, deduplicates, or
// filters, so ordering semantics are a server contract.
func (c *Client) Restore(ctx context.Context, userEmail string) ([]model.RestoredLink, error) {
	req := model.RestoreRequest{AppID: c.appID}
	if userEmail != "" {
		req.UserEmail = userEmail
	} else {
		req.DeviceFingerprint = c.identity.Resolve(ctx)
	}

	var resp restoreResponse
	if err := c.postJSON(ctx, restorePath, req, &resp); err != nil {
		return nil, errors.Wrap(err, "restore")
	}

	links := make([]model.RestoredLink, 0, len(resp.RestoredLinks))
	for _, link := range resp.RestoredLinks {
		if link.PendingLinkID == "" || link.LinkID == "" {
			return nil, errors.Wrap(
				&ParseError{Reason: "restored link missing identifiers"}, "restore")
		}
		if link.Metadata == nil {
			link.Metadata = map[string]any{}
		}
		links = append(links, link)
	}

	return links, nil
}

// RestoreAnonymous is Restore with no account identity; the device
// fingerprint identifies the caller.
func (c *Client) RestoreAnonymous(ctx context.Context) ([]model.RestoredLink, error) {
	return c.Restore(ctx, "")
}
