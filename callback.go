package whyleloop

import (
	"context"

	"github.com/whyleloop/whyleloop-go/model"
)

// notify runs op and reports its outcome through cb in the two-argument
// callback shape: exactly one of result/err is meaningful. On failure cb
// receives fallback, a structurally valid empty value, so callback
// consumers never null-check the payload. This is the only
// result-to-notification translation in the SDK.
func notify[T any](op func() (T, error), fallback T, cb func(T, error)) {
	result, err := op()
	if err != nil {
		cb(fallback, err)
		return
	}
	cb(result, nil)
}

// RestoreWithCallback is Restore in callback form. On failure cb receives
// an empty (non-nil) slice and the error.
func (c *Client) RestoreWithCallback(ctx context.Context, userEmail string, cb func([]model.RestoredLink, error)) {
	notify(func() ([]model.RestoredLink, error) {
		return c.Restore(ctx, userEmail)
	}, []model.RestoredLink{}, cb)
}

// CreateLinkWithCallback is CreateLink in callback form.
func (c *Client) CreateLinkWithCallback(ctx context.Context, destination string, metadata map[string]any, cb func(model.CreatedLink, error)) {
	notify(func() (model.CreatedLink, error) {
		return c.CreateLink(ctx, destination, metadata)
	}, model.CreatedLink{}, cb)
}

// ResolveSlugWithCallback is ResolveSlug in callback form.
func (c *Client) ResolveSlugWithCallback(ctx context.Context, slug, hostname string, cb func(model.LinkDetails, error)) {
	notify(func() (model.LinkDetails, error) {
		return c.ResolveSlug(ctx, slug, hostname)
	}, model.LinkDetails{}, cb)
}
