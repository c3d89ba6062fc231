package identity

import (
	"os"
	"runtime"

	"github.com/whyleloop/whyleloop-go/model"
)

// AttributeProvider is a best-effort, read-only source of raw device
// attributes. Implementations may fail; the Resolver substitutes a fallback
// seed when they do.
type AttributeProvider interface {
	Attributes() (model.DeviceAttributes, error)
}

// HostProvider reads what little the running OS exposes. Host applications
// with richer platform data (install-scoped IDs, hardware model) should
// supply a StaticProvider instead.
type HostProvider struct{}

// Attributes returns attributes derived from the current process
// environment.
func (HostProvider) Attributes() (model.DeviceAttributes, error) {
	attrs := model.DeviceAttributes{
		Platform: runtime.GOOS,
		OSName:   runtime.GOOS,
	}

	if hostname, err := os.Hostname(); err == nil {
		attrs.Model = hostname
	}

	return attrs, nil
}

// StaticProvider returns a fixed attribute tuple supplied at construction.
type StaticProvider struct {
	Attrs model.DeviceAttributes
}

// Attributes returns the configured tuple.
func (p StaticProvider) Attributes() (model.DeviceAttributes, error) {
	return p.Attrs, nil
}
