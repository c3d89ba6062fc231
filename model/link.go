package model

// RestoredLink is a pending deferred deep link that the service matched to
// the current install. DestinationPath, Destination and Parameters are
// pointers/nil maps so that a field the server omitted stays
// distinguishable from an empty one.
type RestoredLink struct {
	PendingLinkID   string         `json:"pending_link_id"`
	OriginalURL     string         `json:"original_url"`
	DestinationURL  string         `json:"destination_url"`
	DestinationPath *string        `json:"destination_path,omitempty"`
	Destination     *string        `json:"destination,omitempty"`
	Parameters      map[string]any `json:"parameters,omitempty"`
	Metadata        map[string]any `json:"metadata"`
	LinkID          string         `json:"link_id"`
}

// CreatedLink is a link freshly registered for the current screen.
type CreatedLink struct {
	ID          string         `json:"id"`
	Slug        string         `json:"slug"`
	URL         string         `json:"url"`
	Destination string         `json:"destination"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// LinkDetails is the resolution of an inbound slug to its configured
// destination.
type LinkDetails struct {
	ID                string         `json:"id"`
	Slug              string         `json:"slug"`
	DestinationWebURL string         `json:"destination_web_url"`
	DestinationPath   *string        `json:"destination_path,omitempty"`
	Destination       *string        `json:"destination,omitempty"`
	Parameters        map[string]any `json:"parameters,omitempty"`
	Metadata          map[string]any `json:"metadata,omitempty"`
}

// RestoreRequest identifies the caller to the restore endpoint. Exactly one
// of UserEmail or DeviceFingerprint is set.
type RestoreRequest struct {
	AppID             string `json:"appId"`
	UserEmail         string `json:"userEmail,omitempty"`
	DeviceFingerprint string `json:"deviceFingerprint,omitempty"`
}

// CreateLinkRequest registers a new link for a destination. Metadata is
// omitted from the body entirely when empty.
type CreateLinkRequest struct {
	AppID       string         `json:"appId"`
	Destination string         `json:"destination"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// UTMSource returns the utm_source metadata value, reporting false when the
// key is missing or not a string. The other UTM accessors behave the same.
func (l RestoredLink) UTMSource() (string, bool)   { return metaString(l.Metadata, "utm_source") }
func (l RestoredLink) UTMMedium() (string, bool)   { return metaString(l.Metadata, "utm_medium") }
func (l RestoredLink) UTMCampaign() (string, bool) { return metaString(l.Metadata, "utm_campaign") }
func (l RestoredLink) UTMTerm() (string, bool)     { return metaString(l.Metadata, "utm_term") }
func (l RestoredLink) UTMContent() (string, bool)  { return metaString(l.Metadata, "utm_content") }

func metaString(m map[string]any, key string) (string, bool) {
	v, ok := m[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	return s, true
}
