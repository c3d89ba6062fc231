package model

// DeviceAttributes is the best-effort tuple of device properties a host
// platform exposes for fingerprinting. Every field may be empty.
type DeviceAttributes struct {
	Platform     string `json:"platform"`
	InstallID    string `json:"install_id,omitempty"`
	Model        string `json:"model,omitempty"`
	Manufacturer string `json:"manufacturer,omitempty"`
	OSName       string `json:"os_name,omitempty"`
	OSVersion    string `json:"os_version,omitempty"`
}
