package entity

import "github.com/go-openapi/strfmt"

// Company - read-only catalog entry of a known subscription provider.
// ID is regenerated every time the catalog is loaded.
type Company struct {
	ID                   strfmt.UUID
	Name                 string
	Category             string
	Description          string
	WebsiteURL           string
	CancellationGuideURL string
	LogoURL              string
	HexColor             string
}
