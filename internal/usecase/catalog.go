package usecase

import (
	"strings"

	"github.com/go-openapi/strfmt"

	"subs_manager/internal/entity"
)

// Catalog exposes the read-only company catalog
type Catalog struct {
	cc CompanyCatalog
}

// NewCatalog creates a catalog use case over the loaded dataset
func NewCatalog(cc CompanyCatalog) *Catalog {
	return &Catalog{cc: cc}
}

// ListCompanies returns companies whose name contains search, ignoring case, in catalog order
func (c *Catalog) ListCompanies(search string) []entity.Company {
	all := c.cc.Companies()
	needle := foldCase(strings.TrimSpace(search))

	out := make([]entity.Company, 0, len(all))
	for _, company := range all {
		if matchesSearch(company.Name, needle) {
			out = append(out, company)
		}
	}
	return out
}

// GetCompany finds a company by the ID assigned at load time
func (c *Catalog) GetCompany(id strfmt.UUID) (entity.Company, error) {
	if !strfmt.IsUUID(id.String()) {
		return entity.Company{}, ErrInvalidID
	}
	for _, company := range c.cc.Companies() {
		if company.ID == id {
			return company, nil
		}
	}
	return entity.Company{}, ErrCompanyNotFound
}

// DraftFromCompany pre-fills a new, unsaved subscription from a catalog entry.
// No link to the company is kept.
func (c *Catalog) DraftFromCompany(id strfmt.UUID) (*entity.Subscription, error) {
	company, err := c.GetCompany(id)
	if err != nil {
		return nil, err
	}
	return &entity.Subscription{
		ServiceName:  company.Name,
		BillingCycle: entity.BillingCycleMonthly,
	}, nil
}
