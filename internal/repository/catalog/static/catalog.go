package static

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"reflect"
	"strings"

	"github.com/go-openapi/strfmt"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"subs_manager/internal/entity"
)

//go:embed companies.json
var embeddedCompanies []byte

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

// companyRecord is one entry of the dataset file
type companyRecord struct {
	Name                 string `json:"name" validate:"required,max=255"`
	WebsiteURL           string `json:"websiteURL" validate:"omitempty,url"`
	HexColor             string `json:"hexColor" validate:"omitempty,hexcolor"`
	Description          string `json:"description"`
	Category             string `json:"category"`
	CancellationGuideURL string `json:"cancellationGuideURL" validate:"omitempty,url"`
	LogoURL              string `json:"logoURL" validate:"omitempty,url"`
}

// Catalog is the read-only company dataset, loaded once.
type Catalog struct {
	companies []entity.Company
}

// Companies returns a copy of the dataset in file order
func (c *Catalog) Companies() []entity.Company {
	out := make([]entity.Company, len(c.companies))
	copy(out, c.companies)
	return out
}

// Len reports how many companies were loaded
func (c *Catalog) Len() int {
	return len(c.companies)
}

// New loads the dataset from path, or the embedded one when path is empty
func New(path string, log *slog.Logger) (*Catalog, error) {
	if path == "" {
		return Load(bytes.NewReader(embeddedCompanies), log)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Load(f, log)
}

// Load decodes a JSON array of companies. Every entry gets a fresh ID.
// Entries failing validation are skipped and logged; malformed JSON fails the load.
func Load(r io.Reader, log *slog.Logger) (*Catalog, error) {
	if log == nil {
		log = slog.Default()
	}

	var records []companyRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	companies := make([]entity.Company, 0, len(records))
	for i, rec := range records {
		rec.Name = strings.TrimSpace(rec.Name)
		if err := validate.Struct(rec); err != nil {
			log.Warn("skip catalog entry",
				slog.Int("index", i),
				slog.String("name", rec.Name),
				slog.String("reason", describe(err)),
			)
			continue
		}
		companies = append(companies, entity.Company{
			ID:                   strfmt.UUID(uuid.NewString()),
			Name:                 rec.Name,
			Category:             rec.Category,
			Description:          rec.Description,
			WebsiteURL:           rec.WebsiteURL,
			CancellationGuideURL: rec.CancellationGuideURL,
			LogoURL:              rec.LogoURL,
			HexColor:             rec.HexColor,
		})
	}

	log.Debug("catalog loaded", slog.Int("companies", len(companies)), slog.Int("skipped", len(records)-len(companies)))
	return &Catalog{companies: companies}, nil
}

func describe(err error) string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err.Error()
	}
	parts := make([]string, 0, len(errs))
	for _, fe := range errs {
		parts = append(parts, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}
