// internal/domain/models/programme.go
package models

// Programme categories as shown in the catalogue.
const (
	CategoryLearnership    = "Learnership"
	CategoryShortProgramme = "Short Programme"
	CategoryMasterclass    = "Masterclass"
)

// PriceKey identifies one of the fixed per-learner price tiers. Tiers are
// keyed by programme duration.
type PriceKey string

const (
	Price12Months PriceKey = "PRICE_12_MONTHS"
	Price18Months PriceKey = "PRICE_18_MONTHS"
	Price24Months PriceKey = "PRICE_24_MONTHS"
)

// Programme is a static catalogue entry. Programmes are compiled into the
// binary and never change at runtime.
type Programme struct {
	ID       string `json:"id"` // slug, used in URLs and quote requests
	Name     string `json:"name"`
	Category string `json:"category"`

	NQFLevel    int      `json:"nqf_level"`
	SAQAID      int      `json:"saqa_id"`
	SETA        string   `json:"seta"`
	Credits     int      `json:"credits"`
	Duration    string   `json:"duration"` // e.g. "12 Months"
	PriceKey    PriceKey `json:"price_key"`
	BBBEEImpact string   `json:"bbbee_impact"`

	ShortDescription string   `json:"short_description"`
	LongDescription  string   `json:"long_description"`
	KeyModules       []string `json:"key_modules"`
	WhoShouldAttend  string   `json:"who_should_attend"`

	Format   string `json:"format"`
	ImageURL string `json:"image_url"`
}
