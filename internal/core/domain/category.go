package domain

import "time"

// System category slugs. Code never references categories by name or UUID;
// it uses these programmatic identifiers.
const (
	SlugBulls      = "bulls"
	SlugCows       = "cows"
	SlugCalfMale   = "calf-male"
	SlugCalfFemale = "calf-female"
	SlugHeifer2Y   = "heifer-2y"
	SlugHeifer3Y   = "heifer-3y"
	SlugSteer2Y    = "steer-2y"
	SlugTeaser     = "teaser"
	SlugFirstCalf  = "first-calf-cow"
)

// WeaningRules maps the source category slug to the destination category slug
// for the automated weaning reclassification.
var WeaningRules = map[string]string{
	SlugCalfMale:   SlugSteer2Y,
	SlugCalfFemale: SlugHeifer2Y,
}

// Category classifies animals (calf, steer, cow, ...). System categories are
// seeded with fixed slugs and cannot be deactivated; custom categories carry
// no slug.
type Category struct {
	CategoryID   string    `json:"categoryID"` // Primary key (UUID)
	Name         string    `json:"name"`
	Slug         *string   `json:"slug,omitempty"`
	Description  string    `json:"description"`
	IsSystem     bool      `json:"isSystem"`
	IsActive     bool      `json:"isActive"`
	DisplayOrder int       `json:"displayOrder"`
	CreatedAt    time.Time `json:"createdAt"`
}

// IsWeaningSource reports whether this category is an origin of the weaning
// reclassification.
func (c Category) IsWeaningSource() bool {
	if c.Slug == nil {
		return false
	}
	_, ok := WeaningRules[*c.Slug]
	return ok
}
