package domain

// ContactLensConfig binds a contact-lens product line to its category path
// and the prescription parameters the storefront configurator offers.
type ContactLensConfig struct {
	ID            FlexID   `json:"id"`
	Name          string   `json:"name"`
	CategoryID    FlexID   `json:"category_id"`
	SubCategoryID FlexID   `json:"sub_category_id"`
	LensKind      string   `json:"lens_kind"` // spherical | astigmatism
	PowersFrom    string   `json:"powers_from"`
	PowersTo      string   `json:"powers_to"`
	PowerStep     string   `json:"power_step"`
	Active        FlexBool `json:"is_active"`
}

// ContactLensForm is one storefront prescription form definition
// (spherical or astigmatism) with its selectable value lists.
type ContactLensForm struct {
	ID        FlexID   `json:"id"`
	Kind      string   `json:"kind"`
	Powers    []string `json:"powers"`
	BaseCurve []string `json:"base_curves"`
	Diameters []string `json:"diameters"`
	Cylinders []string `json:"cylinders,omitempty"` // astigmatism only
	Axes      []string `json:"axes,omitempty"`      // astigmatism only
	Active    FlexBool `json:"is_active"`
}
