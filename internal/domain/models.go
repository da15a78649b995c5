package domain

import "github.com/shopspring/decimal"

// Category is a flat backend record; hierarchy lives on subcategories.
type Category struct {
	ID   FlexID `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Subcategory may be top-level (no parent) or nested under another
// subcategory. The backend serializes the parent reference under several
// field names depending on the endpoint, so all aliases are captured and
// resolved by catalog.Classify.
type Subcategory struct {
	ID         FlexID `json:"id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	CategoryID FlexID `json:"category_id"`

	ParentID            FlexID `json:"parent_id"`
	ParentIDCamel       FlexID `json:"parentId"`
	ParentSubcategoryID FlexID `json:"parent_subcategory_id"`
	ParentSubcatCamel   FlexID `json:"parentSubcategoryId"`
}

// SizeVariant is an eye-hygiene product size/volume option.
type SizeVariant struct {
	Size  string          `json:"size"`
	Price decimal.Decimal `json:"price"`
}

type Product struct {
	ID            FlexID          `json:"id"`
	Name          string          `json:"name"`
	Slug          string          `json:"slug"`
	Description   string          `json:"description"`
	CategoryID    FlexID          `json:"category_id"`
	SubCategoryID FlexID          `json:"sub_category_id"`
	Price         decimal.Decimal `json:"price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	Stock         FlexID          `json:"stock"`
	Active        FlexBool        `json:"is_active"`
	Images        []string        `json:"images"`

	// Frame attributes (sunglasses / eyeglasses / kids).
	FrameShape    string `json:"frame_shape,omitempty"`
	FrameMaterial string `json:"frame_material,omitempty"`
	FrameColor    string `json:"frame_color,omitempty"`
	FrameSize     string `json:"frame_size,omitempty"`
	Gender        string `json:"gender,omitempty"`

	// Contact-lens attributes.
	LensType     string `json:"lens_type,omitempty"`
	BaseCurve    string `json:"base_curve,omitempty"`
	Diameter     string `json:"diameter,omitempty"`
	WaterContent string `json:"water_content,omitempty"`
	Replacement  string `json:"replacement_cycle,omitempty"`
	PackQuantity FlexID `json:"pack_quantity,omitempty"`

	// Eye-hygiene size/volume variants.
	Sizes []SizeVariant `json:"sizes,omitempty"`
}

// ProductPage is one page of a filtered product listing. TotalPages comes
// straight from the backend; the client never re-derives it.
type ProductPage struct {
	Products   []Product
	TotalPages int
	Page       int
}
