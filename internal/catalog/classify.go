package catalog

import "github.com/hafizsameer11/optyshop-admin-sub000/internal/domain"

// Classification says where a subcategory sits in the hierarchy.
type Classification struct {
	TopLevel bool
	ParentID int64 // 0 when TopLevel
}

// Classify resolves a subcategory's parent reference across the field-name
// aliases the backend uses (parent_id, parentId, parent_subcategory_id,
// parentSubcategoryId, checked in that order). A subcategory is top-level iff
// none of the aliases carries a usable value.
func Classify(sub domain.Subcategory) Classification {
	aliases := []domain.FlexID{
		sub.ParentID,
		sub.ParentIDCamel,
		sub.ParentSubcategoryID,
		sub.ParentSubcatCamel,
	}
	for _, id := range aliases {
		if id.Valid() {
			return Classification{ParentID: id.Int64()}
		}
	}
	return Classification{TopLevel: true}
}
