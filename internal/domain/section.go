package domain

// Section is a console-only grouping of the product screen. It is never
// persisted by the backend; it resolves at runtime onto one or more Category
// records by name matching (see internal/catalog).
type Section string

const (
	SectionAll           Section = "all"
	SectionSunglasses    Section = "sunglasses"
	SectionEyeglasses    Section = "eyeglasses"
	SectionOptyKids      Section = "opty-kids"
	SectionContactLenses Section = "contact-lenses"
	SectionEyeHygiene    Section = "eye-hygiene"
)

// Sections lists every valid section, "all" first.
func Sections() []Section {
	return []Section{
		SectionAll,
		SectionSunglasses,
		SectionEyeglasses,
		SectionOptyKids,
		SectionContactLenses,
		SectionEyeHygiene,
	}
}

// ParseSection maps a query-string value onto a Section. Unknown values fall
// back to "all" so a stale persisted filter never breaks the screen.
func ParseSection(s string) Section {
	for _, sec := range Sections() {
		if string(sec) == s {
			return sec
		}
	}
	return SectionAll
}

func (s Section) Valid() bool {
	for _, sec := range Sections() {
		if s == sec {
			return true
		}
	}
	return false
}
