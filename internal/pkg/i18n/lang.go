package i18n

// Lang identifies one of the interface languages.
type Lang string

const (
	Arabic  Lang = "ar"
	French  Lang = "fr"
	English Lang = "en"
)

// Default is the language used when no preference has been expressed.
const Default = Arabic

// Parse maps a raw language code to a Lang, falling back to the default
// for anything unknown.
func Parse(code string) Lang {
	switch Lang(code) {
	case Arabic, French, English:
		return Lang(code)
	}
	return Default
}

// RTL reports whether the language is written right to left.
func (l Lang) RTL() bool {
	return l == Arabic
}

// All lists the supported languages in sidebar order.
func All() []Lang {
	return []Lang{Arabic, French, English}
}
