package i18n

// Text holds one logical string in its three variants. The Arabic variant
// is the authoritative default; the others may be empty.
type Text struct {
	AR string
	FR string
	EN string
}

// T is a shorthand constructor for call sites that carry all three variants.
func T(ar, fr, en string) Text {
	return Text{AR: ar, FR: fr, EN: en}
}

// Resolve returns the variant for lang. A missing variant falls back to the
// Arabic default, which is shaped for display. The result must be treated as
// final: shaping an already-shaped string is out of contract.
func (t Text) Resolve(lang Lang) string {
	switch lang {
	case French:
		if t.FR != "" {
			return t.FR
		}
	case English:
		if t.EN != "" {
			return t.EN
		}
	}
	return ShapeArabic(t.AR)
}
