package theme

import "strings"

// Generic CSS family fallbacks.
const (
	GenericSerif = "serif"
	GenericSans  = "sans-serif"
)

// Session carries the per-process font state that influences family
// resolution. It is passed explicitly so tests can pin it.
type Session struct {
	// WebFontsLoaded records whether remote web fonts were registered
	// for this session. Set at most once, read afterwards.
	WebFontsLoaded bool
	// InstalledFonts lists locally installed family names.
	InstalledFonts []string
}

// Installed reports whether family is in the installed list,
// case-insensitively.
func (s Session) Installed(family string) bool {
	for _, f := range s.InstalledFonts {
		if strings.EqualFold(f, family) {
			return true
		}
	}

	return false
}

// ResolveFont picks a usable family name for pref: the preference itself
// when web fonts are loaded or the family is installed, otherwise the
// generic fallback. It never fails.
func (s Session) ResolveFont(pref, generic string) string {
	if s.WebFontsLoaded {
		return pref
	}

	if s.Installed(pref) {
		return pref
	}

	return generic
}

// TitleFamily resolves the theme's title font against the session.
func (t Theme) TitleFamily(s Session) string {
	return s.ResolveFont(t.TitleFont, GenericSerif)
}

// BodyFamily resolves the theme's body font against the session.
func (t Theme) BodyFamily(s Session) string {
	return s.ResolveFont(t.BodyFont, GenericSans)
}
