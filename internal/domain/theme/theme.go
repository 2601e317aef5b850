// Package theme models the visitor's light/dark preference.
//
// A Preference is what the visitor picked (light, dark or follow the system);
// a Mode is what actually gets painted. Resolve is the only way from one to
// the other, and State holds the resolved result for the rendering layer.
package theme

// StorageKey is the client-side storage key the preference is persisted under.
const StorageKey = "theme"

type Preference string

const (
	Light  Preference = "light"
	Dark   Preference = "dark"
	System Preference = "system"

	DefaultPreference = System
)

// ParsePreference reports false for anything that is not one of the three values.
func ParsePreference(s string) (Preference, bool) {
	switch p := Preference(s); p {
	case Light, Dark, System:
		return p, true
	}
	return DefaultPreference, false
}

// Next cycles light -> dark -> system -> light.
func (p Preference) Next() Preference {
	switch p {
	case Light:
		return Dark
	case Dark:
		return System
	default:
		return Light
	}
}

type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// Resolve maps a preference to the mode to paint. System follows the OS.
func Resolve(p Preference, osPrefersDark bool) Mode {
	switch p {
	case Dark:
		return ModeDark
	case System:
		if osPrefersDark {
			return ModeDark
		}
	}
	return ModeLight
}

// Storage is the visitor-local key/value store the preference lives in.
type Storage interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// ColorScheme is the OS-level "prefers dark" signal.
type ColorScheme interface {
	PrefersDark() bool
	// Subscribe registers fn for change notifications. fn must not be called
	// before Subscribe returns.
	Subscribe(fn func(prefersDark bool)) (unsubscribe func())
}
