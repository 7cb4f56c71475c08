package icons

import (
	"strconv"
	"strings"
)

// Family identifies one of the supported icon families.
type Family int

// Supported icon families.
const (
	AntDesign Family = iota
	Entypo
	EvilIcons
	Feather
	FontAwesome
	FontAwesome5
	FontAwesome6
	Fontisto
	Foundation
	Ionicons
	MaterialCommunityIcons
	MaterialIcons
	Octicons
	SimpleLineIcons
	Zocial
)

// DefaultFamily is the family used when a descriptor names no family or an
// unknown one.
const DefaultFamily = FontAwesome

var familyNames = [...]string{
	AntDesign:              "AntDesign",
	Entypo:                 "Entypo",
	EvilIcons:              "EvilIcons",
	Feather:                "Feather",
	FontAwesome:            "FontAwesome",
	FontAwesome5:           "FontAwesome5",
	FontAwesome6:           "FontAwesome6",
	Fontisto:               "Fontisto",
	Foundation:             "Foundation",
	Ionicons:               "Ionicons",
	MaterialCommunityIcons: "MaterialCommunityIcons",
	MaterialIcons:          "MaterialIcons",
	Octicons:               "Octicons",
	SimpleLineIcons:        "SimpleLineIcons",
	Zocial:                 "Zocial",
}

// String implements fmt.Stringer.
func (f Family) String() string {
	if !f.Valid() {
		return "Family(" + strconv.Itoa(int(f)) + ")"
	}
	return familyNames[f]
}

// Valid reports whether f is one of the enumerated families.
func (f Family) Valid() bool {
	return f >= AntDesign && f <= Zocial
}

// Families returns every supported family in declaration order.
func Families() []Family {
	fs := make([]Family, 0, len(familyNames))
	for i := range familyNames {
		fs = append(fs, Family(i))
	}
	return fs
}

// ParseFamily returns the family with the given name. Names are matched
// case-insensitively. The second return value is false when the name is
// empty or unknown.
func ParseFamily(name string) (Family, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultFamily, false
	}
	for i, n := range familyNames {
		if strings.EqualFold(n, name) {
			return Family(i), true
		}
	}
	return DefaultFamily, false
}

// MarshalText implements encoding.TextMarshaler.
func (f Family) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}
