package crt

import "strings"

// Collision Resolution Techniques
const (
	LinearProbing = iota + 1
	QuadraticProbing
	DoubleHashing
	TwoProbeChaining
)

// DefaultTableSize - Number of buckets used when no table size is given, a prime to reduce clustering
const DefaultTableSize int64 = 997

var techniqueNames = map[int]string{
	LinearProbing:    "linear",
	QuadraticProbing: "quadratic",
	DoubleHashing:    "double",
	TwoProbeChaining: "twoprobe",
}

// TechniqueName - Returns the configuration name of a collision resolution technique, or an empty string if unknown
func TechniqueName(technique int) string {
	return techniqueNames[technique]
}

// ParseTechnique - Returns the collision resolution technique matching a configuration name (case-insensitive).
// It returns an error of type UnknownTechnique if the name matches no technique.
func ParseTechnique(name string) (technique int, err error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for t, n := range techniqueNames {
		if n == name {
			technique = t
			return
		}
	}

	err = UnknownTechnique{msg: "unknown collision resolution technique: " + name}
	return
}

// IsOpenAddressing - Returns true if the technique stores one record per bucket and resolves collisions by probing
func IsOpenAddressing(technique int) bool {
	return technique == LinearProbing || technique == QuadraticProbing || technique == DoubleHashing
}
