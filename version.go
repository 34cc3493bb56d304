package fhirconverter

import (
	"fmt"
	"strings"
)

// FHIRVersion identifies a FHIR release.
type FHIRVersion string

// Known FHIR releases.
const (
	// R4 is FHIR Release 4 (4.0.1)
	R4 FHIRVersion = "R4"
	// R4B is FHIR Release 4B (4.3.0)
	R4B FHIRVersion = "R4B"
	// R5 is FHIR Release 5 (5.0.0)
	R5 FHIRVersion = "R5"
)

// String returns the version string.
func (v FHIRVersion) String() string {
	return string(v)
}

// IsValid returns true if this is a known FHIR release.
func (v FHIRVersion) IsValid() bool {
	_, ok := versionConfigs[v]
	return ok
}

// Release returns the full release number as it appears in
// StructureDefinition.fhirVersion, e.g. "4.0.1". Unknown versions return "".
func (v FHIRVersion) Release() string {
	return versionConfigs[v].FHIRVersionString
}

// CorePackage returns the name of the core package for the release.
func (v FHIRVersion) CorePackage() string {
	return versionConfigs[v].CorePackageName
}

// Before reports whether v is an earlier release than other.
// Unknown versions are never before anything.
func (v FHIRVersion) Before(other FHIRVersion) bool {
	a, ok := versionConfigs[v]
	if !ok {
		return false
	}
	b, ok := versionConfigs[other]
	if !ok {
		return false
	}
	return a.order < b.order
}

// ParseVersion accepts a release name ("R4", "r4b") or number ("4.0.1",
// "4.0", "5.0.0").
func ParseVersion(s string) (FHIRVersion, error) {
	s = strings.TrimSpace(s)
	if v := FHIRVersion(strings.ToUpper(s)); v.IsValid() {
		return v, nil
	}
	var found []FHIRVersion
	for _, v := range Versions() {
		cfg := versionConfigs[v]
		if s == cfg.FHIRVersionString || strings.HasPrefix(cfg.FHIRVersionString, s+".") {
			found = append(found, v)
		}
	}
	switch len(found) {
	case 1:
		return found[0], nil
	case 0:
		return "", fmt.Errorf("unknown FHIR version %q", s)
	default:
		return "", fmt.Errorf("ambiguous FHIR version %q matches %v", s, found)
	}
}

// Versions returns the known releases oldest first.
func Versions() []FHIRVersion {
	return []FHIRVersion{R4, R4B, R5}
}

// versionConfig holds release specific data.
type versionConfig struct {
	CorePackageName    string
	CorePackageVersion string

	// FHIRVersionString is the version string used in StructureDefinitions
	FHIRVersionString string

	order int
}

var versionConfigs = map[FHIRVersion]versionConfig{
	R4: {
		CorePackageName:    "hl7.fhir.r4.core",
		CorePackageVersion: "4.0.1",
		FHIRVersionString:  "4.0.1",
		order:              0,
	},
	R4B: {
		CorePackageName:    "hl7.fhir.r4b.core",
		CorePackageVersion: "4.3.0",
		FHIRVersionString:  "4.3.0",
		order:              1,
	},
	R5: {
		CorePackageName:    "hl7.fhir.r5.core",
		CorePackageVersion: "5.0.0",
		FHIRVersionString:  "5.0.0",
		order:              2,
	},
}

// getVersionConfig returns the configuration for a FHIR version.
func getVersionConfig(v FHIRVersion) (versionConfig, bool) {
	cfg, ok := versionConfigs[v]
	return cfg, ok
}
