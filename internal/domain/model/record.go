// Package model contains domain models passed between pipeline stages.
package model

import (
	"fmt"
	"strings"
	"time"
)

// DistrictUnknown marks records whose district number failed integer
// conversion. Such records stay in citywide aggregates but are excluded from
// district and borough scopes.
const DistrictUnknown = -1

// AllClassifications is the classification rollup bucket within a scope.
const AllClassifications = "All"

// JobType distinguishes permanent openings from temporary coverage needs.
type JobType int

const (
	JobTypeUnknown JobType = iota
	JobTypeVacancy
	JobTypeAbsence
)

// ParseJobType normalizes a raw CSV type cell into a JobType.
func ParseJobType(s string) (JobType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vacancy":
		return JobTypeVacancy, nil
	case "absence":
		return JobTypeAbsence, nil
	default:
		return JobTypeUnknown, fmt.Errorf("unknown job type %q", s)
	}
}

func (t JobType) String() string {
	switch t {
	case JobTypeVacancy:
		return "Vacancy"
	case JobTypeAbsence:
		return "Absence"
	default:
		return "Unknown"
	}
}

// FillStatus is the filled/unfilled outcome derived from the raw status.
type FillStatus int

const (
	FillUnfilled FillStatus = iota
	FillFilled
)

func (f FillStatus) String() string {
	if f == FillFilled {
		return "Filled"
	}
	return "Unfilled"
}

// JobRecord is one cleaned posting row. Immutable once loaded.
type JobRecord struct {
	Classification string
	Type           JobType
	Status         string // raw status cell, preserved for audits
	Fill           FillStatus
	Location       string
	District       int // DistrictUnknown when coercion failed
	Borough        string
	Start          *time.Time // nil when the date cell did not parse
}

// HasDistrict reports whether the record carries a usable district number.
func (r JobRecord) HasDistrict() bool { return r.District != DistrictUnknown }

// Scope is a geographic aggregation level.
type Scope int

const (
	ScopeCity Scope = iota
	ScopeBorough
	ScopeDistrict
	ScopeSchool
)

func (s Scope) String() string {
	switch s {
	case ScopeCity:
		return "city"
	case ScopeBorough:
		return "borough"
	case ScopeDistrict:
		return "district"
	case ScopeSchool:
		return "school"
	default:
		return "unknown"
	}
}

// GroupKey identifies one aggregation bucket: a scope, the identifier of the
// scope instance (empty for city), and a classification or the All rollup.
type GroupKey struct {
	Scope          Scope
	ID             string
	Classification string
}

// CityKey builds the citywide key for a classification.
func CityKey(classification string) GroupKey {
	return GroupKey{Scope: ScopeCity, Classification: classification}
}

// BoroughKey builds a borough key for a classification.
func BoroughKey(borough, classification string) GroupKey {
	return GroupKey{Scope: ScopeBorough, ID: borough, Classification: classification}
}

// DistrictKey builds a district key for a classification.
func DistrictKey(district int, classification string) GroupKey {
	return GroupKey{Scope: ScopeDistrict, ID: fmt.Sprintf("%d", district), Classification: classification}
}

// SchoolKey builds a school key for a classification. Schools are keyed by
// district plus location because location codes repeat across districts.
func SchoolKey(district int, location, classification string) GroupKey {
	return GroupKey{Scope: ScopeSchool, ID: fmt.Sprintf("%d/%s", district, location), Classification: classification}
}
