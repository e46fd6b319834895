package models

import (
	"math"

	"github.com/khanhle/schoolhealth/internal/pkg/apperrors"
)

// ReactionCategory classifies the observed post-vaccination reaction
type ReactionCategory string

const (
	ReactionNormal   ReactionCategory = "NORMAL"
	ReactionMildPain ReactionCategory = "MILD_PAIN"
	ReactionSwelling ReactionCategory = "SWELLING"
	ReactionFever    ReactionCategory = "FEVER"
	ReactionAllergic ReactionCategory = "ALLERGIC"
	ReactionOther    ReactionCategory = "OTHER"
)

// InjectionSite is the location of the injection
type InjectionSite string

const (
	SiteLeftArm    InjectionSite = "LEFT_ARM"
	SiteRightArm   InjectionSite = "RIGHT_ARM"
	SiteLeftThigh  InjectionSite = "LEFT_THIGH"
	SiteRightThigh InjectionSite = "RIGHT_THIGH"
)

// ReactionSeverity grades the reaction
type ReactionSeverity string

const (
	SeverityNone     ReactionSeverity = "NONE"
	SeverityMild     ReactionSeverity = "MILD"
	SeverityModerate ReactionSeverity = "MODERATE"
	SeveritySevere   ReactionSeverity = "SEVERE"
)

// HealthResult is the clinical result payload attached to a completed
// confirmation. It is a tagged union keyed by Type: exactly one variant is
// set and it must match the owning event's type. The whole structure is
// stored as a single JSONB column.
type HealthResult struct {
	Type        EventType          `json:"type"`
	Periodic    *PeriodicResult    `json:"periodic,omitempty"`
	Dental      *DentalResult      `json:"dental,omitempty"`
	Eye         *EyeResult         `json:"eye,omitempty"`
	Vaccination *VaccinationResult `json:"vaccination,omitempty"`
}

// PeriodicResult holds periodic examination measurements. BMI is derived
// from height and weight on the server and never trusted from input.
type PeriodicResult struct {
	HeightCm float64  `json:"heightCm"`
	WeightKg float64  `json:"weightKg"`
	BMI      *float64 `json:"bmi,omitempty"`
	Vision   string   `json:"vision"`
}

// DentalResult holds dental examination observations (free text, the source
// data is not numerically validated)
type DentalResult struct {
	MilkTeeth      string `json:"milkTeeth"`
	PermanentTeeth string `json:"permanentTeeth"`
	Cavities       string `json:"cavities"`
}

// EyeResult holds eye examination observations
type EyeResult struct {
	RightEyeAcuity string `json:"rightEyeAcuity"`
	LeftEyeAcuity  string `json:"leftEyeAcuity"`
	EyePressure    string `json:"eyePressure"`
}

// VaccinationResult holds the observed vaccination outcome
type VaccinationResult struct {
	Reaction    ReactionCategory `json:"reaction"`
	Site        InjectionSite    `json:"site"`
	Severity    ReactionSeverity `json:"severity"`
	Description string           `json:"description,omitempty"`
}

// ComputeBMI derives weight/(height_m)^2 rounded to one decimal. Left unset
// when height or weight is missing or non-positive.
func (r *PeriodicResult) ComputeBMI() {
	if r.HeightCm <= 0 || r.WeightKg <= 0 {
		r.BMI = nil
		return
	}
	heightM := r.HeightCm / 100
	bmi := r.WeightKg / (heightM * heightM)
	rounded := math.Round(bmi*10) / 10
	r.BMI = &rounded
}

// variant returns the single populated variant, or nil when zero or more
// than one variant is set
func (r *HealthResult) variant() interface{} {
	var set []interface{}
	if r.Periodic != nil {
		set = append(set, r.Periodic)
	}
	if r.Dental != nil {
		set = append(set, r.Dental)
	}
	if r.Eye != nil {
		set = append(set, r.Eye)
	}
	if r.Vaccination != nil {
		set = append(set, r.Vaccination)
	}
	if len(set) != 1 {
		return nil
	}
	return set[0]
}

// Validate checks the tagged union against the owning event's type and
// normalizes derived fields
func (r *HealthResult) Validate(eventType EventType) error {
	if r.Type != eventType {
		return apperrors.ErrResultTypeMismatch
	}
	v := r.variant()
	if v == nil {
		return apperrors.ErrResultPayloadInvalid
	}
	switch r.Type {
	case EventPeriodic:
		p, ok := v.(*PeriodicResult)
		if !ok {
			return apperrors.ErrResultTypeMismatch
		}
		p.ComputeBMI()
	case EventDental:
		if _, ok := v.(*DentalResult); !ok {
			return apperrors.ErrResultTypeMismatch
		}
	case EventEye:
		if _, ok := v.(*EyeResult); !ok {
			return apperrors.ErrResultTypeMismatch
		}
	case EventVaccination:
		vr, ok := v.(*VaccinationResult)
		if !ok {
			return apperrors.ErrResultTypeMismatch
		}
		if !validReaction(vr.Reaction) || !validSite(vr.Site) || !validSeverity(vr.Severity) {
			return apperrors.ErrResultPayloadInvalid
		}
	default:
		return apperrors.ErrResultPayloadInvalid
	}
	return nil
}

func validReaction(r ReactionCategory) bool {
	switch r {
	case ReactionNormal, ReactionMildPain, ReactionSwelling, ReactionFever, ReactionAllergic, ReactionOther:
		return true
	}
	return false
}

func validSite(s InjectionSite) bool {
	switch s {
	case SiteLeftArm, SiteRightArm, SiteLeftThigh, SiteRightThigh:
		return true
	}
	return false
}

func validSeverity(s ReactionSeverity) bool {
	switch s {
	case SeverityNone, SeverityMild, SeverityModerate, SeveritySevere:
		return true
	}
	return false
}
