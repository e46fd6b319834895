package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/khanhle/schoolhealth/internal/pkg/apperrors"
)

func TestComputeBMI(t *testing.T) {
	tests := []struct {
		name     string
		heightCm float64
		weightKg float64
		want     *float64
	}{
		{name: "typical student", heightCm: 150, weightKg: 45, want: floatPtr(20.0)},
		{name: "rounds to one decimal", heightCm: 160, weightKg: 52, want: floatPtr(20.3)},
		{name: "zero height", heightCm: 0, weightKg: 45, want: nil},
		{name: "zero weight", heightCm: 150, weightKg: 0, want: nil},
		{name: "negative height", heightCm: -150, weightKg: 45, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := PeriodicResult{HeightCm: tt.heightCm, WeightKg: tt.weightKg}
			r.ComputeBMI()
			switch {
			case tt.want == nil && r.BMI != nil:
				t.Errorf("BMI = %v, want nil", *r.BMI)
			case tt.want != nil && r.BMI == nil:
				t.Errorf("BMI = nil, want %v", *tt.want)
			case tt.want != nil && *r.BMI != *tt.want:
				t.Errorf("BMI = %v, want %v", *r.BMI, *tt.want)
			}
		})
	}
}

func floatPtr(f float64) *float64 { return &f }

func TestResultValidate(t *testing.T) {
	tests := []struct {
		name      string
		result    HealthResult
		eventType EventType
		wantErr   error
	}{
		{
			name:      "periodic ok",
			result:    HealthResult{Type: EventPeriodic, Periodic: &PeriodicResult{HeightCm: 150, WeightKg: 45, Vision: "10/10"}},
			eventType: EventPeriodic,
			wantErr:   nil,
		},
		{
			name:      "type does not match event",
			result:    HealthResult{Type: EventDental, Dental: &DentalResult{}},
			eventType: EventEye,
			wantErr:   apperrors.ErrResultTypeMismatch,
		},
		{
			name:      "no variant set",
			result:    HealthResult{Type: EventDental},
			eventType: EventDental,
			wantErr:   apperrors.ErrResultPayloadInvalid,
		},
		{
			name: "two variants set",
			result: HealthResult{
				Type:   EventDental,
				Dental: &DentalResult{},
				Eye:    &EyeResult{},
			},
			eventType: EventDental,
			wantErr:   apperrors.ErrResultPayloadInvalid,
		},
		{
			name:      "variant does not match declared type",
			result:    HealthResult{Type: EventDental, Eye: &EyeResult{}},
			eventType: EventDental,
			wantErr:   apperrors.ErrResultTypeMismatch,
		},
		{
			name: "vaccination ok",
			result: HealthResult{
				Type: EventVaccination,
				Vaccination: &VaccinationResult{
					Reaction: ReactionNormal,
					Site:     SiteLeftArm,
					Severity: SeverityNone,
				},
			},
			eventType: EventVaccination,
			wantErr:   nil,
		},
		{
			name: "unknown reaction category",
			result: HealthResult{
				Type: EventVaccination,
				Vaccination: &VaccinationResult{
					Reaction: ReactionCategory("DIZZY"),
					Site:     SiteLeftArm,
					Severity: SeverityNone,
				},
			},
			eventType: EventVaccination,
			wantErr:   apperrors.ErrResultPayloadInvalid,
		},
		{
			name: "unknown injection site",
			result: HealthResult{
				Type: EventVaccination,
				Vaccination: &VaccinationResult{
					Reaction: ReactionNormal,
					Site:     InjectionSite("FOREARM"),
					Severity: SeverityNone,
				},
			},
			eventType: EventVaccination,
			wantErr:   apperrors.ErrResultPayloadInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.result.Validate(tt.eventType)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDerivesBMI(t *testing.T) {
	r := HealthResult{
		Type:     EventPeriodic,
		Periodic: &PeriodicResult{HeightCm: 150, WeightKg: 45, Vision: "9/10"},
	}
	if err := r.Validate(EventPeriodic); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if r.Periodic.BMI == nil || *r.Periodic.BMI != 20.0 {
		t.Errorf("BMI = %v, want 20.0", r.Periodic.BMI)
	}
}

func TestValidateClearsClientBMI(t *testing.T) {
	bogus := 99.9
	r := HealthResult{
		Type:     EventPeriodic,
		Periodic: &PeriodicResult{HeightCm: 0, WeightKg: 45, BMI: &bogus, Vision: "9/10"},
	}
	if err := r.Validate(EventPeriodic); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if r.Periodic.BMI != nil {
		t.Errorf("BMI = %v, want nil when height is missing", *r.Periodic.BMI)
	}
}

func TestResultJSONDiscriminator(t *testing.T) {
	in := HealthResult{
		Type: EventEye,
		Eye:  &EyeResult{RightEyeAcuity: "10/10", LeftEyeAcuity: "8/10", EyePressure: "normal"},
	}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var out HealthResult
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if out.Type != EventEye {
		t.Errorf("type = %q, want %q", out.Type, EventEye)
	}
	if out.Eye == nil || out.Eye.LeftEyeAcuity != "8/10" {
		t.Errorf("eye variant not restored: %+v", out.Eye)
	}
	if out.Periodic != nil || out.Dental != nil || out.Vaccination != nil {
		t.Error("unset variants should stay nil after decoding")
	}
}
