// Package model defines the core domain models used throughout the application.
package model

// Input holds the raw, unvalidated values for one prediction attempt.
// Numeric fields stay strings until the validator has parsed them, so
// the form can round-trip whatever the user typed.
type Input struct {
	Year                    string
	FemaleEnrollmentPercent string
	GenderGapIndex          string
	Country                 string
	STEMField               string
}

// IsEmpty reports whether no field has been filled in yet.
func (in Input) IsEmpty() bool {
	return in.Year == "" &&
		in.FemaleEnrollmentPercent == "" &&
		in.GenderGapIndex == "" &&
		in.Country == "" &&
		in.STEMField == ""
}
