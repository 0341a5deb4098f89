// Package field defines the static form schema shared by every onboarding
// screen: field types, field definitions, the ordered steps of a flow, and the
// two mutable maps the wizard keeps per session (form values and per-field
// validation errors).
//
// Definitions and steps are immutable descriptors. They are loaded once (see
// package flows) and never mutated at runtime. Values and Errors are plain maps
// owned by the caller; helpers in this package only read them or return copies.
//
// # Usage
//
//	step := flow.Step(1)
//	for _, def := range step.Fields {
//	    fmt.Println(def.Label, values.String(def.Key))
//	}
//
//	if errs := v.Validate(step, values); !errs.Valid() {
//	    // render errs[key] next to each field
//	}
package field
