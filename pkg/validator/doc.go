// Package validator provides composable validation rules and the step
// validator used by the onboarding wizard.
//
// A Rule pairs a boolean Check with translation-friendly error metadata.
// Rules are evaluated with Apply, which aggregates failures into a
// ValidationErrors slice that satisfies the error interface.
//
// # Step validation
//
// StepValidator checks exactly the fields of one step:
//
//   - required fields must be non-empty (missing, blank and false are empty);
//   - email fields must contain "@";
//   - business number fields must hold exactly the locale's digit count;
//   - toggles are always valid.
//
// Type checks run only on non-empty values, so an optional email left blank
// passes. The result is a field.Errors map keyed by field key; an empty map
// means the step may advance.
//
// # Usage
//
//	v := validator.NewStepValidator(locale.MustLookup("AU"))
//	errs := v.Validate(flow.Step(1), values)
//	if !errs.Valid() {
//	    // render errs next to each input
//	}
//
// Individual rules can still be combined by hand:
//
//	err := validator.Apply(
//	    validator.RequiredValue("email", "Email Address", values),
//	    validator.ContainsAt("email", values.String("email")),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    fmt.Println(verrs.Map())
//	}
//
// Every exported constructor returns a Rule without hidden state, so the
// package is goroutine-safe.
package validator
