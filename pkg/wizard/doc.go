// Package wizard implements the onboarding controller that walks an applicant
// through the steps of a flow, then review, then submission.
//
// The wizard is a finite state machine over the states step_1..step_N,
// review, submitted and exited. Continue is guarded by step validation, Back
// walks one step towards the start (leaving the flow from step 1), and Submit
// is only accepted on review once the terms are accepted.
//
// Usage:
//
//	w, err := wizard.New(flows.MustLoad("AU", field.AccountPersonal))
//	if err != nil {
//		return err
//	}
//	if _, err := w.Edit("phone", "0412345678"); err != nil { // stored as "0412 345 678"
//		return err
//	}
//	errs, err := w.Continue(ctx)
//	if err != nil {
//		return err
//	}
//	if !errs.Valid() {
//		// show errs next to the fields
//	}
//
// Field edits clear the edited field's error. Values hold strings, except
// toggles which hold booleans and are set through Toggle. Select values are
// checked against the field's options. Once the wizard is submitted or exited
// every edit returns ErrFinished.
package wizard
