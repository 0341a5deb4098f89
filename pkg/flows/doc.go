// Package flows ships the step schemas of the onboarding wizard.
//
// A flow is the ordered list of steps an applicant completes for one account
// type in one locale. Personal flows have four steps, business flows five.
// Schemas are plain data embedded from catalog/*.yaml:
//
//	flow, err := flows.Load("AU", field.AccountBusiness)
//	if err != nil {
//		return err
//	}
//	step := flow.Step(1)
//
// Custom catalogs can be parsed into a separate Registry with Parse.
package flows
