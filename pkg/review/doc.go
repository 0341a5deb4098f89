// Package review renders a completed application for the confirmation
// screen: one section per step, one row per field, with identity numbers
// masked so only their last four digits are visible.
package review
