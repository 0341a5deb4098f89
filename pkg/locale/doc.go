// Package locale holds the country specific input rules (masks, identifier
// lengths, date order, currency, bank numbering) loaded from an embedded
// YAML catalog.
package locale
