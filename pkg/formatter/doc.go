// Package formatter turns raw keystrokes into the masked display text of a
// form field.
//
// A Formatter is bound to one locale.Locale and dispatches on field.Type
// through a single handler table:
//
//   - phone – digits only, truncated to the locale maximum, grouped by the
//     variant whose prefix matches (AU mobiles "0412 345 678", landlines
//     "02 1234 5678").
//   - taxId, businessNumber, date – digits only, truncated to the mask
//     capacity, separators inserted once a digit follows them.
//   - currency – digits and one decimal point, rendered with the locale symbol,
//     digit grouping and exactly two fraction digits.
//   - everything else – returned unchanged.
//
// The host calls Format on every change event and stores the result, so the
// next call receives the previous output plus one new character. Format is
// therefore idempotent and never fails:
//
//	f := formatter.New(locale.MustLookup("AU"))
//	f.Format("0412345678", field.TypePhone)      // "0412 345 678"
//	f.Format("0412 345 678", field.TypePhone)    // "0412 345 678"
//	f.Format("1234.5", field.TypeCurrency)       // "$1,234.50"
package formatter
