// Package validator provides declarative validation rules for PESEL input
// fields.
//
// A Rule pairs a boolean Check with translation-friendly error metadata.
// Apply evaluates rules and aggregates failures into ValidationErrors, which
// implements the error interface so a whole form can be reported at once.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.RequiredString("pesel", input),
//	    validator.ValidPESEL("pesel", input),
//	    validator.ValidPESELChecksum("pesel", input),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, e := range verrs {
//	        // e.TranslationKey, e.TranslationValues
//	    }
//	}
//
// ValidPESEL only checks the format, the same way pesel.Parse does.
// ValidPESELChecksum additionally compares the check digit.
//
// Rules hold no shared state and are safe for concurrent use.
package validator
