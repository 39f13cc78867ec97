// Package error provides structured error handling for the datetime-helper library.
//
// Package: error
// Title: Structured Error Handling
// Description: Implements an error type that carries a classification code, a
//              severity, the failing operation and key/value details, so that
//              callers of the date utilities and the datecal CLI can react to a
//              failure without parsing its message.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2025-10-12 v0.2.0: Reduced code set to calendar and configuration failures,
//                       added CodeInvalidOrder, HasCode walks wrapped chains
//
// Usage:
//
//	import dherror "github.com/StuartShepherd/datetime-helper/foundation/core/error"
//
//	err := dherror.New("value date is after compare date").
//		WithCode(dherror.CodeInvalidOrder).
//		WithOperation("timex.AgeInYears").
//		WithDetail("value", value)
//
//	if dherror.HasCode(err, dherror.CodeInvalidOrder) {
//		// swap the arguments or reject the request
//	}
package error
