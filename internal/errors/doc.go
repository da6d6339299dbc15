// Package errors provides structured, actionable error messages for the
// forge command.
//
// Each error has a unique code (e.g., "E003") that maps to a category, a
// short message and a longer explanation. Layout errors carry the file
// location they were found at, and Format prints the surrounding lines:
//
//	err := errors.New("E003").
//	    WithLocation("site/index.yaml", 12, 5).
//	    WithSuggestion("List one name per tag in args")
//
//	fmt.Println(err.Format())
//	// ERROR E003: Forge entry name count mismatch
//	//
//	//   site/index.yaml:12:5
//	//
//	//     10 │ forge:
//	//     11 │   - names: [nav]
//	//   → 12 │     args: [nav, ul]
//	//        │     ^
//	//     ...
//
// Library packages under pkg/ return plain wrapped errors; this package is
// for what the command line reports.
package errors
