// Package errors provides structured, actionable error messages for the
// VangoUI tooling.
//
// Every error carries a code (e.g. "E111") registered with a category, a
// short message, a detail paragraph and a documentation URL. Errors that
// come from a file, such as a story catalog, can carry a location; the
// surrounding lines are shown when the error is formatted.
//
// # Error Categories
//
//   - config: vangoui.json and environment problems
//   - story: story catalog parsing and validation
//   - gallery: gallery server and live sessions
//   - export: static export targets
//   - cli: command line usage
//
// # Usage
//
//	err := errors.New("E111").
//	    WithLocation("stories.yaml", 14, 5).
//	    WithDetail(`story "toast-error": args.variant must be one of success error warning info`).
//	    WithSuggestion("Use a known variant name")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E111: Story validation failed
//	//
//	//   stories.yaml:14:5
//	//
//	//     12 │ - id: toast-error
//	//     13 │   kind: toast
//	//   → 14 │   args: {variant: loud}
//	//        │     ^
//	//
//	//   Hint: Use a known variant name
package errors
