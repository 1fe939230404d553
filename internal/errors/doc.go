// Package errors provides coded, actionable errors for the scorer-ui
// service and CLI.
//
// Each error code (e.g., "E101") maps to a category, a short message and a
// longer explanation. Call sites add detail, a fix suggestion, and the
// underlying cause:
//
//	err := errors.New("E101").
//	    WithDetail("Failed to parse scorer-ui.json: unexpected EOF").
//	    WithSuggestion("Check that scorer-ui.json is valid JSON")
//
//	fmt.Fprint(os.Stderr, err.Format())
//	// ERROR E101: Invalid configuration file
//	//
//	//   Failed to parse scorer-ui.json: unexpected EOF
//	//
//	//   Hint: Check that scorer-ui.json is valid JSON
//
// Codes are grouped by category: E1xx config, E2xx publish, E3xx server.
package errors
