package errors_test

import (
	"fmt"
	"net/http"

	"github.com/toolness/nycdb-fun/pkg/errors"
)

// Example shows a missing table declared by a dataset.
func Example() {
	err := fmt.Errorf("dataset hpd_complaints: %w", errors.NewNotFoundError("table", "hpd_complaints"))

	if errors.IsNotFound(err) {
		fmt.Println("Table not found")
	}

	// Output: Table not found
}

// Example_inconsistency shows how a catalog inconsistency is classified.
func Example_inconsistency() {
	err := fmt.Errorf("reconcile: %w",
		errors.NewInconsistencyError("catalog", "hpd_violations", "tags", "array column has no element type"))

	fmt.Println(errors.IsInconsistent(err))
	fmt.Println(err)

	// Output:
	// true
	// reconcile: catalog inconsistency at hpd_violations.tags: array column has no element type
}

// Example_unavailable shows a failed download surfaced as an unavailable source.
func Example_unavailable() {
	cause := errors.NewHTTPError("NYC Open Data", "https://data.cityofnewyork.us/api/views/64uk-42ks", http.StatusServiceUnavailable)
	err := errors.NewUnavailableError("NYC Open Data", "pluto_18v1.json", cause)

	var httpErr *errors.HTTPError
	if errors.IsSourceUnavailable(err) && errors.As(err, &httpErr) {
		fmt.Printf("status %d\n", httpErr.StatusCode)
	}

	// Output: status 503
}
