package deps

import (
	"fmt"
	"strings"
)

// Requirement defines an external dependency renderbatch relies on.
type Requirement struct {
	Name        string
	Locator     *Locator
	Description string
	Optional    bool
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// CheckRenderers evaluates the provided requirements and reports
// availability.
func CheckRenderers(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		status := Status{
			Name:        req.Name,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if req.Locator == nil {
			status.Detail = "locator not configured"
			results = append(results, status)
			continue
		}
		path, err := req.Locator.Resolve()
		if err != nil {
			status.Detail = err.Error()
			results = append(results, status)
			continue
		}
		status.Available = true
		status.Detail = fmt.Sprintf("found %s", path)
		results = append(results, status)
	}
	return results
}
