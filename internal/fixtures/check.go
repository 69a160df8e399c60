package fixtures

import (
	"fmt"

	"pgmanager/server/internal/models"
)

// Check validates every property and room in the snapshot and reports
// rooms whose stored availability disagrees with their occupancy.
// Problems are returned, not fixed.
func Check(data models.Snapshot) []error {
	var problems []error
	for _, p := range data.Properties {
		if err := p.Validate(); err != nil {
			problems = append(problems, err)
		}
	}
	for _, r := range data.Rooms {
		if err := r.Validate(); err != nil {
			problems = append(problems, err)
			continue
		}
		if r.IsAvailable != r.HasVacancy() {
			problems = append(problems, fmt.Errorf("room %s: is_available=%t but occupancy %d of %d", r.ID, r.IsAvailable, r.Occupancy, r.Capacity))
		}
	}
	return problems
}
