package output

import "github.com/rpgo/pillar-calculator/internal/domain"

// DefaultAssumptions lists the modeling assumptions of the calculator defaults.
var DefaultAssumptions = domain.DefaultScenarioInputs().GenerateAssumptions()

// GenerateAssumptions creates the assumptions list from actual input values
func GenerateAssumptions(in domain.ScenarioInputs) []string {
	if in.Years <= 0 {
		return DefaultAssumptions
	}
	return in.GenerateAssumptions()
}
