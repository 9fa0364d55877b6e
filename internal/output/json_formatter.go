package output

import (
	"encoding/json"
	"fmt"

	"github.com/rpgo/pillar-calculator/internal/domain"
)

// JSONFormatter serializes the comparison as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(results *domain.Comparison) ([]byte, error) {
	if results == nil {
		return nil, fmt.Errorf("nil comparison")
	}
	return json.MarshalIndent(results, "", "  ")
}
