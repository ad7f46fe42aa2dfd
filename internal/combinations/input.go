package combinations

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
)

// Input describes a driver scenario: the base set to draw subsets from, the
// subset size and a safety limit on how many subsets a driver may materialize.
type Input struct {
	Set   []int
	M     uint64
	Limit uint64
}

func InputFromJson(file string) (Input, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Input{}, err
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return Input{}, err
	}

	var input Input
	if err := mapstructure.Decode(inputJson, &input); err != nil {
		return Input{}, fmt.Errorf("cannot decode input: %v", err)
	}

	return input, nil
}
