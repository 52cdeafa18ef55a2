package hf

import "fmt"

// NewParameters constructs a Parameters instance and performs basic
// validation on the provided values. It returns an
// InvalidArgumentError for values that are clearly out of range.
//
// This helper is optional: callers can still construct Parameters
// directly when they prefer not to perform validation.
func NewParameters(temperature *float64, topP *float64, topK *int, maxNewTokens *int) (*Parameters, error) {
	if temperature != nil {
		if *temperature < 0 || *temperature > 2 {
			return nil, &InvalidArgumentError{
				Parameter: "temperature",
				Value:     *temperature,
				Message:   "must be between 0 and 2",
			}
		}
	}
	if topP != nil {
		if *topP <= 0 || *topP > 1 {
			return nil, &InvalidArgumentError{
				Parameter: "topP",
				Value:     *topP,
				Message:   "must be in the range (0, 1]",
			}
		}
	}
	if topK != nil {
		if *topK <= 0 {
			return nil, &InvalidArgumentError{
				Parameter: "topK",
				Value:     *topK,
				Message:   "must be greater than 0",
			}
		}
	}
	if maxNewTokens != nil {
		if *maxNewTokens <= 0 {
			return nil, &InvalidArgumentError{
				Parameter: "maxNewTokens",
				Value:     *maxNewTokens,
				Message:   "must be greater than 0",
			}
		}
	}

	return &Parameters{
		Temperature:  temperature,
		TopP:         topP,
		TopK:         topK,
		MaxNewTokens: maxNewTokens,
	}, nil
}

// MustNewParameters constructs Parameters and panics if validation
// fails. It is intended for configuration that should be validated at
// startup, not for user input.
func MustNewParameters(temperature *float64, topP *float64, topK *int, maxNewTokens *int) *Parameters {
	p, err := NewParameters(temperature, topP, topK, maxNewTokens)
	if err != nil {
		panic(fmt.Sprintf("hf: invalid generation parameters: %v", err))
	}
	return p
}
