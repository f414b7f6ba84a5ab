package domain

import "time"

// GenerationRegistry tracks how many content generations ran per counter type.
type GenerationRegistry struct {
	Counter       map[CounterType]int        `json:"counter"`
	LastGenerated map[CounterType]*time.Time `json:"lastGenerated"`
}

// NewGenerationRegistry returns a registry with zeroed counters.
func NewGenerationRegistry() GenerationRegistry {
	return GenerationRegistry{
		Counter:       map[CounterType]int{CounterMain: 0, CounterTest: 0},
		LastGenerated: map[CounterType]*time.Time{CounterMain: nil, CounterTest: nil},
	}
}
