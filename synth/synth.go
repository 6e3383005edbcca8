// Package synth generates a labeled, shuffled set of synthetic test queries
// for evaluating the recipe chatbot. Scenario descriptors (dimension tuples)
// are generated first, then natural-language queries are fanned out per
// tuple, ambiguous and adversarial queries are generated separately, and the
// merged set is persisted as one timestamped CSV file.
package synth

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Category labels the intent class of a generated query.
type Category string

// Query categories written to the output artifact.
const (
	CategoryRegular     Category = "regular"
	CategoryAmbiguous   Category = "ambiguous"
	CategoryAdversarial Category = "adversarial"
)

// ErrNoTuples is returned by Generator.Run when the dimension tuple stage
// produced nothing. Without tuples there is nothing to condition the regular
// queries on, so the whole run aborts.
var ErrNoTuples = errors.New("no dimension tuples were generated")

// DimensionTuple is a labeled combination of scenario attributes used to
// condition generation of a realistic user query. Field order is fixed; the
// canonical serialization below depends on it.
type DimensionTuple struct {
	DietaryNeedsOrRestrictions string `json:"DietaryNeedsOrRestrictions"`
	AvailableIngredientsFocus  string `json:"AvailableIngredientsFocus"`
	CuisinePreference          string `json:"CuisinePreference"`
	SkillLevelEffort           string `json:"SkillLevelEffort"`
	TimeAvailability           string `json:"TimeAvailability"`
	QueryStyleAndDetail        string `json:"QueryStyleAndDetail"`
	UserContextOrScenario      string `json:"UserContextOrScenario"`
	UserAbilityOrAccessibility string `json:"UserAbilityOrAccessibility"`
}

// Canonical returns the order-preserving, field-by-field JSON serialization
// of the tuple. Two tuples are considered duplicates exactly when their
// canonical serializations are equal, and this string is also what the
// persistence layer writes for regular records.
func (d DimensionTuple) Canonical() string {
	// Marshaling a flat struct of strings cannot fail.
	bs, _ := json.Marshal(d)
	return string(bs)
}

func (d DimensionTuple) validate() error {
	fields := map[string]string{
		"DietaryNeedsOrRestrictions": d.DietaryNeedsOrRestrictions,
		"AvailableIngredientsFocus":  d.AvailableIngredientsFocus,
		"CuisinePreference":          d.CuisinePreference,
		"SkillLevelEffort":           d.SkillLevelEffort,
		"TimeAvailability":           d.TimeAvailability,
		"QueryStyleAndDetail":        d.QueryStyleAndDetail,
		"UserContextOrScenario":      d.UserContextOrScenario,
		"UserAbilityOrAccessibility": d.UserAbilityOrAccessibility,
	}
	for name, value := range fields {
		if value == "" {
			return fmt.Errorf("dimension tuple field %s is empty", name)
		}
	}
	return nil
}

// QueryRecord is the persisted unit of output. Records are created once
// during generation and never mutated afterward.
type QueryRecord struct {
	// ID is prefixed by category (SYN, AMB, ADV) followed by a zero-padded
	// sequence number unique within that prefix.
	ID    string
	Query string
	// Tuple is the scenario the query was conditioned on. Nil for
	// ambiguous and adversarial records.
	Tuple    *DimensionTuple
	Category Category
	// Kept and Note are reserved for downstream human review; generation
	// never computes them.
	Kept bool
	Note string
}

// tupleBatch is the transient envelope a structured tuple-generation call
// decodes into.
type tupleBatch struct {
	Tuples []DimensionTuple `json:"tuples"`
}

func (b tupleBatch) validate() error {
	if len(b.Tuples) == 0 {
		return errors.New("response contains no tuples")
	}
	for i, tuple := range b.Tuples {
		if err := tuple.validate(); err != nil {
			return fmt.Errorf("tuple %d: %w", i, err)
		}
	}
	return nil
}

// queryBatch is the transient envelope a structured query-generation call
// decodes into.
type queryBatch struct {
	Queries []string `json:"queries"`
}

func (b queryBatch) validate() error {
	if len(b.Queries) == 0 {
		return errors.New("response contains no queries")
	}
	for i, query := range b.Queries {
		if query == "" {
			return fmt.Errorf("query %d is empty", i)
		}
	}
	return nil
}
