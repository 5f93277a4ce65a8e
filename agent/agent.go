// Package agent defines the specialized travel agents and their contract.
//
// Each agent is bound to one travel subdomain (culture, activity, food,
// language). The coordinator package routes queries to a subset of agents and
// merges their results; this package provides the Agent interface it routes
// to, plus TravelAgent, a retrieval-augmented implementation backed by a
// vector store, an optional web search tool and an LLM.
package agent

import (
	"context"
)

// ID identifies a travel subdomain agent.
type ID string

const (
	// Culture covers traditions, etiquette, customs and festivals.
	Culture ID = "culture"
	// Activity covers attractions, tours, experiences and sightseeing.
	Activity ID = "activity"
	// Food covers cuisine, restaurants and dietary preferences.
	Food ID = "food"
	// Language covers phrases, translations and communication tips.
	Language ID = "language"
)

// All returns every agent ID in fixed priority order. This order is also the
// invocation order when multiple agents collaborate on one query.
func All() []ID {
	return []ID{Culture, Activity, Food, Language}
}

// Name returns the display name used in response headings, e.g. "Culture".
func (id ID) Name() string {
	switch id {
	case Culture:
		return "Culture"
	case Activity:
		return "Activity"
	case Food:
		return "Food"
	case Language:
		return "Language"
	default:
		return string(id)
	}
}

// Valid reports whether id is one of the known agents.
func (id ID) Valid() bool {
	switch id {
	case Culture, Activity, Food, Language:
		return true
	}
	return false
}

// Result is the outcome of a single agent invocation.
type Result struct {
	// Agent is the producing agent.
	Agent ID
	// Response is the generated answer text.
	Response string
	// Sources lists where the answer's content came from (document names,
	// "Web Search Results", ...). Order is not significant.
	Sources []string
	// Confidence is a filtering signal in [0, 0.95], not a calibrated
	// probability.
	Confidence float64
}

// Agent is a specialized responder for one travel subdomain.
//
// Process answers a query, optionally taking collaboration context built from
// earlier agents' answers in the same coordination request. Implementations
// should degrade internally where they can; a returned error is treated by
// the coordinator as a total failure of this agent and replaced with a
// low-confidence fallback result.
type Agent interface {
	ID() ID
	Process(ctx context.Context, query, collabContext string) (*Result, error)
}
