// Package coordinator routes travel queries across specialized agents and
// merges their answers into a single response.
//
// A coordination request is a single linear pipeline: select the agents whose
// expertise the query touches, run them sequentially while threading a
// growing collaboration context through the calls, then aggregate the
// surviving results. No state survives across requests; every Coordinate call
// works on its own data, so a Coordinator is safe for concurrent use.
package coordinator

import (
	"context"
	"errors"
	"fmt"

	"github.com/tripmesh/tripmesh/agent"
	"github.com/tripmesh/tripmesh/log"
)

// ErrUnknownAgent is returned when a selected agent has no registry entry.
var ErrUnknownAgent = errors.New("unknown agent")

// ErrEmptyRegistry is returned by New when no agents are registered.
var ErrEmptyRegistry = errors.New("agent registry is empty")

// Coordinator is the entry point of the multi-agent pipeline. It owns the
// selector, runner, aggregator and follow-up suggester; the agents themselves
// are injected through the registry, so tests can substitute stubs without
// touching a model.
type Coordinator struct {
	selector   *AgentSelector
	runner     *CollaborationRunner
	aggregator ResponseAggregator
	suggester  FollowUpSuggester
	logger     log.Logger
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithLogger sets the coordinator's logger. Selector and runner inherit it
// unless overridden.
func WithLogger(logger log.Logger) Option {
	return func(c *Coordinator) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithSelector replaces the default selector.
func WithSelector(selector *AgentSelector) Option {
	return func(c *Coordinator) {
		if selector != nil {
			c.selector = selector
		}
	}
}

// New creates a Coordinator over the given agent registry. The registry maps
// agent IDs to implementations and must not be empty.
func New(registry map[agent.ID]agent.Agent, opts ...Option) (*Coordinator, error) {
	if len(registry) == 0 {
		return nil, ErrEmptyRegistry
	}
	for id := range registry {
		if !id.Valid() {
			return nil, fmt.Errorf("%w: %s", ErrUnknownAgent, id)
		}
	}

	c := &Coordinator{
		logger: log.NoOpLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.selector == nil {
		c.selector = NewAgentSelector(WithSelectorLogger(c.logger))
	}
	c.runner = NewCollaborationRunner(registry, c.logger)

	return c, nil
}

// Coordinate answers a query end to end: select agents, run them, merge the
// results. A single selected agent answers verbatim without aggregation;
// multiple agents collaborate and their answers are merged, as an itinerary
// document when the query reads like trip planning.
func (c *Coordinator) Coordinate(ctx context.Context, query string) (*Response, error) {
	selected := c.selector.Select(query)
	c.logger.Info("selected agents for %q: %v", query, selected)

	results, err := c.runner.Run(ctx, query, selected)
	if err != nil {
		return nil, err
	}

	if len(results) == 1 {
		result := results[0]
		return &Response{
			Response:      result.Response,
			Sources:       result.Sources,
			AgentsUsed:    []agent.ID{result.Agent},
			Collaboration: false,
		}, nil
	}

	return c.aggregator.Aggregate(results, query, c.selector.IsItineraryQuery(query)), nil
}

// SuggestFollowUps proposes up to three follow-up questions for a response.
func (c *Coordinator) SuggestFollowUps(resp *Response) []string {
	if resp == nil {
		return nil
	}
	return c.suggester.Suggest(resp.AgentsUsed)
}

// Capabilities describes what each agent covers, keyed by agent ID.
func Capabilities() map[agent.ID][]string {
	return map[agent.ID][]string{
		agent.Culture: {
			"Local traditions and customs",
			"Festivals and celebrations",
			"Cultural etiquette and manners",
			"Historical and heritage sites",
			"Arts, religion and architecture",
			"Social norms and behavior",
		},
		agent.Activity: {
			"Itinerary planning and scheduling",
			"Tourist attractions and sightseeing",
			"Outdoor adventures and tours",
			"Entertainment and nightlife",
			"Shopping and markets",
			"Day trips and excursions",
		},
		agent.Food: {
			"Local cuisine and specialties",
			"Restaurant recommendations",
			"Street food and markets",
			"Dietary restrictions and allergies",
			"Food safety tips",
			"Drinks and dining etiquette",
		},
		agent.Language: {
			"Essential phrases and greetings",
			"Pronunciation guidance",
			"Translation help",
			"Communication etiquette",
			"Emergency phrases",
			"Shopping and dining vocabulary",
		},
	}
}
