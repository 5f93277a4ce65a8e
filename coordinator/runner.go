package coordinator

import (
	"context"
	"fmt"
	"strings"

	"github.com/tripmesh/tripmesh/agent"
	"github.com/tripmesh/tripmesh/log"
)

const (
	// collaborationCutoff is the confidence above which an agent's answer is
	// summarized into the context passed to later agents.
	collaborationCutoff = 0.5
	// runningSnippetLen bounds each entry in the running collaboration
	// context.
	runningSnippetLen = 200
	// insightSnippetLen bounds each entry in the "Previous agent insights"
	// block.
	insightSnippetLen = 150
	// fallbackConfidence marks results substituted for a failed agent call.
	fallbackConfidence = 0.1
)

// CollaborationRunner invokes selected agents sequentially in priority order,
// threading a growing collaboration context into each subsequent call.
//
// An error from one agent never aborts the others: the failed call is
// replaced with a fixed low-confidence fallback result and the loop
// continues. The sequential order is deliberate — later agents consume
// summaries of earlier answers, so this is a producer/consumer ordering, not
// an incidental serialization.
type CollaborationRunner struct {
	registry map[agent.ID]agent.Agent
	logger   log.Logger
}

// NewCollaborationRunner creates a runner over the given agent registry.
func NewCollaborationRunner(registry map[agent.ID]agent.Agent, logger log.Logger) *CollaborationRunner {
	if logger == nil {
		logger = log.NoOpLogger{}
	}
	return &CollaborationRunner{
		registry: registry,
		logger:   logger,
	}
}

// Run invokes every selected agent and returns their results in invocation
// order, fallback entries included. The only error condition is a selected
// agent missing from the registry, which is a configuration bug, not a
// runtime failure.
func (r *CollaborationRunner) Run(ctx context.Context, query string, selected []agent.ID) ([]agent.Result, error) {
	agents := make([]agent.Agent, len(selected))
	for i, id := range selected {
		ag, ok := r.registry[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownAgent, id)
		}
		agents[i] = ag
	}

	if len(agents) == 1 {
		return []agent.Result{r.invoke(ctx, agents[0], selected[0], query, "")}, nil
	}

	results := make([]agent.Result, 0, len(agents))
	var running strings.Builder

	for i, ag := range agents {
		collabContext := running.String()
		if i > 0 {
			collabContext += "\n\nPrevious agent insights:\n" + insightBlock(results)
		}

		result := r.invoke(ctx, ag, selected[i], query, collabContext)
		results = append(results, result)

		if result.Confidence > collaborationCutoff {
			running.WriteString(fmt.Sprintf("\n%s Agent: %s\n",
				result.Agent.Name(), snippet(result.Response, runningSnippetLen)))
		}
	}

	return results, nil
}

func (r *CollaborationRunner) invoke(ctx context.Context, ag agent.Agent, id agent.ID, query, collabContext string) agent.Result {
	result, err := ag.Process(ctx, query, collabContext)
	if err != nil || result == nil {
		if err != nil {
			r.logger.Warn("agent %s failed: %v", id, err)
		}
		return fallbackResult(id)
	}
	return *result
}

// insightBlock summarizes prior high-confidence results for the next agent.
func insightBlock(results []agent.Result) string {
	var sb strings.Builder
	for _, result := range results {
		if result.Confidence > collaborationCutoff {
			sb.WriteString(fmt.Sprintf("- %s: %s\n",
				result.Agent.Name(), snippet(result.Response, insightSnippetLen)))
		}
	}
	return sb.String()
}

func fallbackResult(id agent.ID) agent.Result {
	return agent.Result{
		Agent: id,
		Response: fmt.Sprintf("I encountered an issue processing your request. "+
			"Please try rephrasing your question or ask for more specific information about %s.", id),
		Sources:    []string{},
		Confidence: fallbackConfidence,
	}
}

// snippet truncates text to a bounded prefix and marks the cut with an
// ellipsis.
func snippet(text string, n int) string {
	if len(text) > n {
		text = text[:n]
	}
	return text + "..."
}
