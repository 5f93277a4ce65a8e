package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"

	"github.com/tripmesh/tripmesh/log"
	"github.com/tripmesh/tripmesh/retrieval"
	"github.com/tripmesh/tripmesh/websearch"
)

const (
	// minLocalContext is the point below which local knowledge is considered
	// too thin and web search kicks in.
	minLocalContext = 500
	maxLocalContext = 4000
	maxWebContext   = 2000

	baseConfidence     = 0.6
	localContextBoost  = 0.2
	collaborationBoost = 0.1
	maxConfidence      = 0.95
	defaultTemperature = 0.3
)

// TravelAgent is a retrieval-augmented specialized agent. It grounds answers
// in a vector store, falls back to web search when local knowledge is thin,
// and generates the final answer with an LLM. Both the retriever and the
// searcher are optional; without them the agent answers from the model alone.
type TravelAgent struct {
	profile     *Profile
	model       llms.Model
	retriever   *retrieval.Retriever
	searcher    websearch.Searcher
	temperature float64
	logger      log.Logger
}

var _ Agent = (*TravelAgent)(nil)

// TravelAgentOption configures a TravelAgent.
type TravelAgentOption func(*TravelAgent)

// WithRetriever attaches a local-knowledge retriever.
func WithRetriever(retriever *retrieval.Retriever) TravelAgentOption {
	return func(a *TravelAgent) {
		a.retriever = retriever
	}
}

// WithSearcher attaches a web search fallback.
func WithSearcher(searcher websearch.Searcher) TravelAgentOption {
	return func(a *TravelAgent) {
		a.searcher = searcher
	}
}

// WithTemperature sets the generation temperature.
func WithTemperature(temperature float64) TravelAgentOption {
	return func(a *TravelAgent) {
		a.temperature = temperature
	}
}

// WithLogger sets the agent's logger.
func WithLogger(logger log.Logger) TravelAgentOption {
	return func(a *TravelAgent) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// NewTravelAgent creates an agent for the given profile.
func NewTravelAgent(profile *Profile, model llms.Model, opts ...TravelAgentOption) (*TravelAgent, error) {
	if profile == nil {
		return nil, fmt.Errorf("profile is required")
	}
	if model == nil {
		return nil, fmt.Errorf("model is required")
	}

	a := &TravelAgent{
		profile:     profile,
		model:       model,
		temperature: defaultTemperature,
		logger:      log.NoOpLogger{},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// ID returns the agent's identifier.
func (a *TravelAgent) ID() ID {
	return a.profile.ID
}

// Process answers a query, optionally taking collaboration context from
// earlier agents in the same coordination request.
func (a *TravelAgent) Process(ctx context.Context, query, collabContext string) (*Result, error) {
	if !a.profile.Relevant(query) {
		return &Result{
			Agent:      a.profile.ID,
			Response:   fmt.Sprintf("This query is not relevant to my expertise in %s.", a.profile.ID),
			Sources:    []string{},
			Confidence: 0.0,
		}, nil
	}

	clean := SanitizeQuery(query)

	localContext, sources := a.retrieveLocal(ctx, clean)
	webContext := ""
	if len(localContext) < minLocalContext && a.searcher != nil {
		a.logger.Debug("limited local context, using web search for %s agent", a.profile.ID)
		webContext = a.searchWeb(ctx, clean)
		if webContext != "" {
			sources = append(sources, "Web Search Results")
		}
	}

	genQuery := clean
	if a.profile.EnhanceQuery != nil {
		genQuery = a.profile.EnhanceQuery(clean)
	}

	response := a.generate(ctx, genQuery, localContext, webContext, collabContext)

	confidence := baseConfidence
	if localContext != "" {
		confidence += localContextBoost
	}
	if collabContext != "" {
		confidence += collaborationBoost
	}
	if confidence > maxConfidence {
		confidence = maxConfidence
	}

	return &Result{
		Agent:      a.profile.ID,
		Response:   response,
		Sources:    sources,
		Confidence: confidence,
	}, nil
}

func (a *TravelAgent) retrieveLocal(ctx context.Context, query string) (string, []string) {
	if a.retriever == nil {
		return "", nil
	}

	rctx, err := a.retriever.Retrieve(ctx, query)
	if err != nil {
		a.logger.Warn("retrieval failed for %s agent: %v", a.profile.ID, err)
		return "", nil
	}
	if rctx.Empty() {
		return "", nil
	}

	contents := make([]string, len(rctx.Documents))
	for i, doc := range rctx.Documents {
		contents[i] = doc.Content
	}
	localContext := strings.Join(contents, "\n\n")
	if len(localContext) > maxLocalContext {
		localContext = localContext[:maxLocalContext]
	}
	return localContext, rctx.Sources
}

func (a *TravelAgent) searchWeb(ctx context.Context, query string) string {
	results, err := a.searcher.Search(ctx, query+" "+a.profile.SearchSuffix)
	if err != nil {
		a.logger.Warn("web search failed for %s agent: %v", a.profile.ID, err)
		return ""
	}
	if len(results) > maxWebContext {
		results = results[:maxWebContext]
	}
	return results
}

func (a *TravelAgent) generate(ctx context.Context, query, localContext, webContext, collabContext string) string {
	system := a.profile.SystemPrompt
	if collabContext != "" {
		system += collaborationGuidance(collabContext)
	}
	if localContext == "" {
		system += noLocalKnowledgeGuidance(a.profile.ID)
	}

	promptParts := []string{"User query: " + query}
	if localContext != "" {
		promptParts = append(promptParts, "Local knowledge:\n"+localContext)
	}
	if webContext != "" {
		promptParts = append(promptParts, "Web search results:\n"+webContext)
	}
	if localContext == "" && webContext == "" {
		promptParts = append(promptParts, "No specific knowledge available - provide general expert guidance based on your training")
	}

	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, system),
		llms.TextParts(llms.ChatMessageTypeHuman, strings.Join(promptParts, "\n\n")),
	}

	resp, err := a.model.GenerateContent(ctx, messages, llms.WithTemperature(a.temperature))
	if err != nil || len(resp.Choices) == 0 {
		if err != nil {
			a.logger.Warn("generation failed for %s agent: %v", a.profile.ID, err)
		}
		return a.profile.Fallback
	}
	return strings.TrimSpace(resp.Choices[0].Content)
}

func collaborationGuidance(collabContext string) string {
	return fmt.Sprintf(`

IMPORTANT: You are collaborating with other specialized agents. Consider the following context from other agents:
%s

When responding:
- Build upon insights from other agents when relevant
- Avoid duplicating information already provided by other agents
- Focus on your specialized expertise while acknowledging other perspectives
- Ensure your response complements rather than conflicts with other agents' responses
- For itinerary queries: provide specific, actionable recommendations that work well with other agents' suggestions
- Make your response specific to the destination mentioned in the query`, collabContext)
}

func noLocalKnowledgeGuidance(id ID) string {
	return fmt.Sprintf(`

NOTE: No specific local knowledge was found in the knowledge base. Please provide general expert advice based on your specialized knowledge in %s.
Use your training knowledge to provide helpful, accurate information while being clear that this is general guidance.`, id)
}
