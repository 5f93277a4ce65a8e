// Tripmesh - a multi-agent retrieval-augmented travel assistant core.
//
// Tripmesh answers travel questions by routing each query to a set of
// specialized agents (culture, activity, food, language), running them with a
// shared collaboration context and merging their answers into one response -
// either concatenated expert sections or a structured Markdown itinerary for
// trip-planning queries.
//
// # Quick Start
//
// Install the package:
//
//	go get github.com/tripmesh/tripmesh
//
// Basic example:
//
//	package main
//
//	import (
//		"context"
//		"fmt"
//
//		"github.com/tripmesh/tripmesh/agent"
//		"github.com/tripmesh/tripmesh/coordinator"
//		"github.com/tripmesh/tripmesh/llm"
//	)
//
//	func main() {
//		// Initialize an OpenAI-compatible model
//		model, _ := llm.NewOpenAI("")
//
//		// Build the four specialized agents
//		registry := make(map[agent.ID]agent.Agent)
//		for id, profile := range agent.Profiles() {
//			registry[id], _ = agent.NewTravelAgent(profile, model)
//		}
//
//		// Coordinate a query end to end
//		coord, _ := coordinator.New(registry)
//		resp, _ := coord.Coordinate(context.Background(), "Plan a day in Hanoi")
//		fmt.Println(resp.Response)
//	}
//
// # Packages
//
//   - coordinator: query routing, sequential collaboration, aggregation and
//     follow-up suggestions
//   - agent: agent profiles, preference extraction and the retrieval-augmented
//     TravelAgent
//   - retrieval: vector-store retrieval with a widening threshold fallback
//   - websearch: Brave web search fallback with optional page text extraction
//   - history: per-session conversation stores (memory, Redis, SQLite,
//     Postgres)
//   - llm: OpenAI-compatible adapter for the llms.Model interface
//   - render: Markdown to sanitized HTML for web frontends
//   - log: leveled logging facade with a golog-backed implementation
package tripmesh
