package agents

import "fmt"

// Capabilities reports what the configured backend can do; profiles that need
// a missing capability register as unavailable instead of failing startup.
type Capabilities struct {
	WebSearch bool
}

// TruthGuard is the default conversational agent.
func TruthGuard() Profile {
	return Profile{
		Name:         "TruthGuard",
		Description:  "Conversational interface for TruthGuard.",
		SystemPrompt: ChatSystemPrompt,
		Markers: []Marker{
			{Token: "google_search", Label: "Verifying with Google Search..."},
			{Token: "webSearchQueries", Label: "Verifying with Google Search..."},
		},
		WebSearch: true,
	}
}

// Verification is the evidence-first claim verification agent. It is invoked
// through the verify endpoint, not the chat router.
func Verification() Profile {
	return Profile{
		Name:         "verification",
		Description:  "Evidence-first verification agent.",
		SystemPrompt: VerificationSystemPrompt,
		WebSearch:    true,
	}
}

func deepSearch() Profile {
	return Profile{
		Name:         "Deep Search",
		Description:  "Multi-step web research agent.",
		SystemPrompt: ResearchSystemPrompt,
		PromptPrefix: "Research Topic: ",
		Markers: []Marker{
			{Token: "plan_generator", Label: "Generating Research Plan..."},
			{Token: "section_researcher", Label: "Researching Section..."},
			{Token: "google_search", Label: "Searching the Web..."},
			{Token: "webSearchQueries", Label: "Searching the Web..."},
			{Token: "report_composer", Label: "Composing Final Report..."},
			{Token: "enhanced_search_executor", Label: "Executing Enhanced Search..."},
			{Token: "interactive_planner_agent", Label: "Refining Plan..."},
		},
		WebSearch: true,
	}
}

func auditor() Profile {
	return Profile{
		Name:         "LLM Auditor",
		Description:  "Critic/reviser content audit agent.",
		SystemPrompt: AuditSystemPrompt,
		PromptPrefix: "Audit this: ",
		Markers: []Marker{
			{Token: "critic_agent", Label: "Critiquing Content..."},
			{Token: "reviser_agent", Label: "Revising Content..."},
			{Token: "google_search", Label: "Verifying Claims..."},
			{Token: "webSearchQueries", Label: "Verifying Claims..."},
		},
		WebSearch: true,
	}
}

// Registration is one agent integration's offer to the router. A non-nil Err
// marks the agent unavailable; the router logs it and routes those names to
// the default instead.
type Registration struct {
	Profile Profile
	Aliases []string
	Err     error
}

// DefaultRegistrations builds the optional chat agents against the backend's
// reported capabilities.
func DefaultRegistrations(caps Capabilities) []Registration {
	regs := []Registration{
		{Profile: auditor(), Aliases: []string{"audit"}},
	}
	research := Registration{Profile: deepSearch(), Aliases: []string{"research"}}
	if !caps.WebSearch {
		research.Err = fmt.Errorf("deep search requires web search grounding")
	}
	return append(regs, research)
}
