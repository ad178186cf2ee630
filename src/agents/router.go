package agents

import (
	"log"
	"strings"
)

// Router maps logical agent names to profiles. The map is built once at
// startup and never mutated afterwards; unknown or unavailable names resolve
// to the default conversational agent so the chat surface stays available.
type Router struct {
	byName map[string]Profile
	def    Profile
}

// NewRouter builds the routing table from the default agent and the optional
// registrations. Unavailable registrations are logged and skipped, which turns
// their names into routing misses.
func NewRouter(def Profile, regs []Registration) *Router {
	r := &Router{
		byName: make(map[string]Profile),
		def:    def,
	}
	r.add(def, nil)
	for _, reg := range regs {
		if reg.Err != nil {
			log.Printf("agents: %q unavailable: %v", reg.Profile.Name, reg.Err)
			continue
		}
		r.add(reg.Profile, reg.Aliases)
	}
	return r
}

func (r *Router) add(p Profile, aliases []string) {
	r.byName[strings.ToLower(p.Name)] = p
	for _, a := range aliases {
		r.byName[strings.ToLower(a)] = p
	}
}

// Resolve returns the profile for a logical agent name, falling back to the
// default agent rather than erroring.
func (r *Router) Resolve(name string) Profile {
	if p, ok := r.byName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return p
	}
	return r.def
}

// Default returns the fallback conversational agent.
func (r *Router) Default() Profile { return r.def }

// Names lists the registered agent names, default included.
func (r *Router) Names() []string {
	names := make([]string, 0, len(r.byName))
	for n := range r.byName {
		names = append(names, n)
	}
	return names
}
