package malifaux

// Capability is a coarse tag describing something a model is good at
type Capability string

// Capabilities scored by the extractor and demanded by objectives
const (
	CapMobility          Capability = "mobility"
	CapFlight            Capability = "flight"
	CapSurvivability     Capability = "survivability"
	CapDamage            Capability = "damage"
	CapMelee             Capability = "melee"
	CapEngagement        Capability = "engagement"
	CapSchemeMarkers     Capability = "scheme_markers"
	CapInteract          Capability = "interact"
	CapDontMindMe        Capability = "dont_mind_me"
	CapPushPull          Capability = "push_pull"
	CapKidnap            Capability = "kidnap"
	CapBoardControl      Capability = "board_control"
	CapMarkerCreation    Capability = "marker_creation"
	CapMarkerInteraction Capability = "marker_interaction"
	CapCorpseMarkers     Capability = "corpse_markers"
	CapSpread            Capability = "spread"
	CapCheapActivations  Capability = "cheap_activations"
	CapActivationControl Capability = "activation_control"
	CapMinionHeavy       Capability = "minion_heavy"
	CapAlphaStrike       Capability = "alpha_strike"
	CapPositioning       Capability = "positioning"
)

// CapabilityVector maps capability tags to non-negative scores. Scores
// are built additively by the extractor's rules and never decrease.
type CapabilityVector map[Capability]int

// Add increases a capability's score
func (v CapabilityVector) Add(cap Capability, n int) {
	v[cap] += n
}

// Get returns a capability's score, zero when absent
func (v CapabilityVector) Get(cap Capability) int {
	return v[cap]
}

// Merge adds every score in other into v
func (v CapabilityVector) Merge(other CapabilityVector) {
	for cap, n := range other {
		v[cap] += n
	}
}

// Clone returns an independent copy of the vector
func (v CapabilityVector) Clone() CapabilityVector {
	out := make(CapabilityVector, len(v))
	for cap, n := range v {
		out[cap] = n
	}
	return out
}
