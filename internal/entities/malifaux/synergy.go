package malifaux

// SynergyType classifies how two crew members interact
type SynergyType string

// Synergy edge types
const (
	SynergySharedKeyword  SynergyType = "shared_keyword"
	SynergyKeywordBuff    SynergyType = "keyword_buff"
	SynergyRoleComplement SynergyType = "role_complement"
	SynergyAbilityStack   SynergyType = "ability_stack"
	SynergyCharacteristic SynergyType = "characteristic"
	SynergyResourceFlow   SynergyType = "resource_flow"

	AntiSynergyResourceCompetition   SynergyType = "resource_competition"
	AntiSynergyActivationCompetition SynergyType = "activation_competition"
)

// SynergyDirection records which way a directional edge points
type SynergyDirection string

// Edge directions. Mutual edges have no meaningful arrow.
const (
	DirectionMutual SynergyDirection = "mutual"
	DirectionAToB   SynergyDirection = "a_to_b"
	DirectionBToA   SynergyDirection = "b_to_a"
)

// SynergyEdge is one detected pairwise relationship inside a crew.
// Strength is in (0,1]; edges are advisory and never block hiring.
type SynergyEdge struct {
	ModelA    string           `json:"model_a"`
	ModelB    string           `json:"model_b"`
	Type      SynergyType      `json:"type"`
	Direction SynergyDirection `json:"direction"`
	Strength  float64          `json:"strength"`
	Reason    string           `json:"reason"`
}
