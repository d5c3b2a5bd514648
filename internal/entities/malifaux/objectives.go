package malifaux

// Strategy is the single shared objective of a game
type Strategy struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Description     string             `json:"description"`
	Requirements    map[Capability]int `json:"requirements"`
	FavorsRoles     []string           `json:"favors_roles"`
	RequiresKilling bool               `json:"requires_killing,omitempty"`
}

// Scheme is a secret objective drawn into the game's scheme pool.
// BranchesTo lists the schemes reachable from this one in the season's
// branching tree.
type Scheme struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Description     string             `json:"description"`
	Requirements    map[Capability]int `json:"requirements"`
	FavorsRoles     []string           `json:"favors_roles"`
	BranchesTo      []string           `json:"branches_to,omitempty"`
	RequiresKilling bool               `json:"requires_killing,omitempty"`
}
