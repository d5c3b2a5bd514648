package engine

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/breachside/crew-api/internal/entities/malifaux"
	"github.com/breachside/crew-api/internal/errors"
	"github.com/breachside/crew-api/internal/pkg/idgen"
)

// Difficulty selects how hard the generated opponent should fight
type Difficulty string

// Recognized difficulty presets
const (
	DifficultyWellMatched Difficulty = "well-matched"
	DifficultyChallenging Difficulty = "challenging"
	DifficultyStrongest   Difficulty = "strongest"
)

// PickStrategy controls how a leader is chosen from the scored pool
type PickStrategy string

// Pick strategies
const (
	PickRandom   PickStrategy = "random"
	PickWeighted PickStrategy = "weighted"
	PickTop      PickStrategy = "top"
)

// DifficultyConfig tunes counter-leader scoring and selection
type DifficultyConfig struct {
	ScoreMultiplier float64      `json:"score_multiplier"`
	PoolSize        int          `json:"pool_size"`
	Pick            PickStrategy `json:"pick"`
}

// difficultyPresets maps each difficulty to its tuning
var difficultyPresets = map[Difficulty]DifficultyConfig{
	DifficultyWellMatched: {ScoreMultiplier: 1.0, PoolSize: 8, Pick: PickRandom},
	DifficultyChallenging: {ScoreMultiplier: 1.5, PoolSize: 5, Pick: PickWeighted},
	DifficultyStrongest:   {ScoreMultiplier: 2.0, PoolSize: 3, Pick: PickTop},
}

// DifficultyPreset resolves a difficulty name, falling back to
// well-matched for anything unrecognized
func DifficultyPreset(d Difficulty) DifficultyConfig {
	if cfg, ok := difficultyPresets[d]; ok {
		return cfg
	}
	return difficultyPresets[DifficultyWellMatched]
}

// Counter-scoring rewards. Each fires when the candidate keyword's
// profile exploits something in the player's crew.
const (
	rewardExploitsApplied = 15.0
	rewardAppliesWeakness = 12.0
	rewardPiercesArmor    = 15.0
	rewardPunishesHealing = 10.0
	rewardControlVsWeakWp = 8.0
	rewardOutrunsSlowCrew = 8.0
	counterJitterBase     = 4.0

	slowCrewSpeed     = 5.0
	weightedPickDecay = 0.6
)

var armorPiercePattern = []string{"irreducible", "ignores armor", "armor piercing"}

// CounterGenerator picks and builds opposing crews. The random source is
// injected so tests can pin a seed; production wiring seeds from the
// clock for varied output.
type CounterGenerator struct {
	suggester *Suggester
	rng       *rand.Rand
}

// CounterGeneratorConfig holds the dependencies for the counter generator
type CounterGeneratorConfig struct {
	IDGenerator idgen.Generator
	Rand        *rand.Rand
}

// Validate ensures all required dependencies are provided
func (c *CounterGeneratorConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	return vb.Build()
}

// NewCounterGenerator creates a new counter-crew generator
func NewCounterGenerator(cfg *CounterGeneratorConfig) (*CounterGenerator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	suggester, err := NewSuggester(&SuggesterConfig{IDGenerator: cfg.IDGenerator})
	if err != nil {
		return nil, err
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &CounterGenerator{suggester: suggester, rng: rng}, nil
}

// AnalyzePlayerProfile condenses a crew into the signals counter-scoring
// keys off: its condition economy, roles, average stat line, and the
// conditions it has no relationship with (its weaknesses).
func AnalyzePlayerProfile(leader *malifaux.Card, roster []malifaux.RosterEntry) PlayerProfile {
	models := make([]*malifaux.Card, 0, len(roster)+1)
	if leader != nil {
		models = append(models, leader)
	}
	for _, e := range roster {
		models = append(models, e.Card)
	}

	applied := map[string]bool{}
	required := map[string]bool{}
	roles := map[string]bool{}
	var dfSum, wpSum, mvSum float64
	var dfN, wpN, mvN int
	profile := PlayerProfile{}

	for _, card := range models {
		text := scanText(card)
		for _, cond := range conditionsApplied(text) {
			applied[cond] = true
		}
		for _, cond := range conditionsRequired(text) {
			required[cond] = true
		}
		for _, role := range card.Roles {
			roles[role] = true
		}
		if card.Defense != nil {
			dfSum += float64(*card.Defense)
			dfN++
		}
		if card.Willpower != nil {
			wpSum += float64(*card.Willpower)
			wpN++
		}
		if card.Speed != nil {
			mvSum += float64(*card.Speed)
			mvN++
		}
		if healingPattern.MatchString(text) {
			profile.HasHealing = true
		}
		if strings.Contains(text, "armor") {
			profile.HasArmor = true
		}
	}

	profile.ConditionsApplied = sortedKeys(applied)
	profile.ConditionsRequired = sortedKeys(required)
	profile.Roles = sortedKeys(roles)
	if dfN > 0 {
		profile.AvgDefense = dfSum / float64(dfN)
	}
	if wpN > 0 {
		profile.AvgWillpower = wpSum / float64(wpN)
	}
	if mvN > 0 {
		profile.AvgSpeed = mvSum / float64(mvN)
	}
	profile.SlowCrew = mvN > 0 && profile.AvgSpeed < slowCrewSpeed

	for _, cond := range malifaux.AllConditions {
		if !applied[cond] && !required[cond] {
			profile.WeakToConditions = append(profile.WeakToConditions, cond)
		}
	}

	return profile
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// keywordProfile aggregates the text signals of a leader's keyword pool
type keywordProfile struct {
	appliesConditions  map[string]bool
	requiresConditions map[string]bool
	roles              map[string]bool
	piercesArmor       bool
	hasExecutes        bool
}

func buildKeywordProfile(leader *malifaux.Card, pool []*malifaux.Card) keywordProfile {
	profile := keywordProfile{
		appliesConditions:  map[string]bool{},
		requiresConditions: map[string]bool{},
		roles:              map[string]bool{},
	}
	models := append([]*malifaux.Card{leader}, pool...)
	for _, card := range models {
		text := scanText(card)
		for _, cond := range conditionsApplied(text) {
			profile.appliesConditions[cond] = true
		}
		for _, cond := range conditionsRequired(text) {
			profile.requiresConditions[cond] = true
		}
		for _, role := range card.Roles {
			profile.roles[role] = true
		}
		for _, pat := range armorPiercePattern {
			if strings.Contains(text, pat) {
				profile.piercesArmor = true
			}
		}
		if executePattern.MatchString(text) {
			profile.hasExecutes = true
		}
	}
	return profile
}

// scoreCounterLeader scores one opposing leader's keyword against the
// player profile. Rewards are additive and condition matches are
// weighted by the condition's power tier; the jitter term keeps lower
// difficulties from always converging on the same pick.
func (g *CounterGenerator) scoreCounterLeader(leader *malifaux.Card, pool []*malifaux.Card, player PlayerProfile, cfg DifficultyConfig) CounterPick {
	kp := buildKeywordProfile(leader, pool)
	score := 0.0
	var reasons []string

	for _, cond := range player.ConditionsApplied {
		if kp.requiresConditions[cond] {
			pts := rewardExploitsApplied * cfg.ScoreMultiplier * malifaux.ConditionTier(cond)
			score += pts
			reasons = append(reasons, fmt.Sprintf("feeds on the %s your crew hands out", cond))
		}
	}
	for _, cond := range player.WeakToConditions {
		if kp.appliesConditions[cond] {
			pts := rewardAppliesWeakness * cfg.ScoreMultiplier * malifaux.ConditionTier(cond)
			score += pts
			reasons = append(reasons, fmt.Sprintf("applies %s, which your crew has no answer to", cond))
		}
	}
	if player.HasArmor && kp.piercesArmor {
		score += rewardPiercesArmor * cfg.ScoreMultiplier
		reasons = append(reasons, "brings irreducible damage into your armor")
	}
	if player.HasHealing && kp.hasExecutes {
		score += rewardPunishesHealing * cfg.ScoreMultiplier
		reasons = append(reasons, "execute effects deny your healing")
	}
	if kp.roles[malifaux.RoleControl] && player.AvgWillpower > 0 && player.AvgWillpower < player.AvgDefense {
		score += rewardControlVsWeakWp * cfg.ScoreMultiplier
		reasons = append(reasons, "targets your crew's weaker willpower")
	}
	if player.SlowCrew && kp.roles[malifaux.RoleSchemeRunner] {
		score += rewardOutrunsSlowCrew * cfg.ScoreMultiplier
		reasons = append(reasons, "outruns your slow crew on schemes")
	}

	// Jitter only applies once something matched; a zero score must stay
	// zero so the caller can detect that no keyword counters this crew.
	if score > 0 {
		score += g.rng.Float64() * counterJitterBase / cfg.ScoreMultiplier
	}

	return CounterPick{Leader: leader, Score: score, Reasons: reasons}
}

// CounterCrewInput supplies the player crew and the opposing candidates
type CounterCrewInput struct {
	PlayerLeader *malifaux.Card
	PlayerRoster []malifaux.RosterEntry
	// CandidateLeaders are other-faction masters with a primary keyword
	CandidateLeaders []*malifaux.Card
	// KeywordPools maps each candidate leader's ID to its hireable keyword pool
	KeywordPools map[string][]*malifaux.Card
	Budget       int
	Difficulty   Difficulty
}

// CounterCrewResult is the generated opposing crew plus its reasoning
type CounterCrewResult struct {
	Leader   *malifaux.Card         `json:"leader"`
	Roster   []malifaux.RosterEntry `json:"roster"`
	Profile  PlayerProfile          `json:"player_profile"`
	Score    float64                `json:"score"`
	Reasons  []string               `json:"reasons"`
	Fallback bool                   `json:"fallback"`
}

// Generate analyzes the player crew, scores every candidate leader for
// how well it exploits that profile, picks one per the difficulty's
// selection policy, and builds its roster with the constructive
// heuristic. When nothing scores above zero it falls back to a uniform
// random leader and says so in the reasons instead of silently taking
// the head of an empty ranking.
func (g *CounterGenerator) Generate(input CounterCrewInput) (*CounterCrewResult, error) {
	if len(input.CandidateLeaders) == 0 {
		return nil, errors.InvalidArgument("at least one candidate leader is required")
	}

	cfg := DifficultyPreset(input.Difficulty)
	player := AnalyzePlayerProfile(input.PlayerLeader, input.PlayerRoster)

	picks := make([]CounterPick, 0, len(input.CandidateLeaders))
	for _, leader := range input.CandidateLeaders {
		pool := input.KeywordPools[leader.ID]
		picks = append(picks, g.scoreCounterLeader(leader, pool, player, cfg))
	}
	sort.SliceStable(picks, func(i, j int) bool { return picks[i].Score > picks[j].Score })

	result := &CounterCrewResult{Profile: player}

	if picks[0].Score <= 0 {
		leader := input.CandidateLeaders[g.rng.Intn(len(input.CandidateLeaders))]
		result.Leader = leader
		result.Fallback = true
		result.Reasons = []string{"no keyword strongly exploits this crew; opponent chosen at random"}
	} else {
		poolSize := cfg.PoolSize
		if poolSize > len(picks) {
			poolSize = len(picks)
		}
		chosen := g.pickFromPool(picks[:poolSize], cfg.Pick)
		result.Leader = chosen.Leader
		result.Score = chosen.Score
		result.Reasons = chosen.Reasons
	}

	result.Roster = g.buildCounterRoster(result.Leader, input.KeywordPools[result.Leader.ID], player, input.Budget)

	return result, nil
}

// pickFromPool applies the difficulty's selection policy to the scored
// pool. Weighted picks decay geometrically by rank so top scorers stay
// favored without being certain.
func (g *CounterGenerator) pickFromPool(pool []CounterPick, strategy PickStrategy) CounterPick {
	switch strategy {
	case PickTop:
		return pool[0]
	case PickWeighted:
		total := 0.0
		weight := 1.0
		weights := make([]float64, len(pool))
		for i := range pool {
			weights[i] = weight
			total += weight
			weight *= weightedPickDecay
		}
		roll := g.rng.Float64() * total
		for i, w := range weights {
			roll -= w
			if roll <= 0 {
				return pool[i]
			}
		}
		return pool[len(pool)-1]
	default:
		return pool[g.rng.Intn(len(pool))]
	}
}

// Inclusion odds for the randomized counter roster shape
const (
	counterTotemChance    = 0.75
	counterHenchmanChance = 0.8
	counterEnforcerChance = 0.65
)

// buildCounterRoster runs the constructive heuristic with an opponent-
// specific shake-up: the spend target floats between 44 and 46, elite
// stations are included probabilistically, and favored roles are derived
// from the player's weaknesses instead of declared objectives.
func (g *CounterGenerator) buildCounterRoster(leader *malifaux.Card, pool []*malifaux.Card, player PlayerProfile, budget int) []malifaux.RosterEntry {
	if budget <= 0 {
		budget = malifaux.DefaultBudget
	}

	filtered := make([]*malifaux.Card, 0, len(pool))
	for _, card := range pool {
		switch card.Station() {
		case malifaux.StationTotem:
			if g.rng.Float64() > counterTotemChance {
				continue
			}
		case malifaux.StationHenchman:
			if g.rng.Float64() > counterHenchmanChance {
				continue
			}
		case malifaux.StationEnforcer:
			if g.rng.Float64() > counterEnforcerChance {
				continue
			}
		}
		filtered = append(filtered, card)
	}

	var favored []string
	if player.SlowCrew {
		favored = append(favored, malifaux.RoleSchemeRunner)
	}
	if player.AvgWillpower > 0 && player.AvgWillpower < player.AvgDefense {
		favored = append(favored, malifaux.RoleControl)
	}
	favored = append(favored, malifaux.RoleBeater)

	// Float the budget so the output is not the same list every time.
	effectiveBudget := budget - g.rng.Intn(3)

	return g.suggester.Suggest(SuggestInput{
		Leader:        leader,
		Budget:        effectiveBudget,
		KeywordPool:   filtered,
		StrategyRoles: favored,
	})
}
