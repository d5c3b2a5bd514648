package v1alpha1

import (
	"net/http"

	"github.com/breachside/crew-api/internal/engine"
	crewservice "github.com/breachside/crew-api/internal/services/crew"
)

type createCrewRequest struct {
	PlayerID string `json:"player_id"`
	LeaderID string `json:"leader_id"`
	Budget   int    `json:"budget,omitempty"`
}

func (h *Handler) createCrew(w http.ResponseWriter, r *http.Request) {
	var req createCrewRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	output, err := h.service.CreateCrew(r.Context(), &crewservice.CreateCrewInput{
		PlayerID: req.PlayerID,
		LeaderID: req.LeaderID,
		Budget:   req.Budget,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, output.Crew)
}

func (h *Handler) getCrew(w http.ResponseWriter, r *http.Request) {
	output, err := h.service.GetCrew(r.Context(), &crewservice.GetCrewInput{CrewID: r.PathValue("id")})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, output.Crew)
}

func (h *Handler) deleteCrew(w http.ResponseWriter, r *http.Request) {
	_, err := h.service.DeleteCrew(r.Context(), &crewservice.DeleteCrewInput{CrewID: r.PathValue("id")})
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listCrews(w http.ResponseWriter, r *http.Request) {
	output, err := h.service.ListCrews(r.Context(), &crewservice.ListCrewsInput{PlayerID: r.PathValue("playerID")})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"snapshots": output.Snapshots})
}

type addModelRequest struct {
	CardID string `json:"card_id"`
}

func (h *Handler) addModel(w http.ResponseWriter, r *http.Request) {
	var req addModelRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	output, err := h.service.AddModel(r.Context(), &crewservice.AddModelInput{
		CrewID: r.PathValue("id"),
		CardID: req.CardID,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	// A blocked hire is a successful request with an explanation, not an
	// HTTP error
	if output.BlockReason != engine.BlockNone {
		writeJSON(w, http.StatusOK, map[string]any{
			"hired":        false,
			"block_reason": output.BlockReason,
			"crew":         output.Crew,
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"hired":     true,
		"roster_id": output.RosterID,
		"crew":      output.Crew,
	})
}

func (h *Handler) removeModel(w http.ResponseWriter, r *http.Request) {
	output, err := h.service.RemoveModel(r.Context(), &crewservice.RemoveModelInput{
		CrewID:   r.PathValue("id"),
		RosterID: r.PathValue("rosterID"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, output.Crew)
}

func (h *Handler) clearRoster(w http.ResponseWriter, r *http.Request) {
	output, err := h.service.ClearRoster(r.Context(), &crewservice.ClearRosterInput{CrewID: r.PathValue("id")})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, output.Crew)
}

type setStrategyRequest struct {
	StrategyID string `json:"strategy_id"`
}

func (h *Handler) setStrategy(w http.ResponseWriter, r *http.Request) {
	var req setStrategyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	output, err := h.service.SetStrategy(r.Context(), &crewservice.SetStrategyInput{
		CrewID:     r.PathValue("id"),
		StrategyID: req.StrategyID,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, output.Crew)
}

type schemeIDsRequest struct {
	SchemeIDs []string `json:"scheme_ids"`
}

func (h *Handler) setSchemePool(w http.ResponseWriter, r *http.Request) {
	var req schemeIDsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	output, err := h.service.SetSchemePool(r.Context(), &crewservice.SetSchemePoolInput{
		CrewID:    r.PathValue("id"),
		SchemeIDs: req.SchemeIDs,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, output.Crew)
}

func (h *Handler) chooseSchemes(w http.ResponseWriter, r *http.Request) {
	var req schemeIDsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	output, err := h.service.ChooseSchemes(r.Context(), &crewservice.ChooseSchemesInput{
		CrewID:    r.PathValue("id"),
		SchemeIDs: req.SchemeIDs,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, output.Crew)
}

func (h *Handler) getCrewMath(w http.ResponseWriter, r *http.Request) {
	output, err := h.service.GetCrewMath(r.Context(), &crewservice.GetCrewMathInput{CrewID: r.PathValue("id")})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"math":      output.Math,
		"remaining": output.Remaining,
	})
}

func (h *Handler) analyzeSynergies(w http.ResponseWriter, r *http.Request) {
	output, err := h.service.AnalyzeSynergies(r.Context(), &crewservice.AnalyzeSynergiesInput{CrewID: r.PathValue("id")})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, output.Report)
}

func (h *Handler) analyzeGaps(w http.ResponseWriter, r *http.Request) {
	output, err := h.service.AnalyzeGaps(r.Context(), &crewservice.AnalyzeGapsInput{CrewID: r.PathValue("id")})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"report":          output.Report,
		"recommendations": output.Recommendations,
	})
}

func (h *Handler) recommendSchemePaths(w http.ResponseWriter, r *http.Request) {
	output, err := h.service.RecommendSchemePaths(r.Context(), &crewservice.RecommendSchemePathsInput{CrewID: r.PathValue("id")})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"paths": output.Paths})
}

func (h *Handler) suggestCrew(w http.ResponseWriter, r *http.Request) {
	output, err := h.service.SuggestCrew(r.Context(), &crewservice.SuggestCrewInput{CrewID: r.PathValue("id")})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, output.Crew)
}

type counterCrewRequest struct {
	Difficulty string `json:"difficulty,omitempty"`
}

func (h *Handler) generateCounterCrew(w http.ResponseWriter, r *http.Request) {
	var req counterCrewRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	output, err := h.service.GenerateCounterCrew(r.Context(), &crewservice.GenerateCounterCrewInput{
		CrewID:     r.PathValue("id"),
		Difficulty: engine.Difficulty(req.Difficulty),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, output.Result)
}

func (h *Handler) saveCrew(w http.ResponseWriter, r *http.Request) {
	output, err := h.service.SaveCrew(r.Context(), &crewservice.SaveCrewInput{CrewID: r.PathValue("id")})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, output.Snapshot)
}

type loadCrewRequest struct {
	SnapshotID string `json:"snapshot_id"`
}

func (h *Handler) loadCrew(w http.ResponseWriter, r *http.Request) {
	var req loadCrewRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	output, err := h.service.LoadCrew(r.Context(), &crewservice.LoadCrewInput{SnapshotID: req.SnapshotID})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"crew":             output.Crew,
		"dropped_card_ids": output.DroppedCardIDs,
	})
}
