package v1alpha1_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/breachside/crew-api/internal/engine"
	"github.com/breachside/crew-api/internal/entities/malifaux"
	"github.com/breachside/crew-api/internal/errors"
	v1alpha1 "github.com/breachside/crew-api/internal/handlers/api/v1alpha1"
	crewservice "github.com/breachside/crew-api/internal/services/crew"
	crewmock "github.com/breachside/crew-api/internal/services/crew/mock"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	service *crewmock.MockService
	mux     *http.ServeMux
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.service = crewmock.NewMockService(s.ctrl)

	handler, err := v1alpha1.New(&v1alpha1.Config{Service: s.service})
	s.Require().NoError(err)

	s.mux = http.NewServeMux()
	handler.RegisterRoutes(s.mux)
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerTestSuite) TestCreateCrew() {
	s.service.EXPECT().
		CreateCrew(gomock.Any(), &crewservice.CreateCrewInput{
			PlayerID: "player_1",
			LeaderID: "card_seamus",
		}).
		Return(&crewservice.CreateCrewOutput{
			Crew: &malifaux.CrewState{ID: "crew_1", PlayerID: "player_1", Budget: 50},
		}, nil)

	rec := s.do(http.MethodPost, "/v1alpha1/crews", `{"player_id":"player_1","leader_id":"card_seamus"}`)
	s.Equal(http.StatusCreated, rec.Code)

	var crew malifaux.CrewState
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &crew))
	s.Equal("crew_1", crew.ID)
	s.Equal(50, crew.Budget)
}

func (s *HandlerTestSuite) TestCreateCrewBadBody() {
	rec := s.do(http.MethodPost, "/v1alpha1/crews", `{"player_id":`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestCreateCrewValidationError() {
	s.service.EXPECT().
		CreateCrew(gomock.Any(), gomock.Any()).
		Return(nil, errors.InvalidArgument("leaderID is required"))

	rec := s.do(http.MethodPost, "/v1alpha1/crews", `{"player_id":"player_1"}`)
	s.Equal(http.StatusBadRequest, rec.Code)

	var body map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(string(errors.CodeInvalidArgument), body["code"])
}

func (s *HandlerTestSuite) TestGetCrewNotFound() {
	s.service.EXPECT().
		GetCrew(gomock.Any(), &crewservice.GetCrewInput{CrewID: "crew_ghost"}).
		Return(nil, errors.NotFoundf("crew with ID %s not found", "crew_ghost"))

	rec := s.do(http.MethodGet, "/v1alpha1/crews/crew_ghost", "")
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *HandlerTestSuite) TestInternalErrorBodyIsGeneric() {
	s.service.EXPECT().
		GetCrew(gomock.Any(), gomock.Any()).
		Return(nil, errors.Internal("redis exploded at 10.0.0.4"))

	rec := s.do(http.MethodGet, "/v1alpha1/crews/crew_1", "")
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.NotContains(rec.Body.String(), "10.0.0.4")
}

func (s *HandlerTestSuite) TestAddModelHired() {
	s.service.EXPECT().
		AddModel(gomock.Any(), &crewservice.AddModelInput{CrewID: "crew_1", CardID: "card_belle"}).
		Return(&crewservice.AddModelOutput{
			Crew:        &malifaux.CrewState{ID: "crew_1"},
			RosterID:    "hire_1",
			BlockReason: engine.BlockNone,
		}, nil)

	rec := s.do(http.MethodPost, "/v1alpha1/crews/crew_1/models", `{"card_id":"card_belle"}`)
	s.Equal(http.StatusOK, rec.Code)

	var body map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(true, body["hired"])
	s.Equal("hire_1", body["roster_id"])
}

func (s *HandlerTestSuite) TestAddModelBlockedIsOK() {
	s.service.EXPECT().
		AddModel(gomock.Any(), gomock.Any()).
		Return(&crewservice.AddModelOutput{
			Crew:        &malifaux.CrewState{ID: "crew_1"},
			BlockReason: engine.BlockBudget,
		}, nil)

	rec := s.do(http.MethodPost, "/v1alpha1/crews/crew_1/models", `{"card_id":"card_izamu"}`)
	s.Equal(http.StatusOK, rec.Code)

	var body map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(false, body["hired"])
	s.Equal(string(engine.BlockBudget), body["block_reason"])
}

func (s *HandlerTestSuite) TestRemoveModel() {
	s.service.EXPECT().
		RemoveModel(gomock.Any(), &crewservice.RemoveModelInput{CrewID: "crew_1", RosterID: "hire_1"}).
		Return(&crewservice.RemoveModelOutput{Crew: &malifaux.CrewState{ID: "crew_1"}}, nil)

	rec := s.do(http.MethodDelete, "/v1alpha1/crews/crew_1/models/hire_1", "")
	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestDeleteCrew() {
	s.service.EXPECT().
		DeleteCrew(gomock.Any(), &crewservice.DeleteCrewInput{CrewID: "crew_1"}).
		Return(&crewservice.DeleteCrewOutput{}, nil)

	rec := s.do(http.MethodDelete, "/v1alpha1/crews/crew_1", "")
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *HandlerTestSuite) TestListCrews() {
	s.service.EXPECT().
		ListCrews(gomock.Any(), &crewservice.ListCrewsInput{PlayerID: "player_1"}).
		Return(&crewservice.ListCrewsOutput{
			Snapshots: []*malifaux.CrewSnapshot{{ID: "crew_1", PlayerID: "player_1"}},
		}, nil)

	rec := s.do(http.MethodGet, "/v1alpha1/players/player_1/crews", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"crew_1"`)
}

func (s *HandlerTestSuite) TestGetCrewMath() {
	s.service.EXPECT().
		GetCrewMath(gomock.Any(), &crewservice.GetCrewMathInput{CrewID: "crew_1"}).
		Return(&crewservice.GetCrewMathOutput{
			Math:      engine.CrewMath{BaseCost: 19, OOKTax: 1, TotalCost: 20, OOKCount: 1, OOKLimit: 2},
			Remaining: 30,
		}, nil)

	rec := s.do(http.MethodGet, "/v1alpha1/crews/crew_1/math", "")
	s.Equal(http.StatusOK, rec.Code)

	var body struct {
		Math      engine.CrewMath `json:"math"`
		Remaining int             `json:"remaining"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(20, body.Math.TotalCost)
	s.Equal(30, body.Remaining)
}

func (s *HandlerTestSuite) TestGenerateCounterCrewDefaultsDifficulty() {
	s.service.EXPECT().
		GenerateCounterCrew(gomock.Any(), &crewservice.GenerateCounterCrewInput{CrewID: "crew_1"}).
		Return(&crewservice.GenerateCounterCrewOutput{
			Result: &engine.CounterCrewResult{Score: 12.5},
		}, nil)

	// No body at all; difficulty falls through to the preset default
	rec := s.do(http.MethodPost, "/v1alpha1/crews/crew_1/counter", "")
	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestLoadCrew() {
	s.service.EXPECT().
		LoadCrew(gomock.Any(), &crewservice.LoadCrewInput{SnapshotID: "crew_1"}).
		Return(&crewservice.LoadCrewOutput{
			Crew:           &malifaux.CrewState{ID: "crew_1"},
			DroppedCardIDs: []string{"card_retired"},
		}, nil)

	rec := s.do(http.MethodPost, "/v1alpha1/crews/load", `{"snapshot_id":"crew_1"}`)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "card_retired")
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
