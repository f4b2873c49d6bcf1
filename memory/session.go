package memory

import (
	"time"

	"github.com/nutrichat/nutrichat-go/core"
)

// MaxHistory bounds the conversation history kept at rest; older messages
// are dropped first.
const MaxHistory = 20

// Session is the persisted per-user record. All fields round-trip through
// JSON; timestamps serialize as RFC3339 strings and must come back as
// time.Time values (the Store implementations are responsible for that).
type Session struct {
	SessionID           string                     `json:"sessionId"`
	Location            *core.UserLocation         `json:"location,omitempty"`
	DietaryGoal         *core.DietaryGoal          `json:"dietaryGoal,omitempty"`
	NearbyResources     []core.FoodResource        `json:"nearbyResources"`
	ConversationHistory []core.ConversationMessage `json:"conversationHistory"`
	LastUpdated         time.Time                  `json:"lastUpdated"`
}

// Stage derives the conversation stage from field presence. It is computed
// on every call; there is no stored stage to fall out of sync.
func (s *Session) Stage() core.ConversationStage {
	if s == nil || s.Location == nil {
		return core.StageLocationGathering
	}
	if s.DietaryGoal == nil {
		return core.StageGoalSetting
	}
	if len(s.NearbyResources) == 0 {
		return core.StageResourceSharing
	}
	return core.StageAdviceGiving
}

// State is the set of derived booleans the UI polls. It is always computed
// from the session, never cached.
type State struct {
	SessionID        string                 `json:"sessionId,omitempty"`
	IsLocationSet    bool                   `json:"isLocationSet"`
	IsDietaryGoalSet bool                   `json:"isDietaryGoalSet"`
	ResourcesLoaded  bool                   `json:"resourcesLoaded"`
	Stage            core.ConversationStage `json:"conversationStage"`
}

func (s *Session) state() State {
	st := State{Stage: s.Stage()}
	if s == nil {
		return st
	}
	st.SessionID = s.SessionID
	st.IsLocationSet = s.Location != nil
	st.IsDietaryGoalSet = s.DietaryGoal != nil
	st.ResourcesLoaded = len(s.NearbyResources) > 0
	return st
}

// clone returns a deep-enough copy for handing out: slices are copied so
// callers cannot mutate the Bank's session through the result.
func (s *Session) clone() *Session {
	if s == nil {
		return nil
	}
	out := *s
	if s.Location != nil {
		loc := *s.Location
		if s.Location.Coordinates != nil {
			coords := *s.Location.Coordinates
			loc.Coordinates = &coords
		}
		out.Location = &loc
	}
	if s.DietaryGoal != nil {
		goal := *s.DietaryGoal
		out.DietaryGoal = &goal
	}
	out.NearbyResources = append([]core.FoodResource(nil), s.NearbyResources...)
	out.ConversationHistory = append([]core.ConversationMessage(nil), s.ConversationHistory...)
	return &out
}
