package core

import "time"

// Coordinates is a latitude/longitude pair in decimal degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// UserLocation describes where the user is. Any combination of fields may be
// present; Coordinates may be filled in later from a neighborhood lookup.
type UserLocation struct {
	ZipCode      string       `json:"zipCode,omitempty"`
	Neighborhood string       `json:"neighborhood,omitempty"`
	Borough      string       `json:"borough,omitempty"`
	Coordinates  *Coordinates `json:"coordinates,omitempty"`
}

// GoalType identifies what kind of dietary goal the user has.
type GoalType string

const (
	GoalBudgetFriendly     GoalType = "budget-friendly"
	GoalCulturalPreference GoalType = "cultural-preference"
	GoalHealthFocused      GoalType = "health-focused"
	GoalSnapBenefits       GoalType = "snap-benefits"
	GoalOther              GoalType = "other"
)

// BudgetLevel is a coarse budget bracket.
type BudgetLevel string

const (
	BudgetVeryLow  BudgetLevel = "very-low"
	BudgetLow      BudgetLevel = "low"
	BudgetModerate BudgetLevel = "moderate"
)

// DietaryGoal captures what the user wants help with.
type DietaryGoal struct {
	Type            GoalType    `json:"type"`
	Description     string      `json:"description"`
	CulturalContext string      `json:"culturalContext,omitempty"`
	BudgetRange     BudgetLevel `json:"budgetRange,omitempty"`
	FamilySize      int         `json:"familySize,omitempty"`
}

// ResourceType identifies the kind of food resource.
type ResourceType string

const (
	ResourceFarmersMarket    ResourceType = "farmers-market"
	ResourceGroceryStore     ResourceType = "grocery-store"
	ResourceFoodPantry       ResourceType = "food-pantry"
	ResourceCommunityKitchen ResourceType = "community-kitchen"
	ResourceCulturalStore    ResourceType = "cultural-store"
)

// ResourceLocation is a street address plus coordinates.
type ResourceLocation struct {
	Address     string      `json:"address"`
	Coordinates Coordinates `json:"coordinates"`
}

// FoodResource is one entry in the static resource catalog. DistanceKm is
// zero in the catalog itself and only populated on proximity query results.
type FoodResource struct {
	ID                  string           `json:"id"`
	Name                string           `json:"name"`
	Type                ResourceType     `json:"type"`
	Location            ResourceLocation `json:"location"`
	AcceptsSnap         bool             `json:"acceptsSnap"`
	CulturalSpecialties []string         `json:"culturalSpecialties,omitempty"`
	Hours               string           `json:"hours,omitempty"`
	Description         string           `json:"description,omitempty"`
	DistanceKm          float64          `json:"distanceKm,omitempty"`
}

// NutritionTip is one entry in the static tip catalog.
type NutritionTip struct {
	ID              string         `json:"id"`
	Title           string         `json:"title"`
	Content         string         `json:"content"`
	TargetGoal      GoalType       `json:"targetGoal"`
	CulturalContext []string       `json:"culturalContext,omitempty"`
	BudgetLevel     BudgetLevel    `json:"budgetLevel,omitempty"`
	ResourceTypes   []ResourceType `json:"resourceTypes,omitempty"`
}

// Role tags a conversation message as coming from the user or the assistant.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ConversationMessage is one entry in the session's chat history.
type ConversationMessage struct {
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// ConversationStage indicates which piece of context the assistant still
// needs from the user. It is always derived from session state, never stored.
type ConversationStage string

const (
	StageLocationGathering ConversationStage = "location-gathering"
	StageGoalSetting       ConversationStage = "goal-setting"
	StageResourceSharing   ConversationStage = "resource-sharing"
	StageAdviceGiving      ConversationStage = "advice-giving"
)

// AIContext is the single object the chat prompt layer consumes. It must not
// be reassembled piecemeal anywhere else.
type AIContext struct {
	UserLocation       *UserLocation     `json:"userLocation,omitempty"`
	DietaryGoal        *DietaryGoal      `json:"dietaryGoal,omitempty"`
	AvailableResources []FoodResource    `json:"availableResources"`
	ConversationStage  ConversationStage `json:"conversationStage"`
	PersonalizedTips   []NutritionTip    `json:"personalizedTips"`
}
