// Package tips exposes the static nutrition tip catalog and the
// personalization rules that match tips to a user's goal and nearby
// resource mix.
package tips

import (
	"strings"

	"github.com/nutrichat/nutrichat-go/core"
)

// DefaultPersonalizedMax caps how many tips Personalized returns when the
// caller passes max <= 0.
const DefaultPersonalizedMax = 3

// All returns every tip in catalog order.
func All() []core.NutritionTip {
	out := make([]core.NutritionTip, len(nutritionTips))
	copy(out, nutritionTips)
	return out
}

// ByGoal returns tips targeting the given goal type, in catalog order.
func ByGoal(goal core.GoalType) []core.NutritionTip {
	var out []core.NutritionTip
	for _, tip := range nutritionTips {
		if tip.TargetGoal == goal {
			out = append(out, tip)
		}
	}
	return out
}

// ByCulture returns tips whose cultural context contains the given substring,
// case-insensitively.
func ByCulture(culturalContext string) []core.NutritionTip {
	needle := strings.ToLower(culturalContext)
	var out []core.NutritionTip
	for _, tip := range nutritionTips {
		for _, ctx := range tip.CulturalContext {
			if strings.Contains(strings.ToLower(ctx), needle) {
				out = append(out, tip)
				break
			}
		}
	}
	return out
}

// ByBudget returns tips tagged with the given budget level.
func ByBudget(level core.BudgetLevel) []core.NutritionTip {
	var out []core.NutritionTip
	for _, tip := range nutritionTips {
		if tip.BudgetLevel == level {
			out = append(out, tip)
		}
	}
	return out
}

// ByResourceType returns tips applicable to the given resource type.
func ByResourceType(t core.ResourceType) []core.NutritionTip {
	var out []core.NutritionTip
	for _, tip := range nutritionTips {
		for _, rt := range tip.ResourceTypes {
			if rt == t {
				out = append(out, tip)
				break
			}
		}
	}
	return out
}

// Personalized selects up to max tips for the given goal and the resource
// types actually available to the user.
//
// Composition rules: tips matching the goal type come first; tips matching
// the goal's cultural context are unioned in after them. Tips whose budget
// level is set and differs from the goal's budget range are dropped, as are
// tips requiring a resource type not in availableTypes (tips with no
// resource requirement always pass). Duplicates keep their first occurrence.
func Personalized(goal core.DietaryGoal, availableTypes []core.ResourceType, max int) []core.NutritionTip {
	if max <= 0 {
		max = DefaultPersonalizedMax
	}

	relevant := ByGoal(goal.Type)

	if goal.CulturalContext != "" {
		if cultural := ByCulture(goal.CulturalContext); len(cultural) > 0 {
			relevant = append(relevant, cultural...)
		}
	}

	if goal.BudgetRange != "" {
		filtered := relevant[:0:0]
		for _, tip := range relevant {
			if tip.BudgetLevel == "" || tip.BudgetLevel == goal.BudgetRange {
				filtered = append(filtered, tip)
			}
		}
		relevant = filtered
	}

	available := make(map[core.ResourceType]bool, len(availableTypes))
	for _, t := range availableTypes {
		available[t] = true
	}

	var out []core.NutritionTip
	seen := make(map[string]bool)
	for _, tip := range relevant {
		if seen[tip.ID] {
			continue
		}
		if len(tip.ResourceTypes) > 0 && !anyAvailable(tip.ResourceTypes, available) {
			continue
		}
		seen[tip.ID] = true
		out = append(out, tip)
		if len(out) == max {
			break
		}
	}
	return out
}

func anyAvailable(required []core.ResourceType, available map[core.ResourceType]bool) bool {
	for _, t := range required {
		if available[t] {
			return true
		}
	}
	return false
}
