package tips_test

import (
	"testing"

	"github.com/nutrichat/nutrichat-go/core"
	"github.com/nutrichat/nutrichat-go/tips"
)

func TestByGoal(t *testing.T) {
	budget := tips.ByGoal(core.GoalBudgetFriendly)
	if len(budget) != 3 {
		t.Fatalf("Expected 3 budget-friendly tips, got %d", len(budget))
	}
	// Catalog order preserved.
	if budget[0].ID != "budget-bulk-cooking" {
		t.Errorf("Unexpected first tip: %s", budget[0].ID)
	}
}

func TestByCulture(t *testing.T) {
	latino := tips.ByCulture("latino")
	if len(latino) != 2 {
		t.Fatalf("Expected 2 Latino tips, got %d", len(latino))
	}

	if got := tips.ByCulture("Martian"); len(got) != 0 {
		t.Errorf("Expected no tips, got %d", len(got))
	}
}

func TestByBudget(t *testing.T) {
	for _, tip := range tips.ByBudget(core.BudgetVeryLow) {
		if tip.BudgetLevel != core.BudgetVeryLow {
			t.Errorf("Tip %s has budget %s", tip.ID, tip.BudgetLevel)
		}
	}
}

func TestByResourceType(t *testing.T) {
	pantry := tips.ByResourceType(core.ResourceFoodPantry)
	if len(pantry) != 1 || pantry[0].ID != "food-pantry-meal-planning" {
		t.Fatalf("Unexpected pantry tips: %v", pantry)
	}
}

func TestPersonalizedGoalMatch(t *testing.T) {
	goal := core.DietaryGoal{Type: core.GoalSnapBenefits}
	got := tips.Personalized(goal, []core.ResourceType{core.ResourceFarmersMarket}, 3)

	if len(got) != 1 || got[0].ID != "snap-farmers-market" {
		t.Fatalf("Expected only the farmers-market SNAP tip, got %v", ids(got))
	}
}

func TestPersonalizedCulturalUnion(t *testing.T) {
	goal := core.DietaryGoal{
		Type:            core.GoalBudgetFriendly,
		CulturalContext: "Chinese",
	}
	available := []core.ResourceType{
		core.ResourceFarmersMarket, core.ResourceGroceryStore, core.ResourceCulturalStore,
	}
	got := tips.Personalized(goal, available, 5)

	// Goal-matched tips first, then the culturally matched one.
	want := []string{"budget-bulk-cooking", "seasonal-produce-savings", "kids-lunch-prep", "chinese-affordable-nutrition"}
	if len(got) != len(want) {
		t.Fatalf("Expected %d tips, got %v", len(want), ids(got))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("Position %d: got %s, want %s", i, got[i].ID, id)
		}
	}
}

func TestPersonalizedBudgetFilter(t *testing.T) {
	goal := core.DietaryGoal{
		Type:        core.GoalBudgetFriendly,
		BudgetRange: core.BudgetVeryLow,
	}
	available := []core.ResourceType{core.ResourceFarmersMarket, core.ResourceGroceryStore}
	got := tips.Personalized(goal, available, 3)

	// seasonal-produce-savings (moderate) and kids-lunch-prep (low) drop out.
	if len(got) != 1 || got[0].ID != "budget-bulk-cooking" {
		t.Fatalf("Expected only budget-bulk-cooking, got %v", ids(got))
	}
}

func TestPersonalizedResourceTypeFilter(t *testing.T) {
	goal := core.DietaryGoal{Type: core.GoalSnapBenefits}

	// No farmers market nearby: the doubling tip must not appear, but the
	// community-kitchen tip (requirement met) and nothing else survives.
	got := tips.Personalized(goal, []core.ResourceType{core.ResourceCommunityKitchen}, 3)
	if len(got) != 1 || got[0].ID != "community-kitchen-nutrition" {
		t.Fatalf("Expected only community-kitchen-nutrition, got %v", ids(got))
	}
}

func TestPersonalizedDedupAndCap(t *testing.T) {
	// Cultural-preference goal with a Latino context: latino-beans-rice
	// matches both the goal and the culture, and must appear once.
	goal := core.DietaryGoal{
		Type:            core.GoalCulturalPreference,
		CulturalContext: "Latino",
	}
	available := []core.ResourceType{core.ResourceCulturalStore, core.ResourceGroceryStore}
	got := tips.Personalized(goal, available, 10)

	counts := make(map[string]int)
	for _, tip := range got {
		counts[tip.ID]++
	}
	if counts["latino-beans-rice"] != 1 {
		t.Errorf("latino-beans-rice appeared %d times", counts["latino-beans-rice"])
	}

	capped := tips.Personalized(goal, available, 2)
	if len(capped) > 2 {
		t.Errorf("Expected at most 2 tips, got %d", len(capped))
	}
}

func ids(list []core.NutritionTip) []string {
	out := make([]string, len(list))
	for i, tip := range list {
		out[i] = tip.ID
	}
	return out
}
