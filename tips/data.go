package tips

import "github.com/nutrichat/nutrichat-go/core"

// nutritionTips is the static tip dataset. Declaration order is preserved by
// every filter and by the personalization ordering rules.
var nutritionTips = []core.NutritionTip{
	{
		ID:          "budget-bulk-cooking",
		Title:       "Bulk Cooking for Budget-Friendly Meals",
		Content:     "Cook large batches of rice, beans, and lentils on weekends. These can be stored in the fridge for 3-4 days and form the base of many cultural dishes. Add seasonal vegetables from farmers markets for variety.",
		TargetGoal:  core.GoalBudgetFriendly,
		BudgetLevel: core.BudgetVeryLow,
		ResourceTypes: []core.ResourceType{
			core.ResourceFarmersMarket, core.ResourceGroceryStore,
		},
	},
	{
		ID:          "snap-farmers-market",
		Title:       "Maximize SNAP Benefits at Farmers Markets",
		Content:     "Many NYC farmers markets double your SNAP dollars - spend $10, get $20 worth of fresh produce. Union Square and Sunset Park Greenmarket both offer this program.",
		TargetGoal:  core.GoalSnapBenefits,
		BudgetLevel: core.BudgetVeryLow,
		ResourceTypes: []core.ResourceType{
			core.ResourceFarmersMarket,
		},
	},
	{
		ID:              "chinese-affordable-nutrition",
		Title:           "Nutritious Chinese Cooking on a Budget",
		Content:         "Use tofu, seasonal Asian greens (bok choy, gai lan), and brown rice as staples. Buy in bulk from Chinatown markets. One block of tofu can make 2-3 family meals when combined with vegetables.",
		TargetGoal:      core.GoalCulturalPreference,
		CulturalContext: []string{"Chinese", "Asian"},
		BudgetLevel:     core.BudgetLow,
		ResourceTypes: []core.ResourceType{
			core.ResourceCulturalStore,
		},
	},
	{
		ID:              "latino-beans-rice",
		Title:           "Traditional Latino Nutrition Powerhouse",
		Content:         "Rice and beans provide complete protein when eaten together. Add sofrito (made from bell peppers, onions, garlic) for flavor and vitamins. Plantains are nutrient-dense and affordable.",
		TargetGoal:      core.GoalCulturalPreference,
		CulturalContext: []string{"Latino", "Caribbean", "Dominican", "Puerto Rican"},
		BudgetLevel:     core.BudgetLow,
		ResourceTypes: []core.ResourceType{
			core.ResourceCulturalStore, core.ResourceGroceryStore,
		},
	},
	{
		ID:              "halal-protein-budget",
		Title:           "Affordable Halal Protein Sources",
		Content:         "Chicken thighs and ground meat are more budget-friendly than breast meat. Eggs and lentils provide excellent protein. Buy spices in bulk from Middle Eastern stores to make flavorful meals.",
		TargetGoal:      core.GoalCulturalPreference,
		CulturalContext: []string{"Muslim", "Middle Eastern", "South Asian"},
		BudgetLevel:     core.BudgetLow,
		ResourceTypes: []core.ResourceType{
			core.ResourceCulturalStore,
		},
	},
	{
		ID:          "seasonal-produce-savings",
		Title:       "Eat Seasonally for Health and Savings",
		Content:     "Spring: leafy greens, asparagus. Summer: tomatoes, zucchini, berries. Fall: squash, apples, root vegetables. Winter: citrus, cabbage, stored grains. Seasonal produce is cheaper and more nutritious.",
		TargetGoal:  core.GoalBudgetFriendly,
		BudgetLevel: core.BudgetModerate,
		ResourceTypes: []core.ResourceType{
			core.ResourceFarmersMarket,
		},
	},
	{
		ID:          "food-pantry-meal-planning",
		Title:       "Creating Balanced Meals from Food Pantry Items",
		Content:     "Combine canned beans with fresh vegetables from the pantry. Use whole grain breads and cereals as base. Add a small amount of protein (canned fish, peanut butter) to each meal.",
		TargetGoal:  core.GoalSnapBenefits,
		BudgetLevel: core.BudgetVeryLow,
		ResourceTypes: []core.ResourceType{
			core.ResourceFoodPantry,
		},
	},
	{
		ID:              "diabetes-cultural-foods",
		Title:           "Managing Diabetes with Traditional Foods",
		Content:         "Choose brown rice over white, add fiber with beans and vegetables. Portion control is key - use smaller plates. Traditional spices like cinnamon and turmeric may help blood sugar.",
		TargetGoal:      core.GoalHealthFocused,
		CulturalContext: []string{"Latino", "South Asian", "African American"},
		ResourceTypes: []core.ResourceType{
			core.ResourceGroceryStore, core.ResourceCulturalStore,
		},
	},
	{
		ID:         "community-kitchen-nutrition",
		Title:      "Making the Most of Community Meals",
		Content:    "Fill half your plate with vegetables when available. Ask about ingredient lists if you have allergies. Many community kitchens offer nutrition education - take advantage of these programs.",
		TargetGoal: core.GoalSnapBenefits,
		ResourceTypes: []core.ResourceType{
			core.ResourceCommunityKitchen,
		},
	},
	{
		ID:          "kids-lunch-prep",
		Title:       "Healthy School Lunch Prep on a Budget",
		Content:     "Use whole grain bread, add protein (peanut butter, leftover chicken), include a fruit and vegetable. Prep multiple lunches on Sunday using bulk ingredients.",
		TargetGoal:  core.GoalBudgetFriendly,
		BudgetLevel: core.BudgetLow,
		ResourceTypes: []core.ResourceType{
			core.ResourceGroceryStore,
		},
	},
}
