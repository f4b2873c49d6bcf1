// Package dashboard serves the city-officials overview: community metrics,
// per-resource utilization, and intervention recommendations. The figures
// are a static snapshot; live aggregation is a separate data pipeline.
package dashboard

// Trend indicates the direction a metric is moving.
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// Priority ranks an intervention recommendation.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// CommunityMetric is one headline figure on the overview tab.
type CommunityMetric struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Value       string `json:"value"`
	Change      string `json:"change"`
	Trend       Trend  `json:"trend"`
	Description string `json:"description"`
}

// ResourceReport is utilization detail for one tracked resource.
type ResourceReport struct {
	Name               string   `json:"name"`
	Type               string   `json:"type"`
	Utilization        int      `json:"utilization"`
	SnapUsers          int      `json:"snapUsers"`
	CulturalPreference []string `json:"culturalPreference"`
	NeedsImprovement   []string `json:"needsImprovement"`
}

// Intervention is a recommended city action with expected impact and cost.
type Intervention struct {
	Priority       Priority `json:"priority"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	ExpectedImpact string   `json:"expectedImpact"`
	Timeline       string   `json:"timeline"`
	Budget         string   `json:"budget"`
}

// Report is the full dashboard payload.
type Report struct {
	Metrics       []CommunityMetric `json:"metrics"`
	Resources     []ResourceReport  `json:"resources"`
	Interventions []Intervention    `json:"interventions"`
}

// Current returns the dashboard snapshot. Slices are fresh copies so
// callers can't mutate the canonical data.
func Current() Report {
	return Report{
		Metrics:       append([]CommunityMetric(nil), communityMetrics...),
		Resources:     append([]ResourceReport(nil), resourceReports...),
		Interventions: append([]Intervention(nil), interventions...),
	}
}

var communityMetrics = []CommunityMetric{
	{
		ID:          "users",
		Label:       "Active Users",
		Value:       "2,847",
		Change:      "+12%",
		Trend:       TrendUp,
		Description: "Citizens using nutrition services",
	},
	{
		ID:          "snap",
		Label:       "SNAP/EBT Users",
		Value:       "68%",
		Change:      "+5%",
		Trend:       TrendUp,
		Description: "Users utilizing food assistance",
	},
	{
		ID:          "cultural",
		Label:       "Cultural Diversity",
		Value:       "23 cuisines",
		Change:      "+3",
		Trend:       TrendUp,
		Description: "Different cultural food preferences served",
	},
	{
		ID:          "resources",
		Label:       "Resource Utilization",
		Value:       "73%",
		Change:      "-2%",
		Trend:       TrendDown,
		Description: "Average utilization of food resources",
	},
}

var resourceReports = []ResourceReport{
	{
		Name:               "Union Square Greenmarket",
		Type:               "farmers-market",
		Utilization:        85,
		SnapUsers:          245,
		CulturalPreference: []string{"Fresh produce", "Organic options"},
		NeedsImprovement:   []string{"Weekend hours", "Language support"},
	},
	{
		Name:               "Food Bank for NYC - Harlem",
		Type:               "food-pantry",
		Utilization:        92,
		SnapUsers:          156,
		CulturalPreference: []string{"Culturally diverse foods", "Halal options"},
		NeedsImprovement:   []string{"Wait times", "Transportation access"},
	},
	{
		Name:               "Essex Street Market",
		Type:               "cultural-store",
		Utilization:        67,
		SnapUsers:          89,
		CulturalPreference: []string{"Latino ingredients", "Asian specialties"},
		NeedsImprovement:   []string{"SNAP awareness", "Price competitiveness"},
	},
}

var interventions = []Intervention{
	{
		Priority:       PriorityHigh,
		Title:          "Expand Weekend Farmers Market Hours",
		Description:    "Extend Saturday hours at Union Square Greenmarket to accommodate working families",
		ExpectedImpact: "25% increase in utilization",
		Timeline:       "2-3 months",
		Budget:         "$15,000/year",
	},
	{
		Priority:       PriorityHigh,
		Title:          "Multilingual Nutrition Education Program",
		Description:    "Launch nutrition education in Spanish, Chinese, and Arabic at top 5 food pantries",
		ExpectedImpact: "40% improvement in nutrition knowledge",
		Timeline:       "1-2 months",
		Budget:         "$35,000/year",
	},
	{
		Priority:       PriorityMedium,
		Title:          "SNAP Education at Cultural Stores",
		Description:    "Partner with ethnic grocery stores to educate about SNAP acceptance and benefits",
		ExpectedImpact: "30% increase in SNAP usage at cultural stores",
		Timeline:       "3-4 months",
		Budget:         "$8,000",
	},
}
