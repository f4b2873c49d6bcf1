package memory

import (
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nutrichat/nutrichat-go/catalog"
	"github.com/nutrichat/nutrichat-go/core"
	"github.com/nutrichat/nutrichat-go/tips"
)

const (
	// DefaultSessionTTL is how long a session stays valid without activity.
	DefaultSessionTTL = 24 * time.Hour

	// DefaultProximityRadiusKm is the radius for the automatic resource
	// refresh on SetLocation.
	DefaultProximityRadiusKm = catalog.DefaultProximityRadiusKm

	// maxRelevantResources caps the goal-filtered resource view.
	maxRelevantResources = 3

	// contextTipCount is how many personalized tips AIContext carries.
	contextTipCount = 2
)

// Bank owns the active session. All operations are safe for concurrent use;
// session read-modify-write cycles run under one lock so an append-then-
// persist can never interleave with another mutation.
type Bank struct {
	mu       sync.Mutex
	store    Store
	catalog  *catalog.Catalog
	session  *Session
	radiusKm float64
	ttl      time.Duration
	now      func() time.Time
	watchers []func()
}

// Option configures the Bank.
type Option func(*Bank)

// WithProximityRadiusKm overrides the automatic-refresh radius.
func WithProximityRadiusKm(km float64) Option {
	return func(b *Bank) {
		if km > 0 {
			b.radiusKm = km
		}
	}
}

// WithSessionTTL overrides the session expiry window.
func WithSessionTTL(ttl time.Duration) Option {
	return func(b *Bank) {
		if ttl > 0 {
			b.ttl = ttl
		}
	}
}

// WithClock overrides the time source. Tests use this to age sessions.
func WithClock(now func() time.Time) Option {
	return func(b *Bank) {
		if now != nil {
			b.now = now
		}
	}
}

// NewBank creates a Bank backed by the given store and resource catalog.
// The store is read once; a corrupt record is logged and replaced with a
// fresh session, never surfaced as an error. A nil store disables
// persistence, a nil catalog disables geocoding and the automatic refresh.
func NewBank(store Store, cat *catalog.Catalog, opts ...Option) *Bank {
	b := &Bank{
		store:    store,
		catalog:  cat,
		radiusKm: DefaultProximityRadiusKm,
		ttl:      DefaultSessionTTL,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}

	if store != nil {
		s, err := store.Load()
		switch {
		case err != nil:
			log.Printf("[MEMORY] Failed to load session, starting fresh: %v", err)
			b.createSessionLocked()
		case s != nil:
			b.session = s
		}
	}
	return b
}

// Watch registers a callback invoked after every committed mutation. This
// replaces display-refresh polling; callbacks run outside the Bank's lock
// and must not block for long.
func (b *Bank) Watch(fn func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.watchers = append(b.watchers, fn)
}

// CreateSession allocates a fresh session, replacing any previous one, and
// persists it immediately. Returns the new session id.
func (b *Bank) CreateSession() string {
	b.mu.Lock()
	id := b.createSessionLocked()
	b.mu.Unlock()
	b.notify()
	return id
}

func (b *Bank) createSessionLocked() string {
	b.session = &Session{
		SessionID:           "session_" + uuid.NewString(),
		NearbyResources:     []core.FoodResource{},
		ConversationHistory: []core.ConversationMessage{},
		LastUpdated:         b.now(),
	}
	b.persistLocked()
	log.Printf("[MEMORY] Created session %s", b.session.SessionID)
	return b.session.SessionID
}

// SetLocation stores the user's location, replacing any previous one. When
// coordinates are absent but a neighborhood or zip string is present, they
// are looked up in the catalog's neighborhood table; a miss still stores the
// location as given. Setting a location with coordinates triggers the
// automatic nearby-resource refresh.
func (b *Bank) SetLocation(loc core.UserLocation) {
	b.mu.Lock()
	b.ensureSessionLocked()

	if loc.Coordinates == nil && b.catalog != nil {
		name := loc.Neighborhood
		if name == "" {
			name = loc.ZipCode
		}
		if name != "" {
			if coords, ok := b.catalog.CoordinatesForLocationName(name); ok {
				loc.Coordinates = &coords
			}
		}
	}

	b.session.Location = &loc
	b.refreshNearbyLocked()
	b.touchAndPersistLocked()
	b.mu.Unlock()
	b.notify()
}

// Location returns the current location, or nil if none is set.
func (b *Bank) Location() *core.UserLocation {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.session == nil || b.session.Location == nil {
		return nil
	}
	loc := *b.session.Location
	if b.session.Location.Coordinates != nil {
		coords := *b.session.Location.Coordinates
		loc.Coordinates = &coords
	}
	return &loc
}

// SetDietaryGoal attaches or replaces the dietary goal. It does not refresh
// the resource snapshot.
func (b *Bank) SetDietaryGoal(goal core.DietaryGoal) {
	b.mu.Lock()
	b.ensureSessionLocked()
	b.session.DietaryGoal = &goal
	b.touchAndPersistLocked()
	b.mu.Unlock()
	b.notify()
}

// DietaryGoal returns the current goal, or nil if none is set.
func (b *Bank) DietaryGoal() *core.DietaryGoal {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.session == nil || b.session.DietaryGoal == nil {
		return nil
	}
	goal := *b.session.DietaryGoal
	return &goal
}

// SetNearbyResources replaces the session's resource snapshot. The map UI
// uses this to push geolocation-derived results that bypass the
// neighborhood lookup.
func (b *Bank) SetNearbyResources(resources []core.FoodResource) {
	b.mu.Lock()
	b.ensureSessionLocked()
	b.session.NearbyResources = append([]core.FoodResource(nil), resources...)
	b.touchAndPersistLocked()
	b.mu.Unlock()
	b.notify()
}

// NearbyResources returns the current snapshot, oldest query order intact.
func (b *Bank) NearbyResources() []core.FoodResource {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.session == nil {
		return nil
	}
	return append([]core.FoodResource(nil), b.session.NearbyResources...)
}

// RelevantResources filters the snapshot by the dietary goal: SNAP-only for
// snap-benefits goals, specialty intersection for cultural contexts, and a
// pantry/SNAP priority ordering for very-low budgets, capped at three
// entries. Without a goal it returns the unfiltered snapshot.
func (b *Bank) RelevantResources() []core.FoodResource {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.relevantResourcesLocked()
}

func (b *Bank) relevantResourcesLocked() []core.FoodResource {
	if b.session == nil {
		return nil
	}
	all := append([]core.FoodResource(nil), b.session.NearbyResources...)

	goal := b.session.DietaryGoal
	if goal == nil {
		return all
	}

	filtered := all
	if goal.Type == core.GoalSnapBenefits {
		filtered = filterResources(filtered, func(r core.FoodResource) bool {
			return r.AcceptsSnap
		})
	}

	if goal.CulturalContext != "" {
		ctx := strings.ToLower(goal.CulturalContext)
		filtered = filterResources(filtered, func(r core.FoodResource) bool {
			for _, tag := range r.CulturalSpecialties {
				lower := strings.ToLower(tag)
				if strings.Contains(lower, ctx) || strings.Contains(ctx, lower) {
					return true
				}
			}
			return false
		})
	}

	if goal.BudgetRange == core.BudgetVeryLow {
		sort.SliceStable(filtered, func(i, j int) bool {
			return budgetPriority(filtered[i]) > budgetPriority(filtered[j])
		})
	}

	if len(filtered) > maxRelevantResources {
		filtered = filtered[:maxRelevantResources]
	}
	return filtered
}

func filterResources(list []core.FoodResource, keep func(core.FoodResource) bool) []core.FoodResource {
	out := list[:0:0]
	for _, r := range list {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// budgetPriority scores resources for very-low-budget users: food pantries
// first, then anything accepting SNAP.
func budgetPriority(r core.FoodResource) int {
	score := 0
	if r.Type == core.ResourceFoodPantry {
		score += 2
	}
	if r.AcceptsSnap {
		score++
	}
	return score
}

// AddMessage appends a timestamped message and trims the history to the
// most recent MaxHistory entries.
func (b *Bank) AddMessage(role core.Role, content string) {
	b.mu.Lock()
	b.ensureSessionLocked()
	b.session.ConversationHistory = append(b.session.ConversationHistory, core.ConversationMessage{
		Role:      role,
		Content:   content,
		Timestamp: b.now(),
	})
	if n := len(b.session.ConversationHistory); n > MaxHistory {
		b.session.ConversationHistory = b.session.ConversationHistory[n-MaxHistory:]
	}
	b.touchAndPersistLocked()
	b.mu.Unlock()
	b.notify()
}

// ConversationHistory returns the message list, oldest first.
func (b *Bank) ConversationHistory() []core.ConversationMessage {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.session == nil {
		return nil
	}
	return append([]core.ConversationMessage(nil), b.session.ConversationHistory...)
}

// State returns the derived booleans plus the conversation stage.
func (b *Bank) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.session.state()
}

// AIContext assembles the one object the prompt layer consumes: location,
// goal, goal-filtered resources, conversation stage, and up to two
// personalized tips. Nothing else should reassemble these pieces.
func (b *Bank) AIContext() core.AIContext {
	b.mu.Lock()
	defer b.mu.Unlock()

	ctx := core.AIContext{
		ConversationStage:  b.session.Stage(),
		AvailableResources: []core.FoodResource{},
		PersonalizedTips:   []core.NutritionTip{},
	}
	if b.session == nil {
		return ctx
	}

	relevant := b.relevantResourcesLocked()
	if relevant == nil {
		relevant = []core.FoodResource{}
	}
	ctx.UserLocation = b.session.Location
	ctx.DietaryGoal = b.session.DietaryGoal
	ctx.AvailableResources = relevant

	if b.session.DietaryGoal != nil {
		types := make([]core.ResourceType, 0, len(relevant))
		for _, r := range relevant {
			types = append(types, r.Type)
		}
		ctx.PersonalizedTips = tips.Personalized(*b.session.DietaryGoal, types, contextTipCount)
		if ctx.PersonalizedTips == nil {
			ctx.PersonalizedTips = []core.NutritionTip{}
		}
	}
	return ctx
}

// IsReady reports whether both location and goal are set, independent of
// whether any resources were found.
func (b *Bank) IsReady() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.session != nil && b.session.Location != nil && b.session.DietaryGoal != nil
}

// Reset discards the in-memory session and the persisted record.
func (b *Bank) Reset() {
	b.mu.Lock()
	b.session = nil
	if b.store != nil {
		if err := b.store.Clear(); err != nil {
			log.Printf("[MEMORY] Failed to clear session store: %v", err)
		}
	}
	b.mu.Unlock()
	b.notify()
}

// IsExpired reports whether no session exists or the last activity is older
// than the TTL.
func (b *Bank) IsExpired() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.isExpiredLocked()
}

func (b *Bank) isExpiredLocked() bool {
	if b.session == nil {
		return true
	}
	return b.now().Sub(b.session.LastUpdated) > b.ttl
}

// RenewIfExpired replaces an expired session with a fresh one and reports
// whether a renewal happened.
func (b *Bank) RenewIfExpired() bool {
	b.mu.Lock()
	if !b.isExpiredLocked() {
		b.mu.Unlock()
		return false
	}
	b.createSessionLocked()
	b.mu.Unlock()
	b.notify()
	return true
}

// Snapshot returns a copy of the active session, or nil if none exists.
func (b *Bank) Snapshot() *Session {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.session.clone()
}

func (b *Bank) ensureSessionLocked() {
	if b.session == nil {
		b.createSessionLocked()
	}
}

// refreshNearbyLocked recomputes the proximity snapshot after a location
// change. Without coordinates the snapshot is left alone; it stays empty
// until coordinates arrive some other way (e.g. browser geolocation).
func (b *Bank) refreshNearbyLocked() {
	if b.catalog == nil || b.session.Location == nil || b.session.Location.Coordinates == nil {
		return
	}
	coords := b.session.Location.Coordinates
	nearby := b.catalog.ByProximity(coords.Lat, coords.Lng, b.radiusKm)
	if nearby == nil {
		nearby = []core.FoodResource{}
	}
	b.session.NearbyResources = nearby
	log.Printf("[MEMORY] Found %d resources within %.1f km", len(nearby), b.radiusKm)
}

func (b *Bank) touchAndPersistLocked() {
	b.session.LastUpdated = b.now()
	b.persistLocked()
}

// persistLocked writes the session through to the store. Failures are
// logged, never returned: persistence is best-effort and the in-memory
// state is already committed.
func (b *Bank) persistLocked() {
	if b.store == nil || b.session == nil {
		return
	}
	if err := b.store.Save(b.session.clone()); err != nil {
		log.Printf("[MEMORY] Failed to save session: %v", err)
	}
}

func (b *Bank) notify() {
	b.mu.Lock()
	watchers := make([]func(), len(b.watchers))
	copy(watchers, b.watchers)
	b.mu.Unlock()
	for _, fn := range watchers {
		fn()
	}
}
