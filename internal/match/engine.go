// Larder - Pantry-Aware Recipe Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package match

import (
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/larder/internal/catalog"
	"github.com/tomtom215/larder/internal/metrics"
	"github.com/tomtom215/larder/internal/models"
	"github.com/tomtom215/larder/internal/substitution"
)

// optionalWaiverScore is the substitution-average contribution of an
// optional ingredient that had to be waived. A waiver is a visible
// degradation but milder than most real substitutions.
const optionalWaiverScore = 0.8

// Config tunes the engine.
type Config struct {
	// Workers is the rank fan-out width. Zero or one evaluates
	// sequentially; negative uses GOMAXPROCS.
	Workers int

	// DefaultLimit caps rank partitions when a request does not set its
	// own limit. Zero means unlimited.
	DefaultLimit int
}

// Engine evaluates recipes against inventories. It holds only immutable
// state (catalog snapshot, resolver, config) and is safe for concurrent
// use.
type Engine struct {
	snapshot *catalog.Snapshot
	resolver *substitution.Resolver
	cfg      Config
	logger   zerolog.Logger
}

// NewEngine creates an engine over a catalog snapshot and a resolver.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(snap *catalog.Snapshot, resolver *substitution.Resolver, cfg Config, logger zerolog.Logger) *Engine {
	return &Engine{
		snapshot: snap,
		resolver: resolver,
		cfg:      cfg,
		logger:   logger.With().Str("component", "match").Logger(),
	}
}

// Snapshot returns the catalog snapshot the engine evaluates against.
func (e *Engine) Snapshot() *catalog.Snapshot {
	return e.snapshot
}

// EvaluateByID evaluates a single recipe looked up from the catalog.
// Returns catalog.ErrRecipeNotFound (wrapped) for unknown ids.
func (e *Engine) EvaluateByID(inv *models.InventoryProfile, recipeID string) (*ReadinessReport, error) {
	recipe, err := e.snapshot.Recipe(recipeID)
	if err != nil {
		return nil, err
	}
	report := e.Evaluate(inv, recipe)
	return &report, nil
}

// Evaluate produces a readiness report for one recipe against one
// inventory snapshot. It is pure: no state is read besides the
// arguments and the engine's immutable configuration.
func (e *Engine) Evaluate(inv *models.InventoryProfile, recipe *models.Recipe) ReadinessReport {
	report := ReadinessReport{
		RecipeID:   recipe.ID,
		RecipeName: recipe.Name,
	}

	// subScores collects the compatibility scores of every substitution
	// used, tools and ingredients combined, for the score formula.
	var subScores []float64

	report.ToolCompatible, report.ToolsViaSubstitution, report.Tools =
		e.checkTools(inv, recipe, &subScores)

	report.Ingredients = e.checkIngredients(inv, recipe, &subScores)

	requiredTotal := 0
	requiredResolved := 0
	usedIngredientSub := false
	waivedOptional := 0
	for _, check := range report.Ingredients {
		switch check.Resolution {
		case ResolvedSubstitution:
			usedIngredientSub = true
		case SkippedOptional:
			waivedOptional++
		}
		if check.Optional {
			continue
		}
		requiredTotal++
		if check.Resolution == ResolvedDirect || check.Resolution == ResolvedSubstitution {
			requiredResolved++
		}
	}

	switch {
	case !report.ToolCompatible || requiredResolved < requiredTotal:
		report.Status = StatusMissing
		report.Score = missingScore(requiredResolved, requiredTotal)
	case usedIngredientSub || report.ToolsViaSubstitution || waivedOptional > 0:
		report.Status = StatusReadyWithSubstitution
		report.Score = substitutionScore(subScores, waivedOptional)
	default:
		report.Status = StatusReady
		report.Score = 1.0
	}

	metrics.RecordEvaluation(report.Status.String())

	return report
}

// checkTools resolves required tools against owned tools, falling back
// to the resolver for missing ones. Compatible is true only when every
// tool is owned directly or covered by an owned substitute.
func (e *Engine) checkTools(
	inv *models.InventoryProfile,
	recipe *models.Recipe,
	subScores *[]float64,
) (compatible, viaSubstitution bool, checks []ToolCheck) {
	compatible = true

	for _, tool := range recipe.Tools {
		check := ToolCheck{Name: tool}

		if inv.OwnsTool(tool) {
			check.Owned = true
			checks = append(checks, check)
			continue
		}

		if alt, ok := e.bestOwnedAlternative(inv, recipe, tool); ok {
			check.Substitute = alt.Name
			check.SubstitutionScore = alt.Score
			viaSubstitution = true
			*subScores = append(*subScores, alt.Score)
		} else {
			compatible = false
		}

		checks = append(checks, check)
	}

	return compatible, viaSubstitution, checks
}

// bestOwnedAlternative returns the highest-scoring tool substitute the
// user owns. The resolver already filters excluded alternatives.
func (e *Engine) bestOwnedAlternative(
	inv *models.InventoryProfile,
	recipe *models.Recipe,
	tool string,
) (substitution.Alternative, bool) {
	var best substitution.Alternative
	found := false

	for _, alt := range e.resolver.Resolve(tool, models.ContextTool, recipe, inv.Exclusions) {
		if !inv.OwnsTool(alt.Name) {
			continue
		}
		if !found || alt.Score > best.Score {
			best = alt
			found = true
		}
	}

	return best, found
}

// checkIngredients resolves each requirement line: direct availability
// first, then substitution, then optional waiver.
func (e *Engine) checkIngredients(
	inv *models.InventoryProfile,
	recipe *models.Recipe,
	subScores *[]float64,
) []IngredientCheck {
	checks := make([]IngredientCheck, 0, len(recipe.Ingredients))

	for i := range recipe.Ingredients {
		ing := &recipe.Ingredients[i]

		check := IngredientCheck{
			Name:     ing.Name,
			Optional: ing.Optional,
			Required: requiredQuantity(ing),
			Excluded: inv.Excluded(ing.Name),
		}

		avail, present := inv.Quantity(ing.Name)
		if present {
			a := avail
			check.Available = &a
		}

		// Exclusion overrides presence: an excluded ingredient is never
		// consumed, even when physically in the pantry.
		if present && !check.Excluded && e.directlySufficient(ing, avail, &check) {
			check.Resolution = ResolvedDirect
			checks = append(checks, check)
			continue
		}

		if alt, ok := e.bestAvailableAlternative(inv, recipe, ing.Name); ok {
			check.Resolution = ResolvedSubstitution
			check.Substitute = alt.Name
			check.SubstitutionScore = alt.Score
			*subScores = append(*subScores, alt.Score)
		} else if ing.Optional {
			check.Resolution = SkippedOptional
		} else {
			check.Resolution = Unresolved
		}

		checks = append(checks, check)
	}

	return checks
}

// requiredQuantity renders a recipe requirement as a Quantity for the
// report. A line with no unit and no amount is a bare presence
// requirement, reported as unspecified.
func requiredQuantity(ing *models.RecipeIngredient) models.Quantity {
	if ing.Unit == "" && ing.Quantity == 0 {
		return models.SomeAmount()
	}
	return models.Quantity{Value: ing.Quantity, Unit: ing.Unit}
}

// directlySufficient reports whether an available amount covers the
// requirement. Cross-family comparisons set UnitIncompatible and return
// false: the engine never guesses a conversion.
func (e *Engine) directlySufficient(
	ing *models.RecipeIngredient,
	avail models.Quantity,
	check *IngredientCheck,
) bool {
	// "Some amount" gets the benefit of the doubt unless the recipe
	// marks the requirement strict.
	if avail.Unspecified {
		return !ing.Strict
	}

	// Bare presence requirement: any recorded positive amount works, in
	// any unit family. A recorded zero amount means none on hand.
	if ing.Unit == "" && ing.Quantity == 0 {
		return avail.Value > 0
	}

	converted, ok := models.ConvertUnit(avail.Value, avail.Unit, ing.Unit)
	if !ok {
		check.UnitIncompatible = true
		return false
	}

	return converted >= ing.Quantity
}

// bestAvailableAlternative returns the highest-scoring ingredient
// substitute present in the pantry. Presence suffices; quantities of
// alternatives are not compared since densities differ across
// ingredients. The resolver already filters excluded alternatives.
func (e *Engine) bestAvailableAlternative(
	inv *models.InventoryProfile,
	recipe *models.Recipe,
	name string,
) (substitution.Alternative, bool) {
	var best substitution.Alternative
	found := false

	for _, alt := range e.resolver.Resolve(name, models.ContextIngredient, recipe, inv.Exclusions) {
		if _, present := inv.Ingredients[alt.Name]; !present {
			continue
		}
		if !found || alt.Score > best.Score {
			best = alt
			found = true
		}
	}

	return best, found
}

// substitutionScore computes 0.5 + 0.5 x mean substitution score, with
// waived optionals contributing optionalWaiverScore each.
func substitutionScore(subScores []float64, waivedOptional int) float64 {
	sum := 0.0
	for _, s := range subScores {
		sum += s
	}
	sum += optionalWaiverScore * float64(waivedOptional)

	n := len(subScores) + waivedOptional
	if n == 0 {
		// Unreachable: ReadyWithSubstitution implies at least one
		// substitution or waiver.
		return 0.5
	}

	return 0.5 + 0.5*(sum/float64(n))
}

// missingScore computes resolved-fraction x 0.4. A recipe missing only
// tools has all ingredients resolved and scores the full 0.4, still
// strictly below any ReadyWithSubstitution score.
func missingScore(resolved, total int) float64 {
	if total == 0 {
		return 0.4
	}
	return float64(resolved) / float64(total) * 0.4
}

// Rank evaluates every recipe in the catalog snapshot and returns
// reports ordered best-first: descending score, ties broken by ascending
// recipe id. Cookable recipes land in Best, the rest in Suggestions.
func (e *Engine) Rank(inv *models.InventoryProfile, req RankRequest) *RankResult {
	start := time.Now()
	recipes := e.snapshot.Recipes()
	reports := make([]ReadinessReport, len(recipes))

	workers := e.cfg.Workers
	if workers < 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	if workers > 1 && len(recipes) > 1 {
		// Embarrassingly parallel: every evaluation reads only immutable
		// data and writes its own slot.
		var wg sync.WaitGroup
		jobs := make(chan int)

		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range jobs {
					reports[i] = e.Evaluate(inv, recipes[i])
				}
			}()
		}
		for i := range recipes {
			jobs <- i
		}
		close(jobs)
		wg.Wait()
	} else {
		for i, r := range recipes {
			reports[i] = e.Evaluate(inv, r)
		}
	}

	sort.SliceStable(reports, func(i, j int) bool {
		if reports[i].Score != reports[j].Score {
			return reports[i].Score > reports[j].Score
		}
		return reports[i].RecipeID < reports[j].RecipeID
	})

	result := &RankResult{
		RequestID:       uuid.NewString(),
		CatalogID:       e.snapshot.ID(),
		GeneratedAt:     time.Now().UTC(),
		TotalCandidates: len(recipes),
	}

	limit := req.Limit
	if limit <= 0 {
		limit = e.cfg.DefaultLimit
	}

	for _, report := range reports {
		if report.Status == StatusMissing {
			result.Suggestions = append(result.Suggestions, report)
		} else {
			result.Best = append(result.Best, report)
		}
	}
	if limit > 0 {
		if len(result.Best) > limit {
			result.Best = result.Best[:limit]
		}
		if len(result.Suggestions) > limit {
			result.Suggestions = result.Suggestions[:limit]
		}
	}

	elapsed := time.Since(start)
	metrics.ObserveRankDuration(elapsed.Seconds())

	e.logger.Debug().
		Str("request_id", result.RequestID).
		Int("candidates", result.TotalCandidates).
		Int("best", len(result.Best)).
		Int("suggestions", len(result.Suggestions)).
		Dur("elapsed", elapsed).
		Msg("ranked catalog")

	return result
}
