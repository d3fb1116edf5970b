// Larder - Pantry-Aware Recipe Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package main

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tomtom215/larder/internal/catalog"
	"github.com/tomtom215/larder/internal/config"
	"github.com/tomtom215/larder/internal/match"
	"github.com/tomtom215/larder/internal/models"
)

// rootCmd assembles the command tree. Leaf commands return errors up
// through Execute; main logs them, so cobra stays silent.
func rootCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "larder",
		Short: "Pantry-aware recipe matching and recommendation",
		Long: `Larder matches a pantry profile (ingredients, tools, exclusions)
against a recipe catalog and reports what can be cooked now, what works
with substitutions, and what to buy for the rest.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		recipesCmd(cfg),
		inventoryCmd(cfg),
		evaluateCmd(cfg),
		rankCmd(cfg),
		substituteCmd(cfg),
		shoppingCmd(cfg),
	)
	return cmd
}

// printJSON writes a result to the command's output as indented JSON.
func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

// recipesCmd lists the catalog.
func recipesCmd(cfg *config.Config) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "recipes",
		Short: "List the recipe catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap, err := loadCatalog(cfg)
			if err != nil {
				return err
			}

			type recipeRow struct {
				ID          string `json:"id"`
				Name        string `json:"name"`
				Category    string `json:"category,omitempty"`
				Subcategory string `json:"subcategory,omitempty"`
				Ingredients int    `json:"ingredients"`
				Tools       int    `json:"tools,omitempty"`
			}

			var rows []recipeRow
			for _, r := range snap.Recipes() {
				if category != "" && r.Category != category {
					continue
				}
				rows = append(rows, recipeRow{
					ID:          r.ID,
					Name:        r.Name,
					Category:    r.Category,
					Subcategory: r.Subcategory,
					Ingredients: len(r.Ingredients),
					Tools:       len(r.Tools),
				})
			}

			return printJSON(cmd, map[string]any{
				"catalog_id": snap.ID(),
				"total":      len(rows),
				"recipes":    rows,
			})
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "filter by category")
	return cmd
}

// modifyProfile loads the user's profile, applies fn, persists the
// result, and prints the updated profile.
func modifyProfile(cmd *cobra.Command, cfg *config.Config, user string, fn func(*models.InventoryProfile) error) error {
	ctx := context.Background()
	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	profile, err := loadOrCreateProfile(ctx, s, user)
	if err != nil {
		return err
	}
	if err := fn(profile); err != nil {
		return err
	}
	if err := s.SaveProfile(ctx, profile); err != nil {
		return err
	}
	return printJSON(cmd, profile)
}

// inventoryCmd manages the pantry profile.
func inventoryCmd(cfg *config.Config) *cobra.Command {
	var (
		user        string
		ingredient  string
		quantity    float64
		unit        string
		tool        string
		ingredients string
	)

	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Manage the pantry profile",
	}
	cmd.PersistentFlags().StringVar(&user, "user", "", "user id (required)")
	_ = cmd.MarkPersistentFlagRequired("user")

	add := &cobra.Command{
		Use:   "add",
		Short: "Record an available ingredient",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return modifyProfile(cmd, cfg, user, func(p *models.InventoryProfile) error {
				// Omitting --quantity records an unspecified "some
				// amount" entry; an explicit zero records none on hand.
				if cmd.Flags().Changed("quantity") {
					return p.AddIngredient(ingredient, models.Quantity{Value: quantity, Unit: unit})
				}
				return p.AddSomeIngredient(ingredient)
			})
		},
	}
	add.Flags().StringVar(&ingredient, "ingredient", "", "ingredient name (required)")
	add.Flags().Float64Var(&quantity, "quantity", 0, "amount; omit for \"some amount\"")
	add.Flags().StringVar(&unit, "unit", "", "unit token (g, ml, piece, ...)")
	_ = add.MarkFlagRequired("ingredient")

	addList := &cobra.Command{
		Use:   "add-list",
		Short: "Record a comma-separated list of ingredients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Bulk entry: "milk, eggs, brown sugar" adds three
			// ingredients with unspecified amounts.
			names := models.ParseList(ingredients)
			if len(names) == 0 {
				return fmt.Errorf("--ingredients is empty")
			}
			return modifyProfile(cmd, cfg, user, func(p *models.InventoryProfile) error {
				for _, name := range names {
					if err := p.AddSomeIngredient(name); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	addList.Flags().StringVar(&ingredients, "ingredients", "", "comma-separated ingredient names (required)")
	_ = addList.MarkFlagRequired("ingredients")

	remove := &cobra.Command{
		Use:   "remove",
		Short: "Remove an ingredient entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return modifyProfile(cmd, cfg, user, func(p *models.InventoryProfile) error {
				p.RemoveIngredient(ingredient)
				return nil
			})
		},
	}
	remove.Flags().StringVar(&ingredient, "ingredient", "", "ingredient name (required)")
	_ = remove.MarkFlagRequired("ingredient")

	addTool := &cobra.Command{
		Use:   "add-tool",
		Short: "Record an owned tool",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return modifyProfile(cmd, cfg, user, func(p *models.InventoryProfile) error {
				return p.AddTool(tool)
			})
		},
	}
	addTool.Flags().StringVar(&tool, "tool", "", "tool name (required)")
	_ = addTool.MarkFlagRequired("tool")

	removeTool := &cobra.Command{
		Use:   "remove-tool",
		Short: "Remove an owned tool",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return modifyProfile(cmd, cfg, user, func(p *models.InventoryProfile) error {
				p.RemoveTool(tool)
				return nil
			})
		},
	}
	removeTool.Flags().StringVar(&tool, "tool", "", "tool name (required)")
	_ = removeTool.MarkFlagRequired("tool")

	exclude := &cobra.Command{
		Use:   "exclude",
		Short: "Refuse an ingredient (overrides presence during matching)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return modifyProfile(cmd, cfg, user, func(p *models.InventoryProfile) error {
				return p.Exclude(ingredient)
			})
		},
	}
	exclude.Flags().StringVar(&ingredient, "ingredient", "", "ingredient name (required)")
	_ = exclude.MarkFlagRequired("ingredient")

	unexclude := &cobra.Command{
		Use:   "unexclude",
		Short: "Clear an ingredient exclusion",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return modifyProfile(cmd, cfg, user, func(p *models.InventoryProfile) error {
				p.Unexclude(ingredient)
				return nil
			})
		},
	}
	unexclude.Flags().StringVar(&ingredient, "ingredient", "", "ingredient name (required)")
	_ = unexclude.MarkFlagRequired("ingredient")

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the pantry profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer s.Close()

			profile, err := loadOrCreateProfile(context.Background(), s, user)
			if err != nil {
				return err
			}
			return printJSON(cmd, profile)
		},
	}

	cmd.AddCommand(add, addList, remove, addTool, removeTool, exclude, unexclude, show)
	return cmd
}

// evaluateCmd evaluates one recipe against the user's pantry.
func evaluateCmd(cfg *config.Config) *cobra.Command {
	var (
		user     string
		recipeID string
	)

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate one recipe against the pantry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, err := buildEngine(cfg)
			if err != nil {
				return err
			}

			s, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer s.Close()

			profile, err := loadOrCreateProfile(context.Background(), s, user)
			if err != nil {
				return err
			}

			report, err := engine.EvaluateByID(profile, recipeID)
			if err != nil {
				return err
			}
			return printJSON(cmd, report)
		},
	}
	cmd.Flags().StringVar(&user, "user", "", "user id (required)")
	cmd.Flags().StringVar(&recipeID, "recipe", "", "recipe id (required)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("recipe")
	return cmd
}

// substituteCmd rewrites a recipe with one ingredient swapped for
// another and prints the result. The catalog itself is immutable; the
// rewritten recipe is a derived copy.
func substituteCmd(cfg *config.Config) *cobra.Command {
	var (
		recipeID string
		from     string
		to       string
	)

	cmd := &cobra.Command{
		Use:   "substitute",
		Short: "Rewrite a recipe with an ingredient swapped out",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap, err := loadCatalog(cfg)
			if err != nil {
				return err
			}
			recipe, err := snap.Recipe(recipeID)
			if err != nil {
				return err
			}

			modified, err := catalog.ApplySubstitution(recipe, from, to)
			if err != nil {
				return err
			}
			return printJSON(cmd, modified)
		},
	}
	cmd.Flags().StringVar(&recipeID, "recipe", "", "recipe id (required)")
	cmd.Flags().StringVar(&from, "from", "", "ingredient to replace (required)")
	cmd.Flags().StringVar(&to, "to", "", "replacement ingredient (required)")
	_ = cmd.MarkFlagRequired("recipe")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

// rankCmd ranks the whole catalog for the user.
func rankCmd(cfg *config.Config) *cobra.Command {
	var (
		user  string
		limit int
	)

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank the whole catalog by readiness",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, err := buildEngine(cfg)
			if err != nil {
				return err
			}

			s, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer s.Close()

			profile, err := loadOrCreateProfile(context.Background(), s, user)
			if err != nil {
				return err
			}

			result := engine.Rank(profile, match.RankRequest{Limit: limit})
			return printJSON(cmd, result)
		},
	}
	cmd.Flags().StringVar(&user, "user", "", "user id (required)")
	cmd.Flags().IntVar(&limit, "limit", 0, "max results per partition (0 = config default)")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
