// Larder - Pantry-Aware Recipe Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/tomtom215/larder/internal/config"
	"github.com/tomtom215/larder/internal/models"
	"github.com/tomtom215/larder/internal/shopping"
)

// listView shapes a shopping list for CLI output, entries sorted.
func listView(list *shopping.List) map[string]any {
	return map[string]any{
		"id":         list.ID,
		"user_id":    list.UserID,
		"updated_at": list.UpdatedAt,
		"entries":    list.Sorted(),
	}
}

// modifyList loads the user's shopping list, applies fn, persists the
// result, and prints the updated list.
func modifyList(cmd *cobra.Command, cfg *config.Config, user string, fn func(*shopping.List) error) error {
	ctx := context.Background()
	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	list, err := loadOrCreateList(ctx, s, user)
	if err != nil {
		return err
	}
	if err := fn(list); err != nil {
		return err
	}
	if err := s.SaveList(ctx, list); err != nil {
		return err
	}
	return printJSON(cmd, listView(list))
}

// shoppingCmd manages the shopping list.
func shoppingCmd(cfg *config.Config) *cobra.Command {
	var (
		user       string
		recipeID   string
		ingredient string
		quantity   float64
		unit       string
		key        string
	)

	cmd := &cobra.Command{
		Use:   "shopping",
		Short: "Manage the shopping list",
	}
	cmd.PersistentFlags().StringVar(&user, "user", "", "user id (required)")
	_ = cmd.MarkPersistentFlagRequired("user")

	add := &cobra.Command{
		Use:   "add",
		Short: "Merge a recipe's missing ingredients into the list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Evaluate the recipe against the pantry, then merge its
			// missing ingredients into the list.
			engine, err := buildEngine(cfg)
			if err != nil {
				return err
			}

			ctx := context.Background()
			s, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer s.Close()

			list, err := loadOrCreateList(ctx, s, user)
			if err != nil {
				return err
			}
			profile, err := loadOrCreateProfile(ctx, s, user)
			if err != nil {
				return err
			}

			report, err := engine.EvaluateByID(profile, recipeID)
			if err != nil {
				return err
			}
			recipe, err := engine.Snapshot().Recipe(recipeID)
			if err != nil {
				return err
			}
			if _, err := list.AddFromRecipe(report, recipe); err != nil {
				return err
			}

			if err := s.SaveList(ctx, list); err != nil {
				return err
			}
			return printJSON(cmd, listView(list))
		},
	}
	add.Flags().StringVar(&recipeID, "recipe", "", "recipe id (required)")
	_ = add.MarkFlagRequired("recipe")

	remove := &cobra.Command{
		Use:   "remove",
		Short: "Withdraw a recipe's contribution from the list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return modifyList(cmd, cfg, user, func(list *shopping.List) error {
				list.RemoveRecipeContribution(recipeID)
				return nil
			})
		},
	}
	remove.Flags().StringVar(&recipeID, "recipe", "", "recipe id (required)")
	_ = remove.MarkFlagRequired("recipe")

	manual := &cobra.Command{
		Use:   "manual",
		Short: "Add a manual entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return modifyList(cmd, cfg, user, func(list *shopping.List) error {
				qty := models.SomeAmount()
				if cmd.Flags().Changed("quantity") {
					qty = models.Quantity{Value: quantity, Unit: unit}
				}
				return list.AddManual(ingredient, qty)
			})
		},
	}
	manual.Flags().StringVar(&ingredient, "ingredient", "", "ingredient name (required)")
	manual.Flags().Float64Var(&quantity, "quantity", 0, "amount; omit for \"some amount\"")
	manual.Flags().StringVar(&unit, "unit", "", "unit token (g, ml, piece, ...)")
	_ = manual.MarkFlagRequired("ingredient")

	removeManual := &cobra.Command{
		Use:   "remove-manual",
		Short: "Withdraw a manual entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return modifyList(cmd, cfg, user, func(list *shopping.List) error {
				list.RemoveManual(ingredient)
				return nil
			})
		},
	}
	removeManual.Flags().StringVar(&ingredient, "ingredient", "", "ingredient name (required)")
	_ = removeManual.MarkFlagRequired("ingredient")

	toggle := &cobra.Command{
		Use:   "toggle",
		Short: "Toggle an entry's completed state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return modifyList(cmd, cfg, user, func(list *shopping.List) error {
				return list.ToggleCompleted(key)
			})
		},
	}
	toggle.Flags().StringVar(&key, "key", "", "entry key (see show output)")
	_ = toggle.MarkFlagRequired("key")

	clear := &cobra.Command{
		Use:   "clear",
		Short: "Drop all completed entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return modifyList(cmd, cfg, user, func(list *shopping.List) error {
				list.ClearCompleted()
				return nil
			})
		},
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the shopping list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer s.Close()

			list, err := loadOrCreateList(context.Background(), s, user)
			if err != nil {
				return err
			}
			return printJSON(cmd, listView(list))
		},
	}

	cmd.AddCommand(add, remove, manual, removeManual, toggle, clear, show)
	return cmd
}
