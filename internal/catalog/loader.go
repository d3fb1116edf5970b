// Larder - Pantry-Aware Recipe Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tomtom215/larder/internal/models"
)

// catalogFile is the YAML shape of a catalog document.
type catalogFile struct {
	Recipes []models.Recipe `yaml:"recipes"`
}

// LoadYAML reads a structured YAML catalog and builds a snapshot.
func LoadYAML(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return ParseYAML(data)
}

// ParseYAML builds a snapshot from YAML catalog bytes.
func ParseYAML(data []byte) (*Snapshot, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return Build(f.Recipes)
}

// csvColumns is the expected header of a legacy CSV export:
// recipe_title,category,subcategory,description,ingredients,directions,
// num_ingredients,num_steps. Column order is fixed; trailing count
// columns are informational and ignored.
const (
	csvColTitle = iota
	csvColCategory
	csvColSubcategory
	csvColDescription
	csvColIngredients
	csvColDirections
	csvMinColumns = csvColDirections + 1
)

// LoadCSV reads a legacy CSV recipe export and builds a snapshot.
//
// CSV rows carry free-text ingredient lists without quantities, so every
// ingredient imports as a quantity-less requirement. Recipe ids are the
// zero-based row index, matching the original export's convention.
func LoadCSV(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	return ParseCSV(f)
}

// ParseCSV builds a snapshot from legacy CSV catalog data.
func ParseCSV(r io.Reader) (*Snapshot, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	if len(header) < csvMinColumns || models.Canonical(header[csvColTitle]) != "recipe_title" {
		return nil, fmt.Errorf("unrecognized csv header %v", header)
	}

	var recipes []models.Recipe
	for idx := 0; ; idx++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row %d: %w", idx, err)
		}
		if len(row) < csvMinColumns {
			return nil, fmt.Errorf("csv row %d: %d columns, want at least %d", idx, len(row), csvMinColumns)
		}

		recipes = append(recipes, models.Recipe{
			ID:          strconv.Itoa(idx),
			Name:        strings.TrimSpace(row[csvColTitle]),
			Category:    strings.TrimSpace(row[csvColCategory]),
			Subcategory: strings.TrimSpace(row[csvColSubcategory]),
			Description: strings.TrimSpace(row[csvColDescription]),
			Ingredients: parseFreeTextIngredients(row[csvColIngredients]),
			Steps:       parseDirections(row[csvColDirections]),
		})
	}

	return Build(recipes)
}

// parseFreeTextIngredients converts a comma- or newline-separated
// ingredient list into quantity-less requirement lines.
func parseFreeTextIngredients(raw string) []models.RecipeIngredient {
	items := models.ParseList(strings.ReplaceAll(raw, "\n", ","))

	seen := make(map[string]struct{}, len(items))
	out := make([]models.RecipeIngredient, 0, len(items))
	for _, name := range items {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, models.RecipeIngredient{Name: name})
	}
	return out
}

// parseDirections splits free-text directions into ordered steps on
// newlines, falling back to sentence boundaries for single-line text.
func parseDirections(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	sep := "\n"
	if !strings.Contains(raw, "\n") {
		sep = ". "
	}

	var steps []string
	for _, part := range strings.Split(raw, sep) {
		step := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(part), "."))
		if step != "" {
			steps = append(steps, step)
		}
	}
	return steps
}
