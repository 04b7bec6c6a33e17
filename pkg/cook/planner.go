package cook

import (
	"fmt"

	"github.com/google/uuid"

	"inventory-brew/domain"
	"inventory-brew/entities"
)

// Requirement is one merged, scaled ingredient demand of a cook plan.
type Requirement struct {
	IngredientID      uuid.UUID
	IngredientName    string
	Unit              string
	RequiredQuantity  float64
	AvailableQuantity float64
	CostPerUnit       float64
}

// Plan separates configuration errors (the recipe cannot be cooked no matter
// how often the caller retries) from insufficiency errors (a business-state
// problem the caller can fix by restocking or reducing servings). When both
// lists are empty every requirement is individually satisfiable against the
// snapshot the plan was built from.
type Plan struct {
	Requirements        []Requirement
	ConfigurationErrors []string
	InsufficientErrors  []string
}

func (p Plan) Valid() bool {
	return len(p.ConfigurationErrors) == 0 && len(p.InsufficientErrors) == 0
}

type mergedLine struct {
	ingredientID     uuid.UUID
	unit             string
	requiredQuantity float64
}

// BuildPlan computes what cooking the recipe for the given servings requires,
// against a snapshot of the referenced ingredients. It is pure: no I/O, no
// mutation of its inputs. Errors are collected, not short-circuited, so the
// caller sees the complete picture in one round trip.
func BuildPlan(recipe *entities.Recipe, ingredients []*entities.Ingredient, servings int) Plan {
	plan := Plan{}

	ingredientMap := make(map[uuid.UUID]*entities.Ingredient, len(ingredients))
	for _, ingredient := range ingredients {
		ingredientMap[ingredient.ID] = ingredient
	}

	merged := make(map[uuid.UUID]*mergedLine, len(recipe.Ingredients))
	order := make([]uuid.UUID, 0, len(recipe.Ingredients))

	for index, line := range recipe.Ingredients {
		if existing, ok := merged[line.IngredientID]; ok {
			if existing.unit != line.Unit {
				plan.ConfigurationErrors = append(plan.ConfigurationErrors,
					fmt.Sprintf("Recipe contains conflicting units for ingredient %s at line %d", line.IngredientID, index+1))
				continue
			}
			existing.requiredQuantity = domain.Round(existing.requiredQuantity + line.Quantity*float64(servings))
			continue
		}

		merged[line.IngredientID] = &mergedLine{
			ingredientID:     line.IngredientID,
			unit:             line.Unit,
			requiredQuantity: domain.Round(line.Quantity * float64(servings)),
		}
		order = append(order, line.IngredientID)
	}

	for _, id := range order {
		line := merged[id]

		ingredient, ok := ingredientMap[line.ingredientID]
		if !ok {
			plan.ConfigurationErrors = append(plan.ConfigurationErrors,
				fmt.Sprintf("Ingredient %s no longer exists", line.ingredientID))
			continue
		}

		if !ingredient.IsActive {
			plan.ConfigurationErrors = append(plan.ConfigurationErrors,
				fmt.Sprintf("Ingredient %q is inactive and cannot be consumed", ingredient.Name))
			continue
		}

		if ingredient.Unit != line.unit {
			plan.ConfigurationErrors = append(plan.ConfigurationErrors,
				fmt.Sprintf("Unit mismatch for ingredient %q: recipe uses %s, ingredient unit is %s",
					ingredient.Name, line.unit, ingredient.Unit))
			continue
		}

		if ingredient.StockQuantity < line.requiredQuantity {
			plan.InsufficientErrors = append(plan.InsufficientErrors,
				fmt.Sprintf("%s: needed %g %s, available %g %s",
					ingredient.Name, line.requiredQuantity, line.unit, ingredient.StockQuantity, line.unit))
		}

		plan.Requirements = append(plan.Requirements, Requirement{
			IngredientID:      ingredient.ID,
			IngredientName:    ingredient.Name,
			Unit:              line.unit,
			RequiredQuantity:  line.requiredQuantity,
			AvailableQuantity: ingredient.StockQuantity,
			CostPerUnit:       ingredient.CostPerUnit,
		})
	}

	return plan
}
