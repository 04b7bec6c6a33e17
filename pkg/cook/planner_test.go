package cook

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-brew/entities"
)

func activeIngredient(name, unit string, stock, cost float64) *entities.Ingredient {
	return &entities.Ingredient{
		ID:            uuid.New(),
		Name:          name,
		Unit:          unit,
		StockQuantity: stock,
		CostPerUnit:   cost,
		IsActive:      true,
	}
}

func recipeWith(lines ...entities.RecipeIngredient) *entities.Recipe {
	return &entities.Recipe{
		ID:          uuid.New(),
		Name:        "Test Recipe",
		IsActive:    true,
		Ingredients: lines,
	}
}

func TestBuildPlanMergesDuplicateLines(t *testing.T) {
	flour := activeIngredient("Flour", "g", 100, 0.05)
	recipe := recipeWith(
		entities.RecipeIngredient{IngredientID: flour.ID, Quantity: 2, Unit: "g"},
		entities.RecipeIngredient{IngredientID: flour.ID, Quantity: 3, Unit: "g"},
	)

	plan := BuildPlan(recipe, []*entities.Ingredient{flour}, 4)

	require.True(t, plan.Valid())
	require.Len(t, plan.Requirements, 1)
	assert.Equal(t, 20.0, plan.Requirements[0].RequiredQuantity)
	assert.Equal(t, flour.ID, plan.Requirements[0].IngredientID)
}

func TestBuildPlanPreservesLineOrder(t *testing.T) {
	first := activeIngredient("Milk", "ml", 1000, 0.002)
	second := activeIngredient("Sugar", "g", 500, 0.01)
	recipe := recipeWith(
		entities.RecipeIngredient{IngredientID: first.ID, Quantity: 200, Unit: "ml"},
		entities.RecipeIngredient{IngredientID: second.ID, Quantity: 30, Unit: "g"},
		entities.RecipeIngredient{IngredientID: first.ID, Quantity: 50, Unit: "ml"},
	)

	plan := BuildPlan(recipe, []*entities.Ingredient{second, first}, 1)

	require.True(t, plan.Valid())
	require.Len(t, plan.Requirements, 2)
	assert.Equal(t, first.ID, plan.Requirements[0].IngredientID)
	assert.Equal(t, second.ID, plan.Requirements[1].IngredientID)
	assert.Equal(t, 250.0, plan.Requirements[0].RequiredQuantity)
}

func TestBuildPlanConflictingUnitsIsConfigurationError(t *testing.T) {
	flour := activeIngredient("Flour", "g", 100, 0.05)
	recipe := recipeWith(
		entities.RecipeIngredient{IngredientID: flour.ID, Quantity: 2, Unit: "g"},
		entities.RecipeIngredient{IngredientID: flour.ID, Quantity: 1, Unit: "kg"},
	)

	plan := BuildPlan(recipe, []*entities.Ingredient{flour}, 1)

	assert.False(t, plan.Valid())
	require.Len(t, plan.ConfigurationErrors, 1)
	assert.Contains(t, plan.ConfigurationErrors[0], "conflicting units")
	assert.Empty(t, plan.InsufficientErrors)
}

func TestBuildPlanMissingIngredient(t *testing.T) {
	recipe := recipeWith(
		entities.RecipeIngredient{IngredientID: uuid.New(), Quantity: 1, Unit: "pcs"},
	)

	plan := BuildPlan(recipe, nil, 1)

	assert.False(t, plan.Valid())
	require.Len(t, plan.ConfigurationErrors, 1)
	assert.Contains(t, plan.ConfigurationErrors[0], "no longer exists")
}

func TestBuildPlanInactiveIngredient(t *testing.T) {
	egg := activeIngredient("Egg", "pcs", 30, 0.2)
	egg.IsActive = false
	recipe := recipeWith(
		entities.RecipeIngredient{IngredientID: egg.ID, Quantity: 2, Unit: "pcs"},
	)

	plan := BuildPlan(recipe, []*entities.Ingredient{egg}, 1)

	assert.False(t, plan.Valid())
	require.Len(t, plan.ConfigurationErrors, 1)
	assert.Contains(t, plan.ConfigurationErrors[0], "inactive")
}

func TestBuildPlanUnitMismatch(t *testing.T) {
	milk := activeIngredient("Milk", "ml", 1000, 0.002)
	recipe := recipeWith(
		entities.RecipeIngredient{IngredientID: milk.ID, Quantity: 1, Unit: "l"},
	)

	plan := BuildPlan(recipe, []*entities.Ingredient{milk}, 1)

	assert.False(t, plan.Valid())
	require.Len(t, plan.ConfigurationErrors, 1)
	assert.Contains(t, plan.ConfigurationErrors[0], "Unit mismatch")
}

func TestBuildPlanInsufficientStock(t *testing.T) {
	sugar := activeIngredient("Sugar", "g", 10, 0.01)
	recipe := recipeWith(
		entities.RecipeIngredient{IngredientID: sugar.ID, Quantity: 30, Unit: "g"},
	)

	plan := BuildPlan(recipe, []*entities.Ingredient{sugar}, 1)

	assert.False(t, plan.Valid())
	assert.Empty(t, plan.ConfigurationErrors)
	require.Len(t, plan.InsufficientErrors, 1)
	assert.Contains(t, plan.InsufficientErrors[0], "needed 30 g, available 10 g")
}

func TestBuildPlanCollectsAllErrors(t *testing.T) {
	sugar := activeIngredient("Sugar", "g", 10, 0.01)
	missing := uuid.New()
	recipe := recipeWith(
		entities.RecipeIngredient{IngredientID: sugar.ID, Quantity: 30, Unit: "g"},
		entities.RecipeIngredient{IngredientID: missing, Quantity: 1, Unit: "pcs"},
	)

	plan := BuildPlan(recipe, []*entities.Ingredient{sugar}, 1)

	assert.Len(t, plan.ConfigurationErrors, 1)
	assert.Len(t, plan.InsufficientErrors, 1)
}

func TestBuildPlanRoundsScaledQuantities(t *testing.T) {
	oil := activeIngredient("Oil", "ml", 10, 0.01)
	recipe := recipeWith(
		entities.RecipeIngredient{IngredientID: oil.ID, Quantity: 0.1, Unit: "ml"},
	)

	plan := BuildPlan(recipe, []*entities.Ingredient{oil}, 3)

	require.True(t, plan.Valid())
	assert.Equal(t, 0.3, plan.Requirements[0].RequiredQuantity)
}
