package foodref

import "github.com/mkovalev/gain-planner/internal/domain"

// canonicalFoods is the per-100g nutrient reference behind Default().
// Values follow USDA FoodData Central entries for the cooked/ready form.
var canonicalFoods = []domain.FoodItem{
	{Key: "chicken_breast", Category: CategoryPoultry, CaloriesPer100g: 165, ProteinPer100g: 31, CarbsPer100g: 0, FatPer100g: 3.6},
	{Key: "turkey_breast", Category: CategoryPoultry, CaloriesPer100g: 135, ProteinPer100g: 29, CarbsPer100g: 0, FatPer100g: 1.7},
	{Key: "beef_sirloin", Category: CategoryMeat, CaloriesPer100g: 200, ProteinPer100g: 28, CarbsPer100g: 0, FatPer100g: 10},
	{Key: "ground_beef", Category: CategoryMeat, CaloriesPer100g: 250, ProteinPer100g: 26, CarbsPer100g: 0, FatPer100g: 15},
	{Key: "pork_loin", Category: CategoryMeat, CaloriesPer100g: 195, ProteinPer100g: 28, CarbsPer100g: 0, FatPer100g: 9},
	{Key: "salmon", Category: CategoryFish, CaloriesPer100g: 208, ProteinPer100g: 20, CarbsPer100g: 0, FatPer100g: 13},
	{Key: "tuna", Category: CategoryFish, CaloriesPer100g: 132, ProteinPer100g: 28, CarbsPer100g: 0, FatPer100g: 1.3},
	{Key: "cod", Category: CategoryFish, CaloriesPer100g: 82, ProteinPer100g: 18, CarbsPer100g: 0, FatPer100g: 0.7},
	{Key: "egg", Category: CategoryEgg, CaloriesPer100g: 155, ProteinPer100g: 13, CarbsPer100g: 1.1, FatPer100g: 11},
	{Key: "egg_white", Category: CategoryEgg, CaloriesPer100g: 52, ProteinPer100g: 11, CarbsPer100g: 0.7, FatPer100g: 0.2},
	{Key: "whole_milk", Category: CategoryDairy, CaloriesPer100g: 61, ProteinPer100g: 3.2, CarbsPer100g: 4.8, FatPer100g: 3.3},
	{Key: "greek_yogurt", Category: CategoryDairy, CaloriesPer100g: 59, ProteinPer100g: 10, CarbsPer100g: 3.6, FatPer100g: 0.4},
	{Key: "cottage_cheese", Category: CategoryDairy, CaloriesPer100g: 98, ProteinPer100g: 11, CarbsPer100g: 3.4, FatPer100g: 4.3},
	{Key: "cheddar_cheese", Category: CategoryDairy, CaloriesPer100g: 403, ProteinPer100g: 25, CarbsPer100g: 1.3, FatPer100g: 33},
	{Key: "whey_protein", Category: CategoryDairy, CaloriesPer100g: 370, ProteinPer100g: 80, CarbsPer100g: 6, FatPer100g: 3},
	{Key: "white_rice", Category: CategoryGrain, CaloriesPer100g: 130, ProteinPer100g: 2.7, CarbsPer100g: 28, FatPer100g: 0.3},
	{Key: "brown_rice", Category: CategoryGrain, CaloriesPer100g: 111, ProteinPer100g: 2.6, CarbsPer100g: 23, FatPer100g: 0.9},
	{Key: "oats", Category: CategoryGrain, CaloriesPer100g: 389, ProteinPer100g: 16.9, CarbsPer100g: 66, FatPer100g: 6.9},
	{Key: "pasta", Category: CategoryGrain, CaloriesPer100g: 131, ProteinPer100g: 5, CarbsPer100g: 25, FatPer100g: 1.1},
	{Key: "whole_wheat_bread", Category: CategoryGrain, CaloriesPer100g: 247, ProteinPer100g: 13, CarbsPer100g: 41, FatPer100g: 3.4},
	{Key: "quinoa", Category: CategoryGrain, CaloriesPer100g: 120, ProteinPer100g: 4.4, CarbsPer100g: 21, FatPer100g: 1.9},
	{Key: "potato", Category: CategoryVegetable, CaloriesPer100g: 77, ProteinPer100g: 2, CarbsPer100g: 17, FatPer100g: 0.1},
	{Key: "sweet_potato", Category: CategoryVegetable, CaloriesPer100g: 86, ProteinPer100g: 1.6, CarbsPer100g: 20, FatPer100g: 0.1},
	{Key: "broccoli", Category: CategoryVegetable, CaloriesPer100g: 34, ProteinPer100g: 2.8, CarbsPer100g: 7, FatPer100g: 0.4},
	{Key: "spinach", Category: CategoryVegetable, CaloriesPer100g: 23, ProteinPer100g: 2.9, CarbsPer100g: 3.6, FatPer100g: 0.4},
	{Key: "lentils", Category: CategoryLegume, CaloriesPer100g: 116, ProteinPer100g: 9, CarbsPer100g: 20, FatPer100g: 0.4},
	{Key: "chickpeas", Category: CategoryLegume, CaloriesPer100g: 164, ProteinPer100g: 8.9, CarbsPer100g: 27, FatPer100g: 2.6},
	{Key: "black_beans", Category: CategoryLegume, CaloriesPer100g: 132, ProteinPer100g: 8.9, CarbsPer100g: 24, FatPer100g: 0.5},
	{Key: "tofu", Category: CategoryLegume, CaloriesPer100g: 76, ProteinPer100g: 8, CarbsPer100g: 1.9, FatPer100g: 4.8},
	{Key: "tempeh", Category: CategoryLegume, CaloriesPer100g: 192, ProteinPer100g: 20, CarbsPer100g: 7.6, FatPer100g: 11},
	{Key: "banana", Category: CategoryFruit, CaloriesPer100g: 89, ProteinPer100g: 1.1, CarbsPer100g: 23, FatPer100g: 0.3},
	{Key: "apple", Category: CategoryFruit, CaloriesPer100g: 52, ProteinPer100g: 0.3, CarbsPer100g: 14, FatPer100g: 0.2},
	{Key: "blueberries", Category: CategoryFruit, CaloriesPer100g: 57, ProteinPer100g: 0.7, CarbsPer100g: 14, FatPer100g: 0.3},
	{Key: "avocado", Category: CategoryFruit, CaloriesPer100g: 160, ProteinPer100g: 2, CarbsPer100g: 8.5, FatPer100g: 14.7},
	{Key: "almonds", Category: CategoryNut, CaloriesPer100g: 579, ProteinPer100g: 21, CarbsPer100g: 22, FatPer100g: 50},
	{Key: "peanut_butter", Category: CategoryNut, CaloriesPer100g: 588, ProteinPer100g: 25, CarbsPer100g: 20, FatPer100g: 50},
	{Key: "walnuts", Category: CategoryNut, CaloriesPer100g: 654, ProteinPer100g: 15, CarbsPer100g: 14, FatPer100g: 65},
	{Key: "olive_oil", Category: CategoryOil, CaloriesPer100g: 884, ProteinPer100g: 0, CarbsPer100g: 0, FatPer100g: 100},
	{Key: "butter", Category: CategoryDairy, CaloriesPer100g: 717, ProteinPer100g: 0.9, CarbsPer100g: 0.1, FatPer100g: 81},
}
