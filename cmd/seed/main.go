package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/forkful/backend/config"
	"github.com/forkful/backend/internal/database"
	"github.com/forkful/backend/internal/models"
)

// sampleRecipes is the built-in catalog used when no data file is given.
var sampleRecipes = []models.Recipe{
	{
		Title:       "Classic Tiramisu",
		Description: "Layered Italian dessert with espresso-soaked ladyfingers and mascarpone cream",
		Category:    "Dessert",
		Tags:        []string{"italian", "dessert", "no-bake"},
		Ingredients: map[string]string{
			"ladyfingers": "24",
			"mascarpone":  "500g",
			"espresso":    "300ml",
			"eggs":        "4",
			"sugar":       "100g",
			"cocoa":       "2 tbsp",
		},
		Instructions: []string{
			"Whisk egg yolks with sugar until pale",
			"Fold in mascarpone",
			"Dip ladyfingers in espresso and layer",
			"Spread cream between layers",
			"Dust with cocoa and chill overnight",
		},
		Prep:     30,
		Cook:     0,
		Servings: 8,
	},
	{
		Title:       "Chicken Pad Thai",
		Description: "Stir-fried rice noodles with chicken, egg, and tamarind sauce",
		Category:    "Main",
		Tags:        []string{"thai", "noodles", "quick"},
		Ingredients: map[string]string{
			"rice noodles":   "200g",
			"chicken breast": "300g",
			"eggs":           "2",
			"tamarind paste": "2 tbsp",
			"fish sauce":     "2 tbsp",
			"peanuts":        "50g",
			"bean sprouts":   "100g",
		},
		Instructions: []string{
			"Soak noodles in warm water",
			"Stir-fry chicken until cooked through",
			"Push aside and scramble eggs",
			"Add noodles and sauce, toss well",
			"Top with peanuts and sprouts",
		},
		Prep:     20,
		Cook:     15,
		Servings: 2,
	},
	{
		Title:       "Lemon Drizzle Cake",
		Description: "Moist sponge cake soaked in tangy lemon syrup",
		Category:    "Dessert",
		Tags:        []string{"baking", "dessert", "citrus"},
		Ingredients: map[string]string{
			"flour":  "225g",
			"butter": "225g",
			"sugar":  "225g",
			"eggs":   "4",
			"lemons": "2",
		},
		Instructions: []string{
			"Cream butter and sugar",
			"Beat in eggs one at a time",
			"Fold in flour and lemon zest",
			"Bake at 180C for 45 minutes",
			"Pour lemon syrup over warm cake",
		},
		Prep:     15,
		Cook:     45,
		Servings: 10,
	},
	{
		Title:       "Roasted Tomato Soup",
		Description: "Slow-roasted tomatoes blended with garlic and basil",
		Category:    "Starter",
		Tags:        []string{"soup", "vegetarian", "comfort"},
		Ingredients: map[string]string{
			"tomatoes":        "1kg",
			"garlic":          "4 cloves",
			"onion":           "1",
			"vegetable stock": "500ml",
			"basil":           "1 bunch",
		},
		Instructions: []string{
			"Roast tomatoes and garlic at 200C for 40 minutes",
			"Soften onion in a pot",
			"Add roasted vegetables and stock",
			"Simmer 10 minutes then blend",
			"Stir in torn basil",
		},
		Prep:     10,
		Cook:     55,
		Servings: 4,
	},
	{
		Title:       "Chocolate Brownies",
		Description: "Fudgy brownies with a crackly top",
		Category:    "Dessert",
		Tags:        []string{"baking", "dessert", "chocolate"},
		Ingredients: map[string]string{
			"dark chocolate": "200g",
			"butter":         "175g",
			"sugar":          "250g",
			"eggs":           "3",
			"flour":          "100g",
			"cocoa":          "30g",
		},
		Instructions: []string{
			"Melt chocolate and butter together",
			"Whisk eggs and sugar until thick",
			"Fold chocolate into egg mixture",
			"Sift in flour and cocoa, fold gently",
			"Bake at 170C for 25 minutes",
		},
		Prep:     15,
		Cook:     25,
		Servings: 12,
	},
}

func main() {
	var (
		dataFile = flag.String("file", "", "path to a JSON file containing an array of recipes")
		drop     = flag.Bool("drop", false, "drop the recipes collection before seeding")
	)
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()
	defer func() {
		if err := db.Close(context.Background()); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}()

	recipes := sampleRecipes
	if *dataFile != "" {
		data, err := os.ReadFile(*dataFile)
		if err != nil {
			log.Fatalf("Failed to read %s: %v", *dataFile, err)
		}
		recipes = nil
		if err := json.Unmarshal(data, &recipes); err != nil {
			log.Fatalf("Failed to parse %s: %v", *dataFile, err)
		}
	}

	coll := db.Collection(database.RecipesCollection)
	if *drop {
		if err := coll.Drop(ctx); err != nil {
			log.Fatalf("Failed to drop recipes collection: %v", err)
		}
		log.Println("Dropped recipes collection")
	}

	seeded := 0
	for i := range recipes {
		r := &recipes[i]
		if r.PublishedAt.IsZero() {
			r.PublishedAt = time.Now().UTC()
		}
		// Skip recipes that already exist so reruns stay idempotent.
		count, err := coll.CountDocuments(ctx, bson.M{"title": r.Title})
		if err != nil {
			log.Fatalf("Failed to check for existing recipe %q: %v", r.Title, err)
		}
		if count > 0 {
			log.Printf("Skipping existing recipe: %s", r.Title)
			continue
		}
		if _, err := coll.InsertOne(ctx, r); err != nil {
			log.Fatalf("Failed to insert recipe %q: %v", r.Title, err)
		}
		log.Printf("Seeded recipe: %s", r.Title)
		seeded++
	}

	if err := db.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	log.Printf("Successfully seeded %d recipes", seeded)
}
