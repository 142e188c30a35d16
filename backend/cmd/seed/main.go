package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gourmet-graph/backend/internal/graph"
	"gourmet-graph/backend/pkg/config"
	"gourmet-graph/backend/pkg/logger"
)

type seedRegion struct {
	ID   string
	Name string
}

type seedFood struct {
	Name        string
	Type        string
	Region      string
	Description string
	Price       float64
	Views       int
	Ingredients []string
}

type seedUser struct {
	Name    string
	Age     int
	Region  string
	Likes   []string
	Views   []string
	Ratings map[string]int
}

var regions = []seedRegion{
	{ID: "ha-noi", Name: "Hà Nội"},
	{ID: "hue", Name: "Huế"},
	{ID: "sai-gon", Name: "Sài Gòn"},
	{ID: "hoi-an", Name: "Hội An"},
}

var foods = []seedFood{
	{Name: "Phở bò", Type: "Món nước", Region: "Hà Nội", Description: "Nước dùng nóng hầm xương bò", Price: 50000, Views: 120,
		Ingredients: []string{"bánh phở", "thịt bò", "hành", "gừng"}},
	{Name: "Bún chả", Type: "Món bún", Region: "Hà Nội", Description: "Thịt nướng ăn kèm bún và nước chấm", Price: 45000, Views: 95,
		Ingredients: []string{"bún", "thịt heo", "nước mắm", "rau sống"}},
	{Name: "Bún bò Huế", Type: "Món nước", Region: "Huế", Description: "Món nước cay nóng đặc trưng xứ Huế", Price: 55000, Views: 80,
		Ingredients: []string{"bún", "thịt bò", "sả", "ớt"}},
	{Name: "Chè Huế", Type: "Tráng miệng", Region: "Huế", Description: "Chè mát lạnh giải nhiệt mùa hè", Price: 20000, Views: 40,
		Ingredients: []string{"đậu xanh", "nước cốt dừa", "đường"}},
	{Name: "Cơm tấm", Type: "Món cơm", Region: "Sài Gòn", Description: "Cơm tấm sườn nướng", Price: 40000, Views: 110,
		Ingredients: []string{"cơm tấm", "thịt heo", "nước mắm", "trứng"}},
	{Name: "Bánh mì", Type: "Bánh", Region: "Sài Gòn", Description: "Bánh mì giòn nhân pate thịt nguội", Price: 25000, Views: 150,
		Ingredients: []string{"bánh mì", "pate", "thịt heo", "rau sống"}},
	{Name: "Gỏi cuốn", Type: "Món cuốn", Region: "Sài Gòn", Description: "Cuốn tươi mát với tôm và rau", Price: 30000, Views: 60,
		Ingredients: []string{"bánh tráng", "tôm", "bún", "rau sống"}},
	{Name: "Cao lầu", Type: "Món mì", Region: "Hội An", Description: "Mì Hội An ăn kèm thịt xá xíu", Price: 45000, Views: 35,
		Ingredients: []string{"mì", "thịt heo", "rau sống"}},
	{Name: "Lẩu thái", Type: "Lẩu", Region: "Sài Gòn", Description: "Lẩu chua cay ấm áp ngày đông", Price: 250000, Views: 25,
		Ingredients: []string{"tôm", "sả", "ớt", "nấm"}},
}

var users = []seedUser{
	{Name: "Minh", Age: 22, Region: "Hà Nội",
		Likes: []string{"Phở bò", "Bánh mì", "Chè Huế"}, Views: []string{"Phở bò", "Bún chả", "Bánh mì"},
		Ratings: map[string]int{"Phở bò": 5, "Bánh mì": 4}},
	{Name: "Lan", Age: 28, Region: "Huế",
		Likes: []string{"Bún bò Huế", "Chè Huế", "Gỏi cuốn"}, Views: []string{"Bún bò Huế", "Cao lầu"},
		Ratings: map[string]int{"Bún bò Huế": 5, "Chè Huế": 4}},
	{Name: "Hùng", Age: 35, Region: "Sài Gòn",
		Likes: []string{"Cơm tấm", "Bánh mì", "Lẩu thái"}, Views: []string{"Cơm tấm", "Phở bò", "Lẩu thái"},
		Ratings: map[string]int{"Cơm tấm": 5, "Lẩu thái": 3}},
	{Name: "Mai", Age: 45, Region: "Hội An",
		Likes: []string{"Cao lầu", "Phở bò"}, Views: []string{"Cao lầu", "Bún bò Huế"},
		Ratings: map[string]int{"Cao lầu": 5}},
	{Name: "Tuấn", Age: 19, Region: "Sài Gòn",
		Likes: []string{"Bánh mì", "Gỏi cuốn", "Bún chả"}, Views: []string{"Bánh mì", "Gỏi cuốn", "Cơm tấm", "Chè Huế"},
		Ratings: map[string]int{"Bánh mì": 5, "Gỏi cuốn": 4, "Bún chả": 4}},
}

func main() {
	reset := flag.Bool("reset", false, "Delete every node before seeding")
	skipConfirm := flag.Bool("y", false, "Skip confirmation prompt")
	flag.Parse()

	// Initialize logger
	if err := logger.Init("development"); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	log := logger.Get()
	log.Info("Starting database seeding...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	ctx := context.Background()
	driver, err := graph.NewDriver(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to connect to Neo4j", zap.Error(err))
	}
	repo := graph.NewRepository(driver, graph.Options{Database: cfg.Neo4jDatabase, QueryTimeout: cfg.QueryTimeout})
	defer repo.Close(context.Background())

	if *reset {
		if !*skipConfirm && !confirm("This deletes ALL nodes in the database. Continue? (yes/no): ") {
			log.Info("Reset cancelled")
			os.Exit(0)
		}
		log.Info("Deleting existing graph...")
		if _, err := repo.Command(ctx, graph.Query{Name: "seed_reset", Cypher: "MATCH (n) DETACH DELETE n"}); err != nil {
			log.Fatal("Failed to reset database", zap.Error(err))
		}
	}

	if err := graph.EnsureSchema(ctx, repo); err != nil {
		log.Fatal("Failed to ensure schema", zap.Error(err))
	}

	if err := seed(ctx, repo); err != nil {
		log.Fatal("Failed to seed catalog", zap.Error(err))
	}

	log.Info("Database seeding completed successfully",
		zap.Int("regions", len(regions)),
		zap.Int("foods", len(foods)),
		zap.Int("users", len(users)),
	)
}

func seed(ctx context.Context, gw graph.Gateway) error {
	for _, r := range regions {
		if _, err := gw.Command(ctx, graph.Query{
			Name:   "seed_region",
			Cypher: "MERGE (r:Region {id: $id}) SET r.name = $name",
			Params: map[string]interface{}{"id": r.ID, "name": r.Name},
		}); err != nil {
			return fmt.Errorf("failed to create region %s: %w", r.Name, err)
		}
	}

	foodIDs := make(map[string]string, len(foods))
	for _, f := range foods {
		id := uuid.New().String()
		foodIDs[f.Name] = id
		if _, err := gw.Command(ctx, graph.Query{
			Name: "seed_food",
			Cypher: `
				MATCH (r:Region {name: $region})
				MERGE (f:Food {name: $name})
				ON CREATE SET f.id = $id
				SET f.type = $type,
					f.description = $description,
					f.ingredients = $ingredientText,
					f.price = $price,
					f.view_count = $views
				MERGE (f)-[:FROM_REGION]->(r)
				WITH f
				UNWIND $ingredients AS ingredient
				MERGE (i:Ingredient {name: ingredient})
				MERGE (f)-[:HAS_INGREDIENT]->(i)
				RETURN f.id AS id
			`,
			Params: map[string]interface{}{
				"id":             id,
				"name":           f.Name,
				"type":           f.Type,
				"region":         f.Region,
				"description":    f.Description,
				"ingredientText": strings.Join(f.Ingredients, ", "),
				"price":          f.Price,
				"views":          f.Views,
				"ingredients":    f.Ingredients,
			},
		}); err != nil {
			return fmt.Errorf("failed to create food %s: %w", f.Name, err)
		}
	}

	for _, u := range users {
		ratings := make([]map[string]interface{}, 0, len(u.Ratings))
		for name, rating := range u.Ratings {
			ratings = append(ratings, map[string]interface{}{"food": name, "rating": rating})
		}

		if _, err := gw.Command(ctx, graph.Query{
			Name: "seed_user",
			Cypher: `
				MERGE (u:User {name: $name})
				ON CREATE SET u.id = $id
				SET u.age = $age, u.region = $region
				WITH u
				MATCH (r:Region {name: $region})
				MERGE (u)-[:PREFERS_REGION]->(r)
				WITH u
				CALL {
					WITH u
					UNWIND $likes AS liked
					MATCH (f:Food {name: liked})
					MERGE (u)-[:LIKES_FOOD]->(f)
					RETURN count(*) AS likes
				}
				CALL {
					WITH u
					UNWIND $views AS viewed
					MATCH (f:Food {name: viewed})
					MERGE (u)-[:VIEWS_FOOD]->(f)
					RETURN count(*) AS views
				}
				CALL {
					WITH u
					UNWIND $ratings AS rt
					MATCH (f:Food {name: rt.food})
					MERGE (u)-[r:RATES_FOOD]->(f)
					SET r.rating = rt.rating
					RETURN count(*) AS ratings
				}
				RETURN u.id AS id
			`,
			Params: map[string]interface{}{
				"id":      uuid.New().String(),
				"name":    u.Name,
				"age":     u.Age,
				"region":  u.Region,
				"likes":   u.Likes,
				"views":   u.Views,
				"ratings": ratings,
			},
		}); err != nil {
			return fmt.Errorf("failed to create user %s: %w", u.Name, err)
		}
	}

	return nil
}

func confirm(prompt string) bool {
	fmt.Print(prompt)
	answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	return strings.TrimSpace(strings.ToLower(answer)) == "yes"
}
