// Package main implements a standalone seed script that populates the
// catalog with realistic shoe data for local development. It writes
// straight to the four collection tables with direct SQL.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/digitalbuddiesspune/stylegenz/internal/config"
	"github.com/digitalbuddiesspune/stylegenz/internal/domain"
)

type seedProduct struct {
	title           string
	subCategory     string
	subSubCategory  string
	price           float64
	discountPercent float64
	brand           string
	gender          string
	color           string
}

var seedData = map[domain.VariantTag][]seedProduct{
	domain.VariantMensShoe: {
		{"Classic Leather Boot", "Boots", "Chelsea", 2499, 15, "Stride", "Men", "Brown"},
		{"Boot Classic Pro", "Boots", "Work", 3199, 20, "Stride", "Men", "Black"},
		{"Urban Runner Sneaker", "Sneakers", "Low Top", 1899, 10, "Veloce", "Men", "White"},
		{"Trail Grip Hiker", "Sports Shoes", "Hiking", 3499, 0, "Peakline", "Men", "Olive"},
		{"Derby Formal Lace-Up", "Formal Shoes", "Derby", 2799, 25, "Monarch", "Men", "Black"},
	},
	domain.VariantWomensShoe: {
		{"Chelsea Boot", "Boots", "Chelsea", 2299, 18, "Stride", "Women", "Tan"},
		{"Ankle Boot", "Boots", "Ankle", 1999, 12, "Aria", "Women", "Black"},
		{"Block Heel Pump", "Heels", "Block", 1699, 30, "Aria", "Women", "Nude"},
		{"Everyday Slip-On", "Flats", "Slip-On", 999, 0, "Veloce", "Women", "Grey"},
		{"Studio Trainer", "Sneakers", "Low Top", 2099, 15, "Veloce", "Women", "Pink"},
	},
	domain.VariantKidsShoe: {
		{"Rain Boot", "Boots", "Rain", 899, 10, "Sprout", "Kids", "Yellow"},
		{"Playground Sneaker", "Sneakers", "Velcro", 799, 0, "Sprout", "Kids", "Blue"},
		{"School Black Shoe", "School Shoes", "Lace-Up", 1099, 20, "Sprout", "Kids", "Black"},
	},
	domain.VariantShoeAccessory: {
		{"Cedar Shoe Tree", "Shoe Care", "", 599, 0, "Monarch", "", "Natural"},
		{"Leather Care Kit", "Shoe Care", "", 749, 10, "Monarch", "", ""},
		{"Cushion Insole Pair", "Insoles", "", 349, 0, "Stride", "", "White"},
	},
}

func tableFor(tag domain.VariantTag) string {
	switch tag {
	case domain.VariantMensShoe:
		return "mens_shoes"
	case domain.VariantWomensShoe:
		return "womens_shoes"
	case domain.VariantKidsShoe:
		return "kids_shoes"
	default:
		return "shoe_accessories"
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.Postgres().DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	total := 0
	for tag, products := range seedData {
		category := tag.Category().DisplayName()
		for _, p := range products {
			if err := insertProduct(ctx, pool, tableFor(tag), category, p); err != nil {
				log.Fatalf("seed %s %q: %v", tag, p.title, err)
			}
			total++
		}
	}

	fmt.Printf("seeded %d products\n", total)
}

func insertProduct(ctx context.Context, pool *pgxpool.Pool, table, category string, p seedProduct) error {
	info := map[string]string{}
	if p.brand != "" {
		info["brand"] = p.brand
	}
	if p.gender != "" {
		info["gender"] = p.gender
	}
	if p.color != "" {
		info["color"] = p.color
	}
	infoJSON, err := json.Marshal(info)
	if err != nil {
		return err
	}

	slug := strings.ToLower(strings.ReplaceAll(p.title, " ", "-"))
	images := []string{
		fmt.Sprintf("https://cdn.stylegenz.in/products/%s-1.jpg", slug),
		fmt.Sprintf("https://cdn.stylegenz.in/products/%s-2.jpg", slug),
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (title, price, discount_percent, category, sub_category, sub_sub_category,
			images, rating, ratings_count, in_stock, on_sale, product_info)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`, table)

	_, err = pool.Exec(ctx, query,
		p.title, p.price, p.discountPercent, category, p.subCategory, p.subSubCategory,
		images, 3.5+rand.Float64()*1.5, rand.Intn(500), true, p.discountPercent > 0, infoJSON,
	)
	return err
}
