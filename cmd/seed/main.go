package main

import (
	"github.com/subhe-sadik/shop-api/internal/config"
	"github.com/subhe-sadik/shop-api/internal/logger"
	"github.com/subhe-sadik/shop-api/internal/models"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("failed to migrate database: %v", err)
	}

	categories := []models.Category{
		{Slug: "honey", Name: "Honey", IsActive: true, SortOrder: 1},
		{Slug: "dates", Name: "Dates", IsActive: true, SortOrder: 2},
		{Slug: "ghee-oil", Name: "Ghee & Oil", IsActive: true, SortOrder: 3},
		{Slug: "nuts-seeds", Name: "Nuts & Seeds", IsActive: true, SortOrder: 4},
	}

	for _, cat := range categories {
		var existing models.Category
		if err := models.DB.Where("slug = ?", cat.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&cat).Error; err != nil {
				stdLog.Printf("failed to create category %s: %v", cat.Slug, err)
			} else {
				stdLog.Printf("created category: %s", cat.Slug)
			}
		} else {
			stdLog.Printf("category already exists: %s", cat.Slug)
		}
	}

	categoryIDs := map[string]uint{}
	var categoryList []models.Category
	if err := models.DB.Where("slug IN ?", []string{"honey", "dates", "ghee-oil", "nuts-seeds"}).Find(&categoryList).Error; err != nil {
		stdLog.Fatalf("failed to load categories: %v", err)
	}
	for _, cat := range categoryList {
		categoryIDs[cat.Slug] = cat.ID
	}

	products := []models.Product{
		{
			CategoryID:  categoryIDs["honey"],
			Slug:        "sundarban-honey",
			Name:        "Sundarban Raw Honey",
			Description: "Raw honey collected from the Sundarbans mangrove forest.",
			Features:    models.StringArray{"100% raw and unprocessed", "Collected by local beekeepers", "No added sugar"},
			Images:      models.StringArray{"/uploads/product/sundarban-honey.jpg"},
			HasVariants: true,
			Variants: models.ProductVariants{
				{Name: "250g", Price: models.NewMoneyFromInt(350), InStock: true},
				{Name: "500g", Price: models.NewMoneyFromInt(600), InStock: true},
				{Name: "1kg", Price: models.NewMoneyFromInt(1100), InStock: true},
			},
			Price:     models.NewMoneyFromInt(350),
			InStock:   true,
			IsActive:  true,
			SortOrder: 1,
		},
		{
			CategoryID:  categoryIDs["honey"],
			Slug:        "mustard-flower-honey",
			Name:        "Mustard Flower Honey",
			Description: "Seasonal honey from mustard fields, mildly crystallized.",
			Features:    models.StringArray{"Single-origin", "Harvested in winter"},
			Images:      models.StringArray{"/uploads/product/mustard-honey.jpg"},
			HasVariants: true,
			Variants: models.ProductVariants{
				{Name: "500g", Price: models.NewMoneyFromInt(450), InStock: true},
				{Name: "1kg", Price: models.NewMoneyFromInt(850), InStock: true},
			},
			Price:     models.NewMoneyFromInt(450),
			InStock:   true,
			IsActive:  true,
			SortOrder: 2,
		},
		{
			CategoryID:  categoryIDs["dates"],
			Slug:        "ajwa-dates",
			Name:        "Ajwa Dates",
			Description: "Premium Ajwa dates imported from Madinah.",
			Features:    models.StringArray{"Soft texture", "Naturally sweet"},
			Images:      models.StringArray{"/uploads/product/ajwa-dates.jpg"},
			HasVariants: true,
			Variants: models.ProductVariants{
				{Name: "500g", Price: models.NewMoneyFromInt(950), InStock: true},
				{Name: "1kg", Price: models.NewMoneyFromInt(1800), InStock: true},
			},
			Price:     models.NewMoneyFromInt(950),
			InStock:   true,
			IsActive:  true,
			SortOrder: 1,
		},
		{
			CategoryID:  categoryIDs["dates"],
			Slug:        "mariam-dates",
			Name:        "Mariam Dates",
			Description: "Sweet Mariam dates, ideal for iftar and daily snacking.",
			Images:      models.StringArray{"/uploads/product/mariam-dates.jpg"},
			Price:       models.NewMoneyFromInt(650),
			InStock:     true,
			IsActive:    true,
			SortOrder:   2,
		},
		{
			CategoryID:  categoryIDs["ghee-oil"],
			Slug:        "pure-cow-ghee",
			Name:        "Pure Cow Ghee",
			Description: "Traditional ghee made from grass-fed cow milk.",
			Features:    models.StringArray{"Slow-cooked", "No preservatives"},
			Images:      models.StringArray{"/uploads/product/cow-ghee.jpg"},
			HasVariants: true,
			Variants: models.ProductVariants{
				{Name: "250g", Price: models.NewMoneyFromInt(700), InStock: true},
				{Name: "500g", Price: models.NewMoneyFromInt(1350), InStock: true},
			},
			Price:     models.NewMoneyFromInt(700),
			InStock:   true,
			IsActive:  true,
			SortOrder: 1,
		},
		{
			CategoryID:  categoryIDs["ghee-oil"],
			Slug:        "mustard-oil",
			Name:        "Cold-Pressed Mustard Oil",
			Description: "Wood-pressed mustard oil from local seeds.",
			Images:      models.StringArray{"/uploads/product/mustard-oil.jpg"},
			Price:       models.NewMoneyFromInt(400),
			InStock:     true,
			IsActive:    true,
			SortOrder:   2,
		},
		{
			CategoryID:  categoryIDs["nuts-seeds"],
			Slug:        "mixed-nuts",
			Name:        "Premium Mixed Nuts",
			Description: "Almonds, cashews, pistachios and walnuts in one jar.",
			Images:      models.StringArray{"/uploads/product/mixed-nuts.jpg"},
			Price:       models.NewMoneyFromInt(1200),
			InStock:     true,
			IsActive:    true,
			SortOrder:   1,
		},
	}

	for _, product := range products {
		if product.CategoryID == 0 {
			stdLog.Printf("skipping product %s: category missing", product.Slug)
			continue
		}
		var existing models.Product
		if err := models.DB.Where("slug = ?", product.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&product).Error; err != nil {
				stdLog.Printf("failed to create product %s: %v", product.Slug, err)
			} else {
				stdLog.Printf("created product: %s", product.Slug)
			}
		} else {
			stdLog.Printf("product already exists: %s", product.Slug)
		}
	}

	stdLog.Println("seed complete")
}
