package data

import (
	"context"
	"time"

	"solar-shop/internal/data/entity"
	"solar-shop/internal/data/repository"
	"solar-shop/pkg/utils"

	"go.uber.org/zap"
)

// Seed populates an empty database with the default super admin account and
// sample catalog content. A non-empty users table means the database is
// already initialized and nothing is touched.
func Seed(ctx context.Context, repo *repository.Repository, log *zap.Logger) error {
	count, err := repo.User.CountAll(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Info("Empty database, seeding initial data")

	passwordHash, err := utils.HashPassword("admin123")
	if err != nil {
		return err
	}

	now := time.Now()
	admin := &entity.User{
		BaseSimple:   entity.BaseSimple{CreatedAt: now},
		Username:     "admin",
		Email:        "admin@limpiastech.com",
		PasswordHash: passwordHash,
		FullName:     "Admin User",
		Role:         entity.RoleSuperAdmin,
	}
	if err := repo.User.Create(ctx, admin); err != nil {
		return err
	}

	products := []*entity.Product{
		{
			Name:        "Premium Solar Panel 400W",
			Description: "High-efficiency monocrystalline solar panel with 25-year performance warranty.",
			Price:       349.99,
			Category:    "Solar Panels",
			Specifications: entity.Specifications{
				"power":      "400W",
				"efficiency": "21.5%",
				"cells":      "144 half-cut monocrystalline cells",
				"dimensions": "2000 x 1000 x 35 mm",
			},
			Stock:    50,
			Featured: true,
		},
		{
			Name:        "SmartInvert Pro 5kW",
			Description: "Hybrid solar inverter with battery backup capability and smart monitoring.",
			Price:       1299.99,
			Category:    "Inverters",
			Specifications: entity.Specifications{
				"power":      "5kW",
				"efficiency": "98%",
				"mppt":       "2 MPPT trackers",
				"warranty":   "10 years",
			},
			Stock:    25,
			Featured: true,
		},
		{
			Name:        "EcoHeat Solar 200L",
			Description: "Evacuated tube solar water heater with 200-liter capacity for residential use.",
			Price:       899.99,
			Category:    "Water Heaters",
			Specifications: entity.Specifications{
				"capacity":  "200L",
				"tubes":     "20 evacuated tubes",
				"tank":      "Stainless steel, insulated",
				"mountType": "Roof or ground mounted",
			},
			Stock:    15,
			Featured: true,
		},
		{
			Name:        "SolarPump 3HP",
			Description: "3HP submersible solar water pump for agriculture and domestic applications.",
			Price:       749.99,
			Category:    "Water Pumps",
			Specifications: entity.Specifications{
				"power":    "3HP",
				"maxHead":  "80m",
				"flow":     "10,000L/hour",
				"material": "Stainless steel",
			},
			Stock:    20,
			Featured: true,
		},
	}

	for _, product := range products {
		product.CreatedAt = now
		product.UpdatedAt = now
		if err := repo.Product.Create(ctx, product); err != nil {
			return err
		}
	}

	posts := []*entity.BlogPost{
		{
			Title:   "The Benefits of Solar Energy for Residential Properties",
			Content: "Discover how installing solar panels can significantly reduce your electricity bills and increase your property value while contributing to a greener planet.",
		},
		{
			Title:   "How Solar Water Pumps Revolutionize Agriculture",
			Content: "Solar water pumps are changing the face of agriculture by providing reliable irrigation solutions that are both cost-effective and environmentally friendly.",
		},
		{
			Title:   "Choosing the Right Solar Inverter for Your Home",
			Content: "Learn about the different types of solar inverters available and how to select the most suitable one for your specific energy needs and budget.",
		},
	}

	for _, post := range posts {
		post.AuthorID = admin.ID
		post.IsApproved = true
		post.CreatedAt = now
		post.UpdatedAt = now
		if err := repo.BlogPost.Create(ctx, post); err != nil {
			return err
		}
	}

	log.Info("Seed completed",
		zap.Int64("admin_id", admin.ID),
		zap.Int("products", len(products)),
		zap.Int("blog_posts", len(posts)),
	)

	return nil
}
