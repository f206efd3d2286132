package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Gaana-Shree-S/ecommerce/internal/hash"
	"github.com/Gaana-Shree-S/ecommerce/internal/models"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func pricePtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// SampleProducts is the demo catalog the storefront ships with.
func SampleProducts() []models.Product {
	return []models.Product{
		{
			Name:          "Wireless Bluetooth Headphones",
			Price:         price("6499.99"),
			OriginalPrice: pricePtr("7999.99"),
			Image:         "/placeholder-nb6yc.png",
			Category:      "Electronics",
			Rating:        4.5,
			InStock:       true,
			Description:   "Experience immersive sound with these premium wireless Bluetooth headphones. Designed for comfort and long battery life, perfect for music, calls, and travel.",
		},
		{
			Name:        "Premium Cotton T-Shirt",
			Price:       price("1999.99"),
			Image:       "/premium-cotton-t-shirt.png",
			Category:    "Clothing",
			Rating:      4.2,
			InStock:     true,
			Description: "Stay cool and stylish with our premium cotton T-shirt. Made from 100% breathable cotton, offering ultimate comfort and durability for daily wear.",
		},
		{
			Name:          "Smart Fitness Watch",
			Price:         price("16499.99"),
			OriginalPrice: pricePtr("20499.99"),
			Image:         "/smart-fitness-watch.png",
			Category:      "Electronics",
			Rating:        4.7,
			InStock:       true,
			Description:   "Track your health and fitness goals with this advanced smart fitness watch. Features heart rate monitoring, step tracking, notifications, and water resistance.",
		},
		{
			Name:        "Organic Coffee Beans",
			Price:       price("1549.99"),
			Image:       "/organic-coffee-beans.png",
			Category:    "Food & Beverage",
			Rating:      4.8,
			InStock:     false,
			Description: "Brew the perfect cup with our 100% organic coffee beans. Rich aroma, smooth taste, and ethically sourced for coffee lovers who value quality.",
		},
		{
			Name:          "Leather Laptop Bag",
			Price:         price("7299.99"),
			OriginalPrice: pricePtr("9999"),
			Image:         "/leather-laptop-bag.png",
			Category:      "Accessories",
			Rating:        4.3,
			InStock:       true,
			Description:   "Crafted from genuine leather, this laptop bag is both stylish and durable. Features padded compartments, multiple pockets, and a professional look.",
		},
		{
			Name:        "Wireless Phone Charger",
			Price:       price("2849.99"),
			Image:       "/placeholder-os1yn.png",
			Category:    "Electronics",
			Rating:      4.1,
			InStock:     true,
			Description: "Convenient and fast wireless charging for your smartphone. Sleek design, safe charging technology, and compatible with most Qi-enabled devices.",
		},
		{
			Name:        "Yoga Mat Premium",
			Price:       price("3749.99"),
			Image:       "/premium-yoga-mat.png",
			Category:    "Sports & Fitness",
			Rating:      4.6,
			InStock:     true,
			Description: "Enhance your workouts with this premium yoga mat. Extra thick, anti-slip surface provides comfort and stability for yoga, pilates, and floor exercises.",
		},
		{
			Name:          "Stainless Steel Water Bottle",
			Price:         price("1849.99"),
			OriginalPrice: pricePtr("2449.99"),
			Image:         "/stainless-steel-bottle.png",
			Category:      "Sports & Fitness",
			Rating:        4.4,
			InStock:       true,
			Description:   "Keep your drinks hot or cold for hours with this insulated stainless steel water bottle. Eco-friendly, reusable, and perfect for workouts or travel.",
		},
	}
}

const (
	AdminEmail    = "admin@swadeshi.com"
	AdminName     = "Admin"
	AdminPassword = "admin123"
)

// Run upserts the sample catalog (by name) and the admin account (by email);
// re-running it is a no-op for rows that already exist.
func Run(ctx context.Context, db *gorm.DB) error {
	for _, p := range SampleProducts() {
		var existing models.Product
		err := db.WithContext(ctx).Where("name = ?", p.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("seed product lookup: %w", err)
		}
		product := p
		if err := db.WithContext(ctx).Create(&product).Error; err != nil {
			return fmt.Errorf("seed product %q: %w", p.Name, err)
		}
	}

	var admin models.User
	err := db.WithContext(ctx).Where("email = ?", AdminEmail).First(&admin).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("seed admin lookup: %w", err)
	}

	pwHash, err := hash.HashPassword(AdminPassword)
	if err != nil {
		return fmt.Errorf("seed admin password: %w", err)
	}
	admin = models.User{
		Name:         AdminName,
		Email:        AdminEmail,
		PasswordHash: pwHash,
		IsAdmin:      true,
	}
	if err := db.WithContext(ctx).Create(&admin).Error; err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	return nil
}
