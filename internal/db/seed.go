package db

import (
	"fmt"
	"log"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/WNjihia/home-showcase/internal/models"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

// Seed populates the store with the sample showcase property and its rooms.
// It is idempotent: when any property already exists it does nothing, so it
// is safe to run on every startup. The property and all rooms are inserted
// in a single transaction.
func Seed(database *gorm.DB) error {
	var count int64
	if err := database.Model(&models.Property{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check for existing property: %w", err)
	}
	if count > 0 {
		return nil
	}

	err := database.Transaction(func(tx *gorm.DB) error {
		property := &models.Property{
			Address:     "Nijlanstate 54",
			City:        "Leeuwarden",
			State:       "Friesland",
			ZipCode:     "8934 AH",
			Price:       195000,
			Bedrooms:    1,
			Bathrooms:   1,
			Sqft:        753,
			YearBuilt:   1975,
			LotSize:     floatPtr(0.0),
			Description: "Charming apartment with beautiful views over the river and surrounding green spaces. This well-maintained home features a spacious living room with large windows providing abundant natural light, a functional kitchen, comfortable bedroom with built-in wardrobes, and a private balcony perfect for enjoying the scenic views.",
			Features: datatypes.NewJSONSlice([]string{
				"River views",
				"Private balcony",
				"Built-in wardrobes",
				"Central heating",
				"Elevator access",
				"Storage unit",
			}),
			Images: datatypes.NewJSONSlice([]string{
				"/src/assets/846_2160.jpg",
				"/src/assets/832_2160.jpg",
				"/src/assets/860_2160.jpg",
			}),
		}
		if err := tx.Create(property).Error; err != nil {
			return err
		}

		rooms := []models.Room{
			{
				PropertyID:  property.ID,
				Name:        "Living Room",
				RoomType:    "living",
				Description: "Spacious living room with large panoramic windows offering stunning views of the river and surrounding landscape. Features elegant furnishings, comfortable seating area, and excellent natural light throughout the day.",
				Dimensions:  strPtr("3.96m x 7.10m"),
				Features: datatypes.NewJSONSlice([]string{
					"Panoramic windows", "River views", "Natural light", "Radiator heating",
				}),
				Images: datatypes.NewJSONSlice([]string{
					"/src/assets/860_2160.jpg", "/src/assets/861_2160.jpg", "/src/assets/863_2160.jpg", "/src/assets/824_2160.jpg",
				}),
				DisplayOrder: 1,
			},
			{
				PropertyID:  property.ID,
				Name:        "Bedroom",
				RoomType:    "bedroom",
				Description: "Comfortable bedroom with built-in floor-to-ceiling wardrobes providing ample storage space. Features access to the balcony and receives plenty of natural light.",
				Dimensions:  strPtr("3.03m x 4.94m"),
				Features: datatypes.NewJSONSlice([]string{
					"Built-in wardrobes", "Balcony access", "Natural light", "Carpet flooring",
				}),
				Images: datatypes.NewJSONSlice([]string{
					"/src/assets/864_2160.jpg", "/src/assets/831_2160.jpg", "/src/assets/865_2160.jpg",
				}),
				DisplayOrder: 2,
			},
			{
				PropertyID:  property.ID,
				Name:        "Kitchen",
				RoomType:    "kitchen",
				Description: "Functional L-shaped kitchen with cream-colored cabinetry and wooden trim. Includes ample counter space, built-in storage, and all essential appliances.",
				Dimensions:  strPtr("2.43m x 1.98m"),
				Features: datatypes.NewJSONSlice([]string{
					"L-shaped layout", "Built-in cabinets", "Tile backsplash", "Counter space",
				}),
				Images: datatypes.NewJSONSlice([]string{
					"/src/assets/825_2160.jpg", "/src/assets/855_2160.jpg",
				}),
				DisplayOrder: 3,
			},
			{
				PropertyID:  property.ID,
				Name:        "Bathroom",
				RoomType:    "bathroom",
				Description: "Modern bathroom with corner shower enclosure, vanity with mirror cabinet, and in-unit washing machine. Finished with neutral tiles and practical storage solutions.",
				Dimensions:  strPtr("3.03m x 1.98m"),
				Features: datatypes.NewJSONSlice([]string{
					"Corner shower", "Vanity with mirror", "Washing machine", "Heated towel rail",
				}),
				Images: datatypes.NewJSONSlice([]string{
					"/src/assets/826_2160.jpg", "/src/assets/856_2160.jpg",
				}),
				DisplayOrder: 4,
			},
			{
				PropertyID:  property.ID,
				Name:        "Hallway",
				RoomType:    "hallway",
				Description: "Entry hallway with coat storage area and access to all rooms. Clean and functional space connecting the living areas.",
				Dimensions:  strPtr("1.43m x 1.98m"),
				Features: datatypes.NewJSONSlice([]string{
					"Coat storage", "Central access",
				}),
				Images: datatypes.NewJSONSlice([]string{
					"/src/assets/853_2160.jpg",
				}),
				DisplayOrder: 5,
			},
			{
				PropertyID:  property.ID,
				Name:        "Balcony",
				RoomType:    "balcony",
				Description: "Private balcony with beautiful views over the river and green surroundings. Perfect for enjoying morning coffee or evening relaxation.",
				Dimensions:  strPtr("3.03m x 1.26m"),
				Features: datatypes.NewJSONSlice([]string{
					"River views", "Private outdoor space",
				}),
				Images: datatypes.NewJSONSlice([]string{
					"/src/assets/866_2160.jpg",
				}),
				DisplayOrder: 6,
			},
			{
				PropertyID:  property.ID,
				Name:        "Storage",
				RoomType:    "storage",
				Description: "Built-in storage closet with shelving and utility connections. Houses the electrical panel and provides additional storage space.",
				Dimensions:  strPtr("1.5m x 1.0m"),
				Features: datatypes.NewJSONSlice([]string{
					"Utility connections", "Shelving", "Electrical panel",
				}),
				Images: datatypes.NewJSONSlice([]string{
					"/src/assets/873_2160.jpg",
				}),
				DisplayOrder: 7,
			},
		}
		return tx.Create(&rooms).Error
	})
	if err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	log.Println("Database seeded with sample property data")
	return nil
}
