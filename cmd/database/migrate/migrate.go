package migration

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"sorteat-backend/entities"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	models := []interface{}{
		&entities.Household{},
		&entities.Member{},
		&entities.Product{},
		&entities.ReceiptScan{},
		&entities.ShoppingItem{},
		&entities.Recipe{},
		&entities.Meal{},
		&entities.WasteStats{},
		&entities.WasteEvent{},
		&entities.Notification{},
		&entities.PaymentTransaction{},
	}

	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			log.Fatalf("Error migrating database: %v", err)
			return err
		}
	}

	fmt.Println("Database migration complete")
	return nil
}
