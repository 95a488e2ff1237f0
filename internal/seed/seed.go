package seed

import (
	"log"
	"time"

	"github.com/saborgourmet/reservation-service/internal/models"
	"gorm.io/gorm"
)

// Load fills an empty database with sample customers, tables and
// reservations. It is invoked explicitly (SEED_DATA=true or from a test
// harness), never as part of normal startup, and skips seeding when any
// table already exists.
func Load(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Table{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("[seed] database already has tables, skipping")
		return nil
	}

	customers := []models.Customer{
		{Name: "Juan García", Email: "juan.garcia@email.com", Phone: "912345678"},
		{Name: "María López", Email: "maria.lopez@email.com", Phone: "987654321"},
		{Name: "Pedro Martínez", Email: "pedro.martinez@email.com", Phone: "945612378"},
	}
	if err := db.Create(&customers).Error; err != nil {
		return err
	}

	tables := []models.Table{
		{Number: 1, Capacity: 2, Active: true},
		{Number: 2, Capacity: 4, Active: true},
		{Number: 3, Capacity: 6, Active: true},
		{Number: 4, Capacity: 8, Active: true},
		{Number: 5, Capacity: 10, Active: false}, // out for maintenance
	}
	if err := db.Create(&tables).Error; err != nil {
		return err
	}

	today := time.Now().Format("2006-01-02")
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	reservations := []models.Reservation{
		{Date: today, Time: "19:30", PartySize: 2, Status: models.StatusActive, CustomerID: customers[0].ID, TableID: tables[0].ID},
		{Date: today, Time: "20:00", PartySize: 4, Status: models.StatusActive, CustomerID: customers[1].ID, TableID: tables[1].ID},
		{Date: tomorrow, Time: "19:00", PartySize: 6, Status: models.StatusActive, CustomerID: customers[2].ID, TableID: tables[2].ID},
	}
	if err := db.Create(&reservations).Error; err != nil {
		return err
	}

	log.Printf("[seed] created %d customers, %d tables, %d reservations",
		len(customers), len(tables), len(reservations))
	return nil
}
