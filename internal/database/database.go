package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"tallervehicular/internal/domain"

	_ "modernc.org/sqlite"
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// Migrate keeps the schema current for every aggregate the service owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Usuario{},
		&domain.TokenRecuperacion{},
		&domain.Cliente{},
		&domain.Vehiculo{},
		&domain.Servicio{},
		&domain.Repuesto{},
		&domain.Movimiento{},
		&domain.Orden{},
		&domain.OrdenServicio{},
		&domain.OrdenRepuesto{},
		&domain.PlanMantenimiento{},
	)
}
