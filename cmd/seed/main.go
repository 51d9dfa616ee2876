package main

import (
	"log"
	"os"
	"time"

	"tallervehicular/internal/database"
	"tallervehicular/internal/domain"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "taller.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM movimientos")
	db.Exec("DELETE FROM orden_repuestos")
	db.Exec("DELETE FROM orden_servicios")
	db.Exec("DELETE FROM ordenes")
	db.Exec("DELETE FROM planes_mantenimiento")
	db.Exec("DELETE FROM repuestos")
	db.Exec("DELETE FROM servicios")
	db.Exec("DELETE FROM vehiculos")
	db.Exec("DELETE FROM clientes")
	db.Exec("DELETE FROM tokens_recuperacion")
	db.Exec("DELETE FROM usuarios")

	// ================== USUARIOS ==================
	log.Println("Creating users...")

	crearUsuario := func(username, email, password, nombre string, rol domain.RolUsuario) domain.Usuario {
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		u := domain.Usuario{
			Username:     username,
			Email:        email,
			PasswordHash: string(hash),
			Nombre:       nombre,
			Rol:          rol,
		}
		db.Create(&u)
		log.Printf("  %s created: %s / %s", rol, username, password)
		return u
	}

	crearUsuario("admin", "admin@taller.pe", "admin123", "Administrador", domain.RolAdmin)
	tecnico := crearUsuario("jvaldez", "jvaldez@taller.pe", "tecnico123", "Jorge Valdez", domain.RolTecnico)
	almacen := crearUsuario("mrojas", "mrojas@taller.pe", "almacen123", "Milagros Rojas", domain.RolAlmacen)

	// ================== CLIENTES ==================
	log.Println("Creating clients...")

	transportes := domain.Cliente{
		TipoDocumento:   domain.DocumentoRUC,
		NumeroDocumento: "20456789012",
		RazonSocial:     "Transportes Andinos SAC",
		Nombres:         "Transportes Andinos SAC",
		Telefono:        "+51 984 123 456",
		Email:           "operaciones@tandinos.pe",
		Direccion:       "Av. Industrial 1245, Arequipa",
	}
	db.Create(&transportes)

	conductor := domain.Cliente{
		TipoDocumento:   domain.DocumentoDNI,
		NumeroDocumento: "45678912",
		Nombres:         "María",
		Apellidos:       "Quispe Mamani",
		Telefono:        "+51 958 765 432",
	}
	db.Create(&conductor)

	// ================== VEHICULOS ==================
	log.Println("Creating vehicles...")

	km1, hr1 := 145200, 4120.5
	volquete := domain.Vehiculo{
		Placa:          "ABC-123",
		NumeroVehiculo: "VOL-01",
		Marca:          "Volvo",
		Modelo:         "FMX 8x4",
		Anio:           2019,
		Color:          "Amarillo",
		Kilometraje:    &km1,
		Horometro:      &hr1,
		ClienteID:      &transportes.ID,
	}
	db.Create(&volquete)

	km2 := 98300
	camioneta := domain.Vehiculo{
		Placa:       "XYZ-789",
		Marca:       "Toyota",
		Modelo:      "Hilux",
		Anio:        2021,
		Color:       "Blanco",
		Kilometraje: &km2,
		ClienteID:   &conductor.ID,
	}
	db.Create(&camioneta)

	// ================== SERVICIOS ==================
	log.Println("Creating service catalog...")

	servicios := []domain.Servicio{
		{Codigo: "MP-001", Nombre: "Mantenimiento preventivo 5000 km", TiempoEstimado: 180, Activo: true},
		{Codigo: "CF-002", Nombre: "Cambio de filtros y aceite", TiempoEstimado: 90, Activo: true},
		{Codigo: "FR-003", Nombre: "Revisión de frenos", TiempoEstimado: 120, Activo: true},
		{Codigo: "SL-004", Nombre: "Soldadura de tolva", TiempoEstimado: 240, Activo: false},
	}
	for i := range servicios {
		db.Create(&servicios[i])
	}

	// ================== REPUESTOS ==================
	log.Println("Creating parts...")

	repuestos := []domain.Repuesto{
		{Codigo: "FIL-001", Nombre: "Filtro de aceite", Marca: "Fleetguard", StockActual: 24, StockMinimo: 10, PrecioCompra: 35, PrecioVenta: 55, Ubicacion: "A-01", Activo: true},
		{Codigo: "FIL-002", Nombre: "Filtro de aire", Marca: "Donaldson", StockActual: 8, StockMinimo: 10, PrecioCompra: 85, PrecioVenta: 120, Ubicacion: "A-02", Activo: true},
		{Codigo: "ACE-010", Nombre: "Aceite 15W-40 (balde)", Marca: "Mobil", StockActual: 15, StockMinimo: 6, PrecioCompra: 240, PrecioVenta: 310, Ubicacion: "B-01", Activo: true},
		{Codigo: "FAJ-002", Nombre: "Faja de alternador", Marca: "Gates", StockActual: 4, StockMinimo: 4, PrecioCompra: 60, PrecioVenta: 95, Ubicacion: "C-03", Activo: true},
	}
	for i := range repuestos {
		db.Create(&repuestos[i])
	}

	// Opening stock entries so the ledger explains the balances.
	for i := range repuestos {
		db.Create(&domain.Movimiento{
			RepuestoID: repuestos[i].ID,
			Tipo:       domain.MovimientoEntrada,
			Cantidad:   repuestos[i].StockActual,
			Motivo:     "Inventario inicial",
			UsuarioID:  &almacen.ID,
		})
	}

	// ================== ORDENES ==================
	log.Println("Creating work orders...")

	ingreso := time.Now().AddDate(0, 0, -7)
	fin := time.Now().AddDate(0, 0, -5)
	kmOrden := 145000
	hrOrden := 4100.0
	completada := domain.Orden{
		Numero:            "OT-2026-0001",
		Tipo:              domain.OrdenPreventiva,
		Estado:            domain.OrdenCompletada,
		FechaIngreso:      ingreso,
		FechaFinalizacion: &fin,
		Diagnostico:       "Mantenimiento programado de 5000 km",
		KilometrajeActual: &kmOrden,
		HorometroActual:   &hrOrden,
		VehiculoID:        volquete.ID,
		ClienteID:         &transportes.ID,
		Servicios: []domain.OrdenServicio{
			{ServicioID: servicios[0].ID, Cantidad: 1},
			{ServicioID: servicios[1].ID, Cantidad: 1},
		},
		Repuestos: []domain.OrdenRepuesto{
			{RepuestoID: repuestos[0].ID, Cantidad: 1},
			{RepuestoID: repuestos[2].ID, Cantidad: 2},
		},
	}
	db.Create(&completada)

	enProceso := domain.Orden{
		Numero:            "OT-2026-0002",
		Tipo:              domain.OrdenCorrectiva,
		Estado:            domain.OrdenEnProceso,
		FechaIngreso:      time.Now().AddDate(0, 0, -1),
		Diagnostico:       "Ruido en tren delantero",
		KilometrajeActual: &km2,
		VehiculoID:        camioneta.ID,
		ClienteID:         &conductor.ID,
		Servicios: []domain.OrdenServicio{
			{ServicioID: servicios[2].ID, Cantidad: 1},
		},
	}
	db.Create(&enProceso)

	db.Create(&domain.Movimiento{
		RepuestoID: repuestos[0].ID,
		Tipo:       domain.MovimientoSalida,
		Cantidad:   1,
		Motivo:     "Orden OT-2026-0001",
		UsuarioID:  &tecnico.ID,
	})
	db.Create(&domain.Movimiento{
		RepuestoID: repuestos[2].ID,
		Tipo:       domain.MovimientoSalida,
		Cantidad:   2,
		Motivo:     "Orden OT-2026-0001",
		UsuarioID:  &tecnico.ID,
	})

	// ================== MANTENIMIENTO ==================
	log.Println("Creating maintenance plans...")

	proximoKm := kmOrden + 5000
	proximoHr := hrOrden + 250
	proximaFecha := fin.AddDate(0, 0, 90)
	db.Create(&domain.PlanMantenimiento{
		VehiculoID:           volquete.ID,
		TipoControl:          domain.ControlMixto,
		IntervaloKilometraje: 5000,
		IntervaloHoras:       250,
		IntervaloDias:        90,
		ProximoKilometraje:   &proximoKm,
		ProximoHorometro:     &proximoHr,
		ProximaFecha:         &proximaFecha,
		UltimoMantenimiento:  &fin,
	})

	log.Println("Seed completed")
}
