package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"tallervehicular/internal/database"
	"tallervehicular/internal/middleware"
	"tallervehicular/internal/modules/auth"
	"tallervehicular/internal/modules/cliente"
	"tallervehicular/internal/modules/mantenimiento"
	"tallervehicular/internal/modules/orden"
	"tallervehicular/internal/modules/reporte"
	"tallervehicular/internal/modules/repuesto"
	"tallervehicular/internal/modules/servicio"
	"tallervehicular/internal/modules/vehiculo"
	jwtsvc "tallervehicular/internal/pkg/jwt"
	"tallervehicular/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	usuarioRepo := repository.NewUsuarioRepository(db)
	recuperacionRepo := repository.NewRecuperacionRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	vehiculoRepo := repository.NewVehiculoRepository(db)
	servicioRepo := repository.NewServicioRepository(db)
	repuestoRepo := repository.NewRepuestoRepository(db)
	ordenRepo := repository.NewOrdenRepository(db)
	mantenimientoRepo := repository.NewMantenimientoRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)

	authService := auth.NewService(usuarioRepo, recuperacionRepo, j)
	authHandler := auth.NewHandler(authService)

	padron := cliente.NewPadronClient(
		getenv("PADRON_API_URL", "https://api.apis.net.pe"),
		os.Getenv("PADRON_API_TOKEN"),
	)
	clienteService := cliente.NewService(clienteRepo, padron)
	clienteHandler := cliente.NewHandler(clienteService)

	vehiculoService := vehiculo.NewService(vehiculoRepo)
	vehiculoHandler := vehiculo.NewHandler(vehiculoService)

	servicioService := servicio.NewService(servicioRepo)
	servicioHandler := servicio.NewHandler(servicioService)

	repuestoService := repuesto.NewService(repuestoRepo)
	repuestoHandler := repuesto.NewHandler(repuestoService)

	mantenimientoService := mantenimiento.NewService(mantenimientoRepo, vehiculoRepo, ordenRepo)
	mantenimientoHandler := mantenimiento.NewHandler(mantenimientoService)

	ordenService := orden.NewService(ordenRepo, vehiculoRepo, repuestoRepo, mantenimientoService)
	ordenHandler := orden.NewHandler(ordenService)

	reporteService := reporte.NewService(
		ordenRepo,
		vehiculoRepo,
		clienteRepo,
		servicioRepo,
		repuestoRepo,
		mantenimientoService,
	)
	reporteHandler := reporte.NewHandler(reporteService)

	r := gin.New()
	r.Use(gin.Logger(), middleware.CORS(), middleware.ErrorLogger())

	root := r.Group("/")
	{
		authHandler.RegisterPublicRoutes(root)

		protegido := root.Group("/")
		protegido.Use(middleware.JWTAuth(j))
		{
			clienteHandler.RegisterRoutes(protegido)
			vehiculoHandler.RegisterRoutes(protegido)
			servicioHandler.RegisterRoutes(protegido)
			ordenHandler.RegisterRoutes(protegido)
			mantenimientoHandler.RegisterRoutes(protegido)
			reporteHandler.RegisterRoutes(protegido)

			repuestoHandler.RegisterReadRoutes(protegido)

			// TECNICO gets a read-only view of the inventory.
			inventario := protegido.Group("/")
			inventario.Use(middleware.InventarioWrite())
			{
				repuestoHandler.RegisterWriteRoutes(inventario)
			}

			admin := protegido.Group("/")
			admin.Use(middleware.AdminOnly())
			{
				authHandler.RegisterAdminRoutes(admin)
			}
		}
	}

	port := getenv("PORT", "8080")
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
