package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"tallervehicular/internal/database"
	"tallervehicular/internal/domain"
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

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type testSuite struct {
	router *gin.Engine
	db     *gorm.DB

	adminToken   string
	tecnicoToken string
	almacenToken string
}

type errorBody struct {
	Success bool `json:"success"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// padronStub answers registry lookups without hitting the network.
type padronStub struct{}

func (padronStub) ConsultarRUC(_ context.Context, ruc string) (*cliente.PadronRUC, error) {
	if ruc != "20456789012" {
		return nil, cliente.ErrPadronNoEncontrado
	}
	return &cliente.PadronRUC{RUC: ruc, RazonSocial: "Transportes Andinos SAC", Estado: "ACTIVO"}, nil
}

func (padronStub) ConsultarDNI(_ context.Context, dni string) (*cliente.PadronDNI, error) {
	if dni != "45678912" {
		return nil, cliente.ErrPadronNoEncontrado
	}
	return &cliente.PadronDNI{DNI: dni, Nombres: "María", ApellidoPaterno: "Quispe"}, nil
}

var dbCounter int64

func setupSuite(t *testing.T) *testSuite {
	t.Helper()

	dsn := fmt.Sprintf("file:e2e%d?mode=memory&cache=shared", atomic.AddInt64(&dbCounter, 1))
	db, err := database.Connect(dsn)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	usuarioRepo := repository.NewUsuarioRepository(db)
	recuperacionRepo := repository.NewRecuperacionRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	vehiculoRepo := repository.NewVehiculoRepository(db)
	servicioRepo := repository.NewServicioRepository(db)
	repuestoRepo := repository.NewRepuestoRepository(db)
	ordenRepo := repository.NewOrdenRepository(db)
	mantenimientoRepo := repository.NewMantenimientoRepository(db)

	j := jwtsvc.New("e2e_secret_key_32_characters_long", time.Hour)

	authHandler := auth.NewHandler(auth.NewService(usuarioRepo, recuperacionRepo, j))
	clienteHandler := cliente.NewHandler(cliente.NewService(clienteRepo, padronStub{}))
	vehiculoHandler := vehiculo.NewHandler(vehiculo.NewService(vehiculoRepo))
	servicioHandler := servicio.NewHandler(servicio.NewService(servicioRepo))
	repuestoHandler := repuesto.NewHandler(repuesto.NewService(repuestoRepo))

	mantenimientoService := mantenimiento.NewService(mantenimientoRepo, vehiculoRepo, ordenRepo)
	mantenimientoHandler := mantenimiento.NewHandler(mantenimientoService)

	ordenHandler := orden.NewHandler(orden.NewService(ordenRepo, vehiculoRepo, repuestoRepo, mantenimientoService))

	reporteHandler := reporte.NewHandler(reporte.NewService(
		ordenRepo, vehiculoRepo, clienteRepo, servicioRepo, repuestoRepo, mantenimientoService,
	))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())

	root := r.Group("/")
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

		inventario := protegido.Group("/")
		inventario.Use(middleware.InventarioWrite())
		repuestoHandler.RegisterWriteRoutes(inventario)

		admin := protegido.Group("/")
		admin.Use(middleware.AdminOnly())
		authHandler.RegisterAdminRoutes(admin)
	}

	s := &testSuite{router: r, db: db}

	s.crearUsuario(t, "admin", "admin@taller.pe", "admin123", domain.RolAdmin)
	s.crearUsuario(t, "jvaldez", "jvaldez@taller.pe", "tecnico123", domain.RolTecnico)
	s.crearUsuario(t, "mrojas", "mrojas@taller.pe", "almacen123", domain.RolAlmacen)

	s.adminToken = s.login(t, "admin", "admin123")
	s.tecnicoToken = s.login(t, "jvaldez", "tecnico123")
	s.almacenToken = s.login(t, "mrojas", "almacen123")

	return s
}

func (s *testSuite) crearUsuario(t *testing.T, username, email, password string, rol domain.RolUsuario) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, s.db.Create(&domain.Usuario{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Nombre:       username,
		Rol:          rol,
	}).Error)
}

func (s *testSuite) login(t *testing.T, usuario, password string) string {
	t.Helper()
	w := s.request(t, http.MethodPost, "/autenticacion/inicio-sesion", "", gin.H{
		"usuario":  usuario,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp auth.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func (s *testSuite) request(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorBody {
	t.Helper()
	return decode[errorBody](t, w)
}

func TestLogin(t *testing.T) {
	s := setupSuite(t)

	w := s.request(t, http.MethodPost, "/autenticacion/inicio-sesion", "", gin.H{
		"usuario":  "admin@taller.pe",
		"password": "admin123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[auth.LoginResponse](t, w)
	assert.Equal(t, "admin", resp.Username)
	assert.Equal(t, domain.RolAdmin, resp.Role)
	assert.NotEmpty(t, resp.Token)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	s := setupSuite(t)

	w := s.request(t, http.MethodPost, "/autenticacion/inicio-sesion", "", gin.H{
		"usuario":  "admin",
		"password": "equivocada",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", decodeError(t, w).Error.Code)
}

func TestRutasProtegidas_SinToken(t *testing.T) {
	s := setupSuite(t)

	w := s.request(t, http.MethodGet, "/clientes", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegistro_SoloAdmin(t *testing.T) {
	s := setupSuite(t)

	nuevo := gin.H{
		"username": "psoto",
		"email":    "psoto@taller.pe",
		"password": "soto12345",
		"nombre":   "Pedro Soto",
		"role":     "TECNICO",
	}

	w := s.request(t, http.MethodPost, "/autenticacion/registro", s.tecnicoToken, nuevo)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = s.request(t, http.MethodPost, "/autenticacion/registro", s.adminToken, nuevo)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.request(t, http.MethodGet, "/autenticacion/usuarios", s.adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	usuarios := decode[[]domain.Usuario](t, w)
	assert.Len(t, usuarios, 4)

	w = s.request(t, http.MethodGet, "/autenticacion/usuarios", s.almacenToken, nil)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestClientes_CicloCompleto(t *testing.T) {
	s := setupSuite(t)

	w := s.request(t, http.MethodPost, "/clientes", s.adminToken, gin.H{
		"tipoDocumento":   "RUC",
		"numeroDocumento": "20456789012",
		"razonSocial":     "Transportes Andinos SAC",
		"telefono":        "+51 984 123 456",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	creado := decode[domain.Cliente](t, w)
	require.NotZero(t, creado.ID)

	// Same document twice is a conflict.
	w = s.request(t, http.MethodPost, "/clientes", s.adminToken, gin.H{
		"tipoDocumento":   "RUC",
		"numeroDocumento": "20456789012",
		"razonSocial":     "Otra Empresa SAC",
	})
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "DUPLICATE", decodeError(t, w).Error.Code)

	w = s.request(t, http.MethodGet, "/clientes/documento/20456789012", s.tecnicoToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Transportes Andinos SAC", decode[domain.Cliente](t, w).RazonSocial)

	w = s.request(t, http.MethodGet, "/clientes/buscar?q=andinos", s.tecnicoToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]domain.Cliente](t, w), 1)

	w = s.request(t, http.MethodGet, fmt.Sprintf("/clientes/%d", creado.ID), s.adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestClientes_ConsultaPadron(t *testing.T) {
	s := setupSuite(t)

	w := s.request(t, http.MethodGet, "/clientes/externo/ruc/20456789012", s.adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Transportes Andinos SAC", decode[cliente.PadronRUC](t, w).RazonSocial)

	w = s.request(t, http.MethodGet, "/clientes/externo/dni/99999999", s.adminToken, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestVehiculos_CicloCompleto(t *testing.T) {
	s := setupSuite(t)

	w := s.request(t, http.MethodPost, "/clientes", s.adminToken, gin.H{
		"tipoDocumento":   "DNI",
		"numeroDocumento": "45678912",
		"nombres":         "María",
		"apellidos":       "Quispe",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	duenio := decode[domain.Cliente](t, w)

	w = s.request(t, http.MethodPost, "/vehiculos", s.adminToken, gin.H{
		"placa":       " abc-123 ",
		"marca":       "Volvo",
		"modelo":      "FMX 8x4",
		"anio":        2019,
		"kilometraje": 45000,
		"horometro":   1250.5,
		"clienteId":   duenio.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	creado := decode[domain.Vehiculo](t, w)
	assert.Equal(t, "ABC-123", creado.Placa)

	w = s.request(t, http.MethodGet, "/vehiculos/placa/ABC-123", s.tecnicoToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	obtenido := decode[domain.Vehiculo](t, w)
	require.NotNil(t, obtenido.Kilometraje)
	require.NotNil(t, obtenido.Horometro)
	assert.Equal(t, 45000, *obtenido.Kilometraje)
	assert.InDelta(t, 1250.5, *obtenido.Horometro, 0.001)

	// Duplicate plate rejected.
	w = s.request(t, http.MethodPost, "/vehiculos", s.adminToken, gin.H{
		"placa":  "ABC-123",
		"marca":  "Toyota",
		"modelo": "Hilux",
	})
	require.Equal(t, http.StatusConflict, w.Code)

	w = s.request(t, http.MethodGet, fmt.Sprintf("/vehiculos/cliente/%d", duenio.ID), s.adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]domain.Vehiculo](t, w), 1)
}

func TestRepuestos_RolesYMovimientos(t *testing.T) {
	s := setupSuite(t)

	filtro := gin.H{
		"codigo":      "FIL-001",
		"nombre":      "Filtro de aceite",
		"stockActual": 10,
		"stockMinimo": 4,
	}

	// Technicians read inventory but never write it.
	w := s.request(t, http.MethodPost, "/repuestos", s.tecnicoToken, filtro)
	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "FORBIDDEN", decodeError(t, w).Error.Code)

	w = s.request(t, http.MethodPost, "/repuestos", s.almacenToken, filtro)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	creado := decode[domain.Repuesto](t, w)

	w = s.request(t, http.MethodGet, "/repuestos", s.tecnicoToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.request(t, http.MethodPost, "/repuestos/movimientos", s.almacenToken, gin.H{
		"repuestoId": creado.ID,
		"tipo":       "SALIDA",
		"cantidad":   3,
		"motivo":     "Uso interno",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.request(t, http.MethodGet, fmt.Sprintf("/repuestos/%d", creado.ID), s.almacenToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 7, decode[domain.Repuesto](t, w).StockActual)

	// The ledger rejects what the shelf cannot cover.
	w = s.request(t, http.MethodPost, "/repuestos/movimientos", s.almacenToken, gin.H{
		"repuestoId": creado.ID,
		"tipo":       "SALIDA",
		"cantidad":   50,
	})
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "STOCK_INSUFICIENTE", decodeError(t, w).Error.Code)

	// Editing the part never touches the stock balance.
	w = s.request(t, http.MethodPut, fmt.Sprintf("/repuestos/%d", creado.ID), s.almacenToken, gin.H{
		"codigo":      "FIL-001",
		"nombre":      "Filtro de aceite premium",
		"stockActual": 999,
		"stockMinimo": 4,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, 7, decode[domain.Repuesto](t, w).StockActual)

	w = s.request(t, http.MethodGet, fmt.Sprintf("/repuestos/movimientos?repuestoId=%d", creado.ID), s.tecnicoToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]domain.Movimiento](t, w), 1)
}

// armarTaller creates the client, vehicle, catalog entry and part that the
// order tests share.
func (s *testSuite) armarTaller(t *testing.T) (vehiculoID, servicioID, repuestoID int64) {
	t.Helper()

	w := s.request(t, http.MethodPost, "/clientes", s.adminToken, gin.H{
		"tipoDocumento":   "RUC",
		"numeroDocumento": "20456789012",
		"razonSocial":     "Transportes Andinos SAC",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	duenio := decode[domain.Cliente](t, w)

	w = s.request(t, http.MethodPost, "/vehiculos", s.adminToken, gin.H{
		"placa":       "ABC-123",
		"marca":       "Volvo",
		"modelo":      "FMX 8x4",
		"kilometraje": 145200,
		"horometro":   4120.5,
		"clienteId":   duenio.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	v := decode[domain.Vehiculo](t, w)

	w = s.request(t, http.MethodPost, "/servicios", s.adminToken, gin.H{
		"codigo":         "MP-001",
		"nombre":         "Mantenimiento preventivo 5000 km",
		"tiempoEstimado": 180,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	srv := decode[domain.Servicio](t, w)

	w = s.request(t, http.MethodPost, "/repuestos", s.adminToken, gin.H{
		"codigo":      "ACE-010",
		"nombre":      "Aceite 15W-40 (balde)",
		"stockActual": 6,
		"stockMinimo": 2,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	rep := decode[domain.Repuesto](t, w)

	return v.ID, srv.ID, rep.ID
}

func TestOrdenes_CreacionDescuentaStock(t *testing.T) {
	s := setupSuite(t)
	vehiculoID, servicioID, repuestoID := s.armarTaller(t)

	w := s.request(t, http.MethodPost, "/ordenes", s.tecnicoToken, gin.H{
		"tipo":        "CORRECTIVO",
		"vehiculoId":  vehiculoID,
		"diagnostico": "Fuga de aceite en el cárter",
		"servicios":   []gin.H{{"servicioId": servicioID}},
		"repuestos":   []gin.H{{"repuestoId": repuestoID, "cantidad": 2}},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	creada := decode[domain.Orden](t, w)

	assert.Equal(t, fmt.Sprintf("OT-%d-0001", time.Now().Year()), creada.Numero)
	assert.Equal(t, domain.OrdenPendiente, creada.Estado)
	require.NotNil(t, creada.KilometrajeActual)
	assert.Equal(t, 145200, *creada.KilometrajeActual)
	require.Len(t, creada.Servicios, 1)
	assert.Equal(t, 1, creada.Servicios[0].Cantidad)

	w = s.request(t, http.MethodGet, fmt.Sprintf("/repuestos/%d", repuestoID), s.tecnicoToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 4, decode[domain.Repuesto](t, w).StockActual)

	// A second order cannot take more than what is left.
	w = s.request(t, http.MethodPost, "/ordenes", s.tecnicoToken, gin.H{
		"tipo":       "CORRECTIVO",
		"vehiculoId": vehiculoID,
		"repuestos":  []gin.H{{"repuestoId": repuestoID, "cantidad": 10}},
	})
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "STOCK_INSUFICIENTE", decodeError(t, w).Error.Code)
}

func TestOrdenes_TransicionesDeEstado(t *testing.T) {
	s := setupSuite(t)
	vehiculoID, servicioID, _ := s.armarTaller(t)

	w := s.request(t, http.MethodPost, "/ordenes", s.tecnicoToken, gin.H{
		"tipo":       "CORRECTIVO",
		"vehiculoId": vehiculoID,
		"servicios":  []gin.H{{"servicioId": servicioID}},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	creada := decode[domain.Orden](t, w)
	ruta := fmt.Sprintf("/ordenes/%d", creada.ID)

	// Cannot jump straight from PENDIENTE to COMPLETADA.
	w = s.request(t, http.MethodPut, ruta, s.tecnicoToken, gin.H{"estado": "COMPLETADA"})
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "TRANSICION_INVALIDA", decodeError(t, w).Error.Code)

	w = s.request(t, http.MethodPut, ruta, s.tecnicoToken, gin.H{"estado": "EN_PROCESO"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.request(t, http.MethodPut, ruta, s.tecnicoToken, gin.H{"estado": "COMPLETADA"})
	require.Equal(t, http.StatusOK, w.Code)
	completada := decode[domain.Orden](t, w)
	assert.Equal(t, domain.OrdenCompletada, completada.Estado)
	assert.NotNil(t, completada.FechaFinalizacion)

	// Terminal orders stay terminal.
	w = s.request(t, http.MethodPut, ruta, s.tecnicoToken, gin.H{"estado": "EN_PROCESO"})
	require.Equal(t, http.StatusConflict, w.Code)

	w = s.request(t, http.MethodPost, ruta+"/servicios", s.tecnicoToken, gin.H{
		"servicioId": servicioID,
		"cantidad":   1,
	})
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestMantenimiento_CompletarPreventivoAvanzaPlan(t *testing.T) {
	s := setupSuite(t)
	vehiculoID, servicioID, _ := s.armarTaller(t)

	w := s.request(t, http.MethodPost, "/mantenimientos/configurar", s.adminToken, gin.H{
		"vehiculoId":           vehiculoID,
		"tipoControl":          "MIXTO",
		"intervaloKilometraje": 5000,
		"intervaloHoras":       250,
		"intervaloDias":        90,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	plan := decode[domain.PlanMantenimiento](t, w)
	require.NotNil(t, plan.ProximoKilometraje)
	assert.Equal(t, 150200, *plan.ProximoKilometraje)

	km := 147000
	hr := 4200.0
	w = s.request(t, http.MethodPost, "/ordenes", s.tecnicoToken, gin.H{
		"tipo":              "PREVENTIVO",
		"vehiculoId":        vehiculoID,
		"kilometrajeActual": km,
		"horometroActual":   hr,
		"servicios":         []gin.H{{"servicioId": servicioID}},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	creada := decode[domain.Orden](t, w)
	ruta := fmt.Sprintf("/ordenes/%d", creada.ID)

	w = s.request(t, http.MethodPut, ruta, s.tecnicoToken, gin.H{"estado": "EN_PROCESO"})
	require.Equal(t, http.StatusOK, w.Code)
	w = s.request(t, http.MethodPut, ruta, s.tecnicoToken, gin.H{"estado": "COMPLETADA"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.request(t, http.MethodGet, fmt.Sprintf("/mantenimientos/vehiculo/%d", vehiculoID), s.tecnicoToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	avanzado := decode[domain.PlanMantenimiento](t, w)
	require.NotNil(t, avanzado.ProximoKilometraje)
	assert.Equal(t, km+5000, *avanzado.ProximoKilometraje)
	require.NotNil(t, avanzado.ProximoHorometro)
	assert.InDelta(t, hr+250, *avanzado.ProximoHorometro, 0.001)
	assert.NotNil(t, avanzado.UltimoMantenimiento)
}

func TestMantenimiento_Proximos(t *testing.T) {
	s := setupSuite(t)
	vehiculoID, _, _ := s.armarTaller(t)

	// Second vehicle without a plan shows up as unconfigured.
	w := s.request(t, http.MethodPost, "/vehiculos", s.adminToken, gin.H{
		"placa":  "XYZ-789",
		"marca":  "Toyota",
		"modelo": "Hilux",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// An interval barely ahead of the odometer reads as due soon.
	w = s.request(t, http.MethodPost, "/mantenimientos/configurar", s.adminToken, gin.H{
		"vehiculoId":           vehiculoID,
		"tipoControl":          "KILOMETRAJE",
		"intervaloKilometraje": 5000,
	})
	require.Equal(t, http.StatusOK, w.Code)

	res := s.db.Model(&domain.PlanMantenimiento{}).
		Where("vehiculo_id = ?", vehiculoID).
		Update("proximo_kilometraje", 145400)
	require.NoError(t, res.Error)

	w = s.request(t, http.MethodGet, "/mantenimientos/proximos", s.tecnicoToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	filas := decode[[]mantenimiento.EstadoVehiculo](t, w)
	require.Len(t, filas, 2)

	porPlaca := map[string]mantenimiento.EstadoVehiculo{}
	for _, f := range filas {
		porPlaca[f.Placa] = f
	}

	assert.Equal(t, domain.MantenimientoProximo, porPlaca["ABC-123"].Estado)
	require.NotNil(t, porPlaca["ABC-123"].KilometrajeRestante)
	assert.Equal(t, 200, *porPlaca["ABC-123"].KilometrajeRestante)
	assert.Equal(t, domain.MantenimientoSinConfigurar, porPlaca["XYZ-789"].Estado)
}

func TestOrdenes_Estadisticas(t *testing.T) {
	s := setupSuite(t)
	vehiculoID, servicioID, _ := s.armarTaller(t)

	crear := func(tipo string) domain.Orden {
		w := s.request(t, http.MethodPost, "/ordenes", s.tecnicoToken, gin.H{
			"tipo":       tipo,
			"vehiculoId": vehiculoID,
			"servicios":  []gin.H{{"servicioId": servicioID}},
		})
		require.Equal(t, http.StatusCreated, w.Code)
		return decode[domain.Orden](t, w)
	}

	crear("CORRECTIVO")
	segunda := crear("CORRECTIVO")
	tercera := crear("PREVENTIVO")

	w := s.request(t, http.MethodPut, fmt.Sprintf("/ordenes/%d", segunda.ID), s.tecnicoToken, gin.H{"estado": "EN_PROCESO"})
	require.Equal(t, http.StatusOK, w.Code)
	w = s.request(t, http.MethodPut, fmt.Sprintf("/ordenes/%d", tercera.ID), s.tecnicoToken, gin.H{"estado": "CANCELADA"})
	require.Equal(t, http.StatusOK, w.Code)

	w = s.request(t, http.MethodGet, "/ordenes/estadisticas", s.adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	stats := decode[repository.EstadisticasOrdenes](t, w)

	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, int64(1), stats.Pendientes)
	assert.Equal(t, int64(1), stats.EnProceso)
	assert.Equal(t, int64(1), stats.Canceladas)
	assert.Equal(t, int64(2), stats.Correctivas)
	assert.Equal(t, int64(1), stats.Preventivas)
}

func TestReportes_EstadisticasJSONyHTML(t *testing.T) {
	s := setupSuite(t)
	vehiculoID, servicioID, _ := s.armarTaller(t)

	w := s.request(t, http.MethodPost, "/ordenes", s.tecnicoToken, gin.H{
		"tipo":       "CORRECTIVO",
		"vehiculoId": vehiculoID,
		"servicios":  []gin.H{{"servicioId": servicioID}},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = s.request(t, http.MethodGet, "/reportes/estadisticas", s.adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

	w = s.request(t, http.MethodGet, "/reportes/estadisticas?formato=html", s.adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "Estadísticas del taller")

	w = s.request(t, http.MethodGet, "/reportes/estadisticas?formato=csv", s.adminToken, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecuperacionDeContrasena(t *testing.T) {
	s := setupSuite(t)

	// Unknown emails get the same answer as known ones.
	w := s.request(t, http.MethodPost, "/autenticacion/solicitar-recuperacion", "", gin.H{
		"email": "nadie@taller.pe",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = s.request(t, http.MethodPost, "/autenticacion/solicitar-recuperacion", "", gin.H{
		"email": "admin@taller.pe",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = s.request(t, http.MethodPost, "/autenticacion/restablecer-contrasena", "", gin.H{
		"token":    "deadbeef",
		"password": "nuevaclave123",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_TOKEN", decodeError(t, w).Error.Code)
}
