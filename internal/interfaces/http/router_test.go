package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/tu-usuario/dashboard-pro/internal/application/analytics"
	"github.com/tu-usuario/dashboard-pro/internal/application/auth"
	"github.com/tu-usuario/dashboard-pro/internal/application/dto"
	"github.com/tu-usuario/dashboard-pro/internal/application/usecase"
	"github.com/tu-usuario/dashboard-pro/internal/infrastructure/memory"
	infrapdf "github.com/tu-usuario/dashboard-pro/internal/infrastructure/pdf"
	apphttp "github.com/tu-usuario/dashboard-pro/internal/interfaces/http"
	pkgjwt "github.com/tu-usuario/dashboard-pro/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "dashboard-pro-test"
	testExpMin    = 60
)

// buildTestApp levanta la aplicación completa sobre un store sembrado, igual
// que cmd/api pero sin servidor real ni swagger.
func buildTestApp() *fiber.App {
	store := memory.NewSeededStore()

	userRepo := memory.NewUserRepository(store)
	productRepo := memory.NewProductRepository(store)
	orderRepo := memory.NewOrderRepository(store)
	notificationRepo := memory.NewNotificationRepository(store)
	messageRepo := memory.NewMessageRepository(store)

	dashboardUC := appanalytics.NewDashboardUseCase(userRepo, productRepo, orderRepo)

	app := fiber.New()
	app.Use(apphttp.RequestIDMiddleware())
	apphttp.Router(app, apphttp.RouterDeps{
		UserUC:         usecase.NewUserUseCase(userRepo, notificationRepo),
		ProductUC:      usecase.NewProductUseCase(productRepo, notificationRepo),
		OrderUC:        usecase.NewOrderUseCase(orderRepo, userRepo, productRepo, notificationRepo),
		NotificationUC: usecase.NewNotificationUseCase(notificationRepo),
		MessageUC:      usecase.NewMessageUseCase(messageRepo, userRepo),
		ReportUC:       usecase.NewReportUseCase(userRepo, productRepo, messageRepo, dashboardUC, infrapdf.NewMarotoReportGenerator()),
		DashboardUC:    dashboardUC,
		AuthUC: auth.NewAuthUseCase(userRepo, auth.JWTConfig{
			Secret:     testJWTSecret,
			ExpMinutes: testExpMin,
			Issuer:     testIssuer,
		}),
		JWTSecret: testJWTSecret,
	})
	return app
}

// testToken genera un Bearer token válido sin pasar por el login.
func testToken(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, "1", "admin", testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

func doJSON(t *testing.T, app *fiber.App, method, path, authHeader string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestRutasProtegidas_SinToken_Retorna401(t *testing.T) {
	app := buildTestApp()

	for _, path := range []string{"/api/users", "/api/products", "/api/orders", "/api/dashboard/stats"} {
		resp := doJSON(t, app, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
		resp.Body.Close()
	}
}

func TestLogin_EntregaTokenUtilizable(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Email:    "john@example.com",
		Password: memory.SeedPassword,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	login := decode[dto.LoginResponse](t, resp)
	require.NotEmpty(t, login.Token)
	assert.Equal(t, "John Doe", login.User.Name)

	// El token recibido debe abrir las rutas protegidas.
	resp = doJSON(t, app, http.MethodGet, "/api/users", "Bearer "+login.Token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestLogin_CredencialesMalas_Retorna401(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Email:    "john@example.com",
		Password: "incorrecta",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

// ──────────────────────────────────────────────────────────────────────────────
// Colecciones
// ──────────────────────────────────────────────────────────────────────────────

func TestUsers_ListadoSembrado(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodGet, "/api/users", testToken(t), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.UserListResponse](t, resp)
	assert.Equal(t, 6, out.Total)
	assert.Equal(t, "John Doe", out.Items[0].Name)
}

func TestUsers_GetInexistente_Retorna404(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodGet, "/api/users/99", testToken(t), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestUsers_IdNoNumerico_Retorna400(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodGet, "/api/users/abc", testToken(t), nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

// Flujo completo de colocación: la orden nueva aparece con sus referencias
// resueltas y los contadores del usuario y producto se mueven.
func TestOrders_Colocacion(t *testing.T) {
	app := buildTestApp()
	token := testToken(t)

	body := map[string]any{"userId": 1, "productId": 2, "amount": "59.98"}
	resp := doJSON(t, app, http.MethodPost, "/api/orders", token, body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[dto.OrderResponse](t, resp)
	assert.Equal(t, int64(9), created.ID, "siguiente id libre tras la siembra")
	assert.Equal(t, "pending", created.Status)
	require.NotNil(t, created.User)
	assert.Equal(t, 13, created.User.TotalOrders, "12 previas + la nueva")
	require.NotNil(t, created.Product)
	assert.Equal(t, 211, created.Product.Sold)
	assert.Equal(t, 119, created.Product.Stock)

	// La colocación emite una notificación, que llega primero en el listado.
	resp = doJSON(t, app, http.MethodGet, "/api/notifications", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	notifs := decode[dto.NotificationListResponse](t, resp)
	require.NotEmpty(t, notifs.Items)
	assert.Contains(t, notifs.Items[0].Title, "Order")
	assert.Equal(t, int64(9), notifs.Items[0].OrderID)
}

func TestNotifications_ReadAll(t *testing.T) {
	app := buildTestApp()
	token := testToken(t)

	resp := doJSON(t, app, http.MethodPut, "/api/notifications/read-all", token, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/notifications", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.NotificationListResponse](t, resp)
	assert.Zero(t, out.Unread)
	for _, n := range out.Items {
		assert.True(t, n.Read)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboard_Stats(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodGet, "/api/dashboard/stats", testToken(t), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.DashboardStatsDTO](t, resp)
	assert.Equal(t, 8, out.TotalOrders)
	assert.Equal(t, 6, out.TotalUsers)
	assert.Equal(t, 1, out.PendingOrders)
	assert.Equal(t, "3329.92", out.TotalRevenue.String())
}

func TestDashboard_WeeklySales_SieteCubetas(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodGet, "/api/dashboard/weekly-sales", testToken(t), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[[]dto.WeeklySalesBucketDTO](t, resp)
	require.Len(t, out, 7)
	assert.Equal(t, "Mon", out[0].Day)
	assert.Equal(t, "Sun", out[6].Day)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reports
// ──────────────────────────────────────────────────────────────────────────────

func TestReports_PDF(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodGet, "/api/reports/1/pdf", testToken(t), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")
	resp.Body.Close()
}

func TestReports_PDFInexistente_Retorna404(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodGet, "/api/reports/42/pdf", testToken(t), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}
