package web

import (
	"net/http"

	"clubvoley/internal/adapters/http/middleware"
	"clubvoley/internal/domain/account"
)

// registerRoutes wires every route onto the mux. Auth and role gates are
// applied per route; unauthenticated or wrong-role requests redirect to the
// login page before any handler runs.
func registerRoutes(mux *http.ServeMux) {
	requirePlayer := middleware.RequireRole(account.RolePlayer)
	requireAdmin := middleware.RequireRole(account.RoleAdmin)

	// Public
	mux.HandleFunc("/{$}", handleHome)
	mux.HandleFunc("/login", handleLogin)
	mux.HandleFunc("/logout", handleLogout)

	// Any authenticated role
	mux.Handle("/dashboard", middleware.RequireAuth(http.HandlerFunc(handleDashboard)))
	mux.Handle("/entrenamientos", middleware.RequireAuth(http.HandlerFunc(handleTrainings)))

	// Player
	mux.Handle("/pagos", requirePlayer(http.HandlerFunc(handlePayments)))
	mux.Handle("/confirmar_pago", requirePlayer(http.HandlerFunc(handleReportPayment)))
	mux.Handle("/confirmar_asistencia/{id}", requirePlayer(http.HandlerFunc(handleConfirmAttendance)))
	mux.Handle("/perfil", requirePlayer(http.HandlerFunc(handleProfile)))

	// Admin
	mux.Handle("/admin/pagos", requireAdmin(http.HandlerFunc(handleAdminPayments)))
	mux.Handle("/validar_pago/{id}", requireAdmin(http.HandlerFunc(handleValidatePayment)))
	mux.Handle("/rechazar_pago/{id}", requireAdmin(http.HandlerFunc(handleRejectPayment)))
	mux.Handle("/admin/crear_entrenamiento", requireAdmin(http.HandlerFunc(handleCreateTraining)))
	mux.Handle("/admin/rendimiento", requireAdmin(http.HandlerFunc(handlePerfDashboard)))
}
