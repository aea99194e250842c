package web

import (
	"bytes"
	"context"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gorilla/csrf"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"clubvoley/internal/adapters/http/middleware"
	"clubvoley/internal/application/orchestrators"
	"clubvoley/internal/application/projections"
	"clubvoley/internal/domain/payment"
	playerDomain "clubvoley/internal/domain/player"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// internalError logs the real error and returns a generic message to the client.
// This prevents leaking internal details per OWASP A05.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// templatesDir is relative to the process working directory. Tests override
// it because `go test` runs from the package directory.
var templatesDir = "internal/adapters/http/templates"

func renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, data any) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	role := ""
	email := ""
	if ok {
		role = sess.Role
		email = sess.Email
	}

	funcMap := template.FuncMap{
		"currentRole":  func() string { return role },
		"currentEmail": func() string { return email },
		"isLoggedIn":   func() bool { return role != "" },
		"isAdmin":      func() bool { return role == "admin" },
		"csrfToken":    func() string { return csrf.Token(r) },
		"renderMarkdown": func(md string) template.HTML {
			var buf bytes.Buffer
			if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
				return template.HTML(template.HTMLEscapeString(md))
			}
			return template.HTML(buf.String())
		},
	}

	layoutPath := filepath.Join(templatesDir, "layout.html")
	pagePath := filepath.Join(templatesDir, templateName)
	tpl, err := template.New("layout.html").Funcs(funcMap).ParseFiles(layoutPath, pagePath)
	if err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tpl.Execute(w, data); err != nil {
		http.Error(w, "Render error: "+err.Error(), http.StatusInternalServerError)
		return
	}
}

// resolvePlayer maps the calling session to its player profile. An
// authenticated player account without a profile is a broken invariant and
// surfaces as an error, never as a silent empty page.
func resolvePlayer(ctx context.Context) (playerDomain.Player, error) {
	sess, ok := middleware.GetSessionFromContext(ctx)
	if !ok {
		return playerDomain.Player{}, errors.New("no session in context")
	}
	return stores.PlayerStore.GetByAccountID(ctx, sess.AccountID)
}

// handleHome handles GET / — the login form, or a redirect for signed-in users.
func handleHome(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if _, ok := middleware.GetSessionFromContext(r.Context()); ok {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	renderTemplate(w, r, "login.html", map[string]any{
		"CSRFToken": csrf.Token(r),
	})
}

// handleLogin handles POST /login (authenticate). GET just goes home.
func handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	input := orchestrators.LoginInput{
		Email:    r.FormValue("Email"),
		Password: r.FormValue("Password"),
	}
	deps := orchestrators.LoginDeps{
		AccountStore: stores.AccountStore,
	}

	result, err := orchestrators.ExecuteLogin(r.Context(), input, deps)
	if err != nil {
		renderTemplate(w, r, "login.html", map[string]any{
			"CSRFToken": csrf.Token(r),
			"Error":     err.Error(),
		})
		return
	}

	token, err := sessions.Create(result.AccountID, result.Email, result.Role)
	if err != nil {
		http.Error(w, "Session error", http.StatusInternalServerError)
		return
	}

	middleware.SetSessionCookie(w, token)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// handleLogout handles GET /logout. Clears the whole session, any role.
func handleLogout(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("club_session")
	if err == nil {
		sessions.Delete(cookie.Value)
	}

	middleware.ClearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleDashboard handles GET /dashboard for both roles.
func handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	sess, _ := middleware.GetSessionFromContext(r.Context())
	query := projections.GetDashboardQuery{
		Role:      sess.Role,
		AccountID: sess.AccountID,
	}
	deps := projections.GetDashboardDeps{
		PlayerStore:   stores.PlayerStore,
		PaymentStore:  stores.PaymentStore,
		TrainingStore: stores.TrainingStore,
	}

	result, err := projections.QueryGetDashboard(r.Context(), query, deps, timeNow())
	if err != nil {
		internalError(w, err)
		return
	}

	renderTemplate(w, r, "dashboard.html", map[string]any{
		"Dashboard": result,
	})
}

// handlePayments handles GET /pagos — the player's own dues history.
func handlePayments(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	pl, err := resolvePlayer(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}

	result, err := projections.QueryGetPlayerPayments(r.Context(),
		projections.GetPlayerPaymentsQuery{PlayerID: pl.ID},
		projections.GetPlayerPaymentsDeps{PaymentStore: stores.PaymentStore},
	)
	if err != nil {
		internalError(w, err)
		return
	}

	renderTemplate(w, r, "pagos.html", map[string]any{
		"Player":             pl,
		"Payments":           result.Payments,
		"CurrentPeriod":      result.CurrentPeriod,
		"CurrentPeriodState": result.CurrentPeriodState,
		"Methods":            []string{payment.MethodCash, payment.MethodTransfer},
		"CSRFToken":          csrf.Token(r),
	})
}

// handleReportPayment handles POST /confirmar_pago — the player reports
// having paid the month's dues.
func handleReportPayment(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	pl, err := resolvePlayer(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}

	amount := 0
	if v := r.FormValue("Amount"); v != "" {
		amount, err = strconv.Atoi(v)
		if err != nil || amount < 0 {
			http.Error(w, "Invalid amount", http.StatusBadRequest)
			return
		}
	}

	input := orchestrators.ReportPaymentInput{
		PlayerID: pl.ID,
		Period:   r.FormValue("Period"),
		Method:   r.FormValue("Method"),
		Amount:   amount,
	}
	deps := orchestrators.ReportPaymentDeps{
		PaymentStore: stores.PaymentStore,
		PlayerStore:  stores.PlayerStore,
	}

	if _, err := orchestrators.ExecuteReportPayment(r.Context(), input, deps); err != nil {
		if errors.Is(err, payment.ErrInvalidPeriod) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		internalError(w, err)
		return
	}

	http.Redirect(w, r, "/pagos", http.StatusSeeOther)
}

// handleTrainings handles GET /entrenamientos for both roles. Players see
// their own attendance flags; admins see the plain schedule.
func handleTrainings(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	playerID := ""
	if !middleware.IsAdmin(r.Context()) {
		pl, err := resolvePlayer(r.Context())
		if err != nil {
			internalError(w, err)
			return
		}
		playerID = pl.ID
	}

	result, err := projections.QueryGetTrainings(r.Context(),
		projections.GetTrainingsQuery{PlayerID: playerID},
		projections.GetTrainingsDeps{
			TrainingStore:   stores.TrainingStore,
			AttendanceStore: stores.AttendanceStore,
		},
	)
	if err != nil {
		internalError(w, err)
		return
	}

	renderTemplate(w, r, "entrenamientos.html", map[string]any{
		"Entries":   result.Entries,
		"CSRFToken": csrf.Token(r),
	})
}

// handleConfirmAttendance handles POST /confirmar_asistencia/{id}.
func handleConfirmAttendance(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	pl, err := resolvePlayer(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}

	input := orchestrators.ConfirmAttendanceInput{
		SessionID: r.PathValue("id"),
		PlayerID:  pl.ID,
	}
	deps := orchestrators.ConfirmAttendanceDeps{
		AttendanceStore: stores.AttendanceStore,
		TrainingStore:   stores.TrainingStore,
		PlayerStore:     stores.PlayerStore,
	}

	if err := orchestrators.ExecuteConfirmAttendance(r.Context(), input, deps); err != nil {
		if errors.Is(err, orchestrators.ErrSessionNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		internalError(w, err)
		return
	}

	http.Redirect(w, r, "/entrenamientos", http.StatusSeeOther)
}

// handleProfile handles GET (view) and POST (edit or password change) for /perfil.
func handleProfile(w http.ResponseWriter, r *http.Request) {
	sess, _ := middleware.GetSessionFromContext(r.Context())

	if r.Method == "GET" {
		pl, err := resolvePlayer(r.Context())
		if err != nil {
			internalError(w, err)
			return
		}
		renderTemplate(w, r, "perfil.html", map[string]any{
			"Player":     pl,
			"Categories": []string{playerDomain.CategoryJuveniles, playerDomain.CategoryMayores},
			"CSRFToken":  csrf.Token(r),
		})
		return
	}

	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	// A submitted current password means the password form, not the profile form
	if r.FormValue("CurrentPassword") != "" {
		input := orchestrators.ChangePasswordInput{
			AccountID:       sess.AccountID,
			CurrentPassword: r.FormValue("CurrentPassword"),
			NewPassword:     r.FormValue("NewPassword"),
		}
		if err := orchestrators.ExecuteChangePassword(r.Context(), input, orchestrators.ChangePasswordDeps{
			AccountStore: stores.AccountStore,
		}); err != nil {
			if errors.Is(err, orchestrators.ErrWrongCurrentPassword) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			internalError(w, err)
			return
		}
		http.Redirect(w, r, "/perfil", http.StatusSeeOther)
		return
	}

	input := orchestrators.UpdateProfileInput{
		AccountID: sess.AccountID,
		Name:      r.FormValue("Name"),
		Surname:   r.FormValue("Surname"),
		Phone:     r.FormValue("Phone"),
		Position:  r.FormValue("Position"),
		Category:  r.FormValue("Category"),
	}
	if _, err := orchestrators.ExecuteUpdateProfile(r.Context(), input, orchestrators.UpdateProfileDeps{
		PlayerStore: stores.PlayerStore,
	}); err != nil {
		internalError(w, err)
		return
	}

	http.Redirect(w, r, "/perfil", http.StatusSeeOther)
}
