package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/csrf"

	"clubvoley/internal/adapters/http/middleware"
	"clubvoley/internal/application/listutil"
	"clubvoley/internal/application/orchestrators"
	"clubvoley/internal/application/projections"
	paymentDomain "clubvoley/internal/domain/payment"
	"clubvoley/internal/domain/training"
)

// reviewDeps assembles the dependency set shared by validate and reject,
// including the best-effort notification email wiring.
func reviewDeps() orchestrators.ReviewPaymentDeps {
	return orchestrators.ReviewPaymentDeps{
		PaymentStore: stores.PaymentStore,
		PlayerStore:  stores.PlayerStore,
		EmailSender:  emailSender,
		EmailFrom:    emailFromAddress,
		LookupEmail: func(ctx context.Context, accountID string) (string, error) {
			acct, err := stores.AccountStore.GetByID(ctx, accountID)
			if err != nil {
				return "", err
			}
			return acct.Email, nil
		},
	}
}

// handleAdminPayments handles GET /admin/pagos — every reported payment
// across all players, with names resolved for review.
func handleAdminPayments(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	result, err := projections.QueryGetAdminPayments(r.Context(),
		projections.GetAdminPaymentsQuery{},
		projections.GetAdminPaymentsDeps{
			PaymentStore: stores.PaymentStore,
			PlayerStore:  stores.PlayerStore,
		},
	)
	if err != nil {
		internalError(w, err)
		return
	}

	params := listutil.ParseListParams(r.URL.Query(),
		[]string{"period", "player", "state"}, "period", "desc", "state")

	rows := filterPaymentRows(result.Rows, params.Search, params.Filters["state"])
	sortPaymentRows(rows, params.SortParams)

	pageInfo := listutil.NewPageInfo(params.Page, params.PerPage, len(rows))
	rows = rows[pageInfo.Offset():pageInfo.EndRow()]

	renderTemplate(w, r, "admin_pagos.html", map[string]any{
		"Rows":     rows,
		"PageInfo": pageInfo,
		"Sort":     params.Sort,
		"Dir":      params.Dir,
		"State":    params.Filters["state"],
		"Search":   params.Search,
	})
}

// filterPaymentRows narrows the review list to rows matching the state
// filter and a case-insensitive player-name search.
func filterPaymentRows(rows []projections.AdminPaymentRow, search, state string) []projections.AdminPaymentRow {
	if search == "" && state == "" {
		return rows
	}
	needle := strings.ToLower(search)
	filtered := make([]projections.AdminPaymentRow, 0, len(rows))
	for _, row := range rows {
		if state != "" && row.Payment.State != state {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(row.PlayerName), needle) {
			continue
		}
		filtered = append(filtered, row)
	}
	return filtered
}

// sortPaymentRows orders the review list in place by the requested column.
func sortPaymentRows(rows []projections.AdminPaymentRow, params listutil.SortParams) {
	key := func(row projections.AdminPaymentRow) string {
		switch params.Sort {
		case "player":
			return row.PlayerName
		case "state":
			return row.Payment.State
		default:
			return row.Payment.Period
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if params.Dir == "desc" {
			return key(rows[i]) > key(rows[j])
		}
		return key(rows[i]) < key(rows[j])
	})
}

// handleValidatePayment handles GET /validar_pago/{id}.
func handleValidatePayment(w http.ResponseWriter, r *http.Request) {
	reviewPayment(w, r, orchestrators.ExecuteValidatePayment)
}

// handleRejectPayment handles GET /rechazar_pago/{id}.
func handleRejectPayment(w http.ResponseWriter, r *http.Request) {
	reviewPayment(w, r, orchestrators.ExecuteRejectPayment)
}

// reviewPayment runs one admin transition and bounces back to the review list.
func reviewPayment(w http.ResponseWriter, r *http.Request, execute func(context.Context, orchestrators.ReviewPaymentInput, orchestrators.ReviewPaymentDeps) (paymentDomain.Payment, error)) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	sess, _ := middleware.GetSessionFromContext(r.Context())
	input := orchestrators.ReviewPaymentInput{
		PaymentID: r.PathValue("id"),
		AdminID:   sess.AccountID,
	}

	if _, err := execute(r.Context(), input, reviewDeps()); err != nil {
		if errors.Is(err, orchestrators.ErrPaymentNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		internalError(w, err)
		return
	}

	http.Redirect(w, r, "/admin/pagos", http.StatusSeeOther)
}

// handleCreateTraining handles GET (form) and POST (create) for
// /admin/crear_entrenamiento.
func handleCreateTraining(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		renderTemplate(w, r, "crear_entrenamiento.html", map[string]any{
			"CSRFToken": csrf.Token(r),
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

	input := orchestrators.CreateTrainingInput{
		Date:        r.FormValue("Date"),
		TimeSlot:    r.FormValue("TimeSlot"),
		Description: r.FormValue("Description"),
	}

	if _, err := orchestrators.ExecuteCreateTraining(r.Context(), input, orchestrators.CreateTrainingDeps{
		TrainingStore: stores.TrainingStore,
	}); err != nil {
		if errors.Is(err, training.ErrInvalidDate) || errors.Is(err, training.ErrEmptyTimeSlot) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		internalError(w, err)
		return
	}

	http.Redirect(w, r, "/entrenamientos", http.StatusSeeOther)
}

// handlePerfDashboard handles GET /admin/rendimiento — JSON snapshot of
// request and query timings from the in-process collector.
func handlePerfDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if perfCollector == nil {
		http.Error(w, "collector disabled", http.StatusServiceUnavailable)
		return
	}

	minutes := 15
	if v := r.URL.Query().Get("minutes"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			minutes = n
		}
	}

	snapshot := perfCollector.Snapshot(timeNow().Add(-time.Duration(minutes)*time.Minute), 10)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(snapshot)
}
