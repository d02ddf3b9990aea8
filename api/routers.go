package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/ateet0254/mukesh-dairy-api/internal/utils"
)

func (app *application) routes() http.Handler {
	mux := chi.NewRouter()

	// --- Global middlewares ---
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	mux.Use(app.Logger) // Simple logger

	// --- Health check endpoint ---
	mux.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, 200, "Live")
	})

	mux.Post("/api/v1/auth/login", app.Handlers.Auth.Signin)

	// Rotate a password; the current one is re-checked in the handler
	// Example: POST /api/v1/auth/change-password
	// Body (JSON): { username, oldPassword, newPassword }
	mux.With(app.Authenticate).Post("/api/v1/auth/change-password", app.Handlers.Auth.ChangePassword)

	// --- Customer Routes ---
	mux.Route("/api/v1/customers", func(r chi.Router) {
		r.Use(app.Authenticate)

		// List all customers ordered by serial number
		// Example: GET /api/v1/customers
		r.Get("/", app.Handlers.Customer.GetCustomers)

		// Register a new customer
		// Example: POST /api/v1/customers
		// Body (JSON): { slNo, name, phone, village }
		r.Post("/", app.Handlers.Customer.AddCustomer)

		// Get a single customer
		// Example: GET /api/v1/customers/5
		r.Get("/{id}", app.Handlers.Customer.GetCustomerByID)

		// Update a customer
		// Example: PUT /api/v1/customers/5
		r.Put("/{id}", app.Handlers.Customer.UpdateCustomer)

		// Delete a customer (fails while entries or payments reference it)
		// Example: DELETE /api/v1/customers/5
		r.Delete("/{id}", app.Handlers.Customer.DeleteCustomer)
	})

	// --- Entry Routes ---
	mux.Route("/api/v1/entries", func(r chi.Router) {
		r.Use(app.Authenticate)

		// List entries in an inclusive date range
		// Example: GET /api/v1/entries?from=2025-01-01&to=2025-01-31&customerId=5
		r.Get("/", app.Handlers.Entry.ListEntries)

		// Record a milk delivery; rate resolves from the chart unless given
		// Example: POST /api/v1/entries
		// Body (JSON): { customerId, date, shift, milkType, quantityL, fat, snf, rate?, note? }
		r.Post("/", app.Handlers.Entry.AddEntry)

		// Rate preview for the entry form; 404 when the chart has no band
		// Example: GET /api/v1/entries/rate?milkType=COW&fat=3.5&snf=8.5
		r.Get("/rate", app.Handlers.Entry.ResolveRate)

		// Daily collection summary split by shift and milk type
		// Example: GET /api/v1/entries/summary/daily?date=2025-01-15
		r.Get("/summary/daily", app.Handlers.Report.DailySummary)

		// One customer's period statement with drill-down lists
		// Example: GET /api/v1/entries/customer-summary?customerId=5&from=2025-01-01&to=2025-01-15
		r.Get("/customer-summary", app.Handlers.Report.CustomerSummary)

		// Per-customer totals across the whole cooperative
		// Example: GET /api/v1/entries/period-summary?from=2025-01-01&to=2025-01-15
		r.Get("/period-summary", app.Handlers.Report.PeriodSummary)

		// Update an entry; the valuator re-prices it
		// Example: PUT /api/v1/entries/42
		r.Put("/{id}", app.Handlers.Entry.UpdateEntry)

		// Delete an entry
		// Example: DELETE /api/v1/entries/42
		r.Delete("/{id}", app.Handlers.Entry.DeleteEntry)
	})

	// --- Payment Routes ---
	mux.Route("/api/v1/payments", func(r chi.Router) {
		r.Use(app.Authenticate)

		// List payments with optional filters
		// Example: GET /api/v1/payments?customerId=5&from=2025-01-01&to=2025-01-31
		r.Get("/", app.Handlers.Payment.ListPayments)

		// Get a single payment with its receipt number
		// Example: GET /api/v1/payments/7
		r.Get("/{id}", app.Handlers.Payment.GetPaymentByID)

		// Record a payment; a receipt number is generated
		// Example: POST /api/v1/payments
		// Body (JSON): { customerId, date, amount, mode?, note? }
		r.Post("/", app.Handlers.Payment.AddPayment)

		// Update a payment
		// Example: PUT /api/v1/payments/7
		r.Put("/{id}", app.Handlers.Payment.UpdatePayment)

		// Delete a payment
		// Example: DELETE /api/v1/payments/7
		r.Delete("/{id}", app.Handlers.Payment.DeletePayment)
	})

	// --- Rate Chart Routes ---
	mux.Route("/api/v1/rates", func(r chi.Router) {
		r.Use(app.Authenticate)

		// List the rate chart, optionally for one milk type
		// Example: GET /api/v1/rates?milkType=COW
		r.Get("/", app.Handlers.Rate.ListSlabs)

		// Add a rate slab
		// Example: POST /api/v1/rates
		// Body (JSON): { milkType, fatMin, fatMax, snfMin, snfMax, rate }
		r.Post("/", app.Handlers.Rate.AddSlab)

		// Delete a rate slab
		// Example: DELETE /api/v1/rates/3
		r.Delete("/{id}", app.Handlers.Rate.DeleteSlab)
	})

	return mux
}
