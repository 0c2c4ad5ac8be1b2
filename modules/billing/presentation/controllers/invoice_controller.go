package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/peopledesk/peopledesk/modules/billing/domain/aggregates/invoice"
	"github.com/peopledesk/peopledesk/modules/billing/services"
	"github.com/peopledesk/peopledesk/pkg/application"
	"github.com/peopledesk/peopledesk/pkg/httpapi"
	"github.com/peopledesk/peopledesk/pkg/serrors"
)

type InvoiceController struct {
	app *application.Application
}

func NewInvoiceController(app *application.Application) *InvoiceController {
	return &InvoiceController{app: app}
}

func (c *InvoiceController) Key() string {
	return "/invoices"
}

func (c *InvoiceController) Register(r *mux.Router) {
	r.HandleFunc("/invoices", c.list).Methods(http.MethodGet)
	r.HandleFunc("/invoices", c.create).Methods(http.MethodPost)
	r.HandleFunc("/invoices/{id}/payments", c.recordPayment).Methods(http.MethodPost)
	r.HandleFunc("/invoices/{id}/export", c.export).Methods(http.MethodGet)
	r.HandleFunc("/invoices/{id}", c.delete).Methods(http.MethodDelete)
}

type invoiceRow struct {
	invoice.Invoice
	Subtotal   string `json:"subtotal"`
	Total      string `json:"total"`
	BalanceDue string `json:"balanceDue"`
}

func (c *InvoiceController) list(w http.ResponseWriter, r *http.Request) {
	svc := application.Use[*services.InvoiceService](c.app)
	if err := svc.Fetch(r.Context()); err != nil {
		_ = httpapi.WriteServiceError(w, err)
		return
	}

	items := svc.Store().Items()
	rows := make([]invoiceRow, 0, len(items))
	for _, inv := range items {
		rows = append(rows, invoiceRow{
			Invoice:    inv,
			Subtotal:   inv.FormatMoney(inv.Subtotal()),
			Total:      inv.FormatMoney(inv.Total()),
			BalanceDue: inv.FormatMoney(inv.BalanceDue()),
		})
	}
	_ = httpapi.WriteData(w, http.StatusOK, rows)
}

func (c *InvoiceController) create(w http.ResponseWriter, r *http.Request) {
	draft := &invoice.CreateDTO{}
	if err := json.NewDecoder(r.Body).Decode(draft); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, serrors.CodeValidation, "malformed request body", nil)
		return
	}

	svc := application.Use[*services.InvoiceService](c.app)
	svc.Dialog().OpenForCreate(draft)
	if err := svc.SubmitCreate(r.Context()); err != nil {
		if serrors.Code(err) == serrors.CodeValidation {
			_ = httpapi.WriteError(w, http.StatusUnprocessableEntity, serrors.CodeValidation, "validation failed", svc.Dialog().FieldErrors())
			svc.Dialog().Close()
			return
		}
		_ = httpapi.WriteServiceError(w, err)
		svc.Dialog().Close()
		return
	}
	_ = httpapi.WriteData(w, http.StatusCreated, svc.Store().Items())
}

func (c *InvoiceController) recordPayment(w http.ResponseWriter, r *http.Request) {
	data := &invoice.PaymentDTO{}
	if err := json.NewDecoder(r.Body).Decode(data); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, serrors.CodeValidation, "malformed request body", nil)
		return
	}

	svc := application.Use[*services.InvoiceService](c.app)
	if err := svc.RecordPayment(r.Context(), mux.Vars(r)["id"], data); err != nil {
		_ = httpapi.WriteServiceError(w, err)
		return
	}
	_ = httpapi.WriteData(w, http.StatusOK, svc.Store().Items())
}

// export streams the invoice workbook. The collection is refetched first
// so the sheet always reflects server state.
func (c *InvoiceController) export(w http.ResponseWriter, r *http.Request) {
	svc := application.Use[*services.InvoiceService](c.app)
	if err := svc.Fetch(r.Context()); err != nil {
		_ = httpapi.WriteServiceError(w, err)
		return
	}

	inv, ok := svc.Store().Find(mux.Vars(r)["id"])
	if !ok {
		_ = httpapi.WriteError(w, http.StatusNotFound, serrors.CodeEmptyResult, "no invoice found", nil)
		return
	}

	exporter := application.Use[*services.InvoiceExportService](c.app)
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", inv.Number+".xlsx"))
	if err := exporter.Export(inv, w); err != nil {
		logger := c.app.Logger()
		if logger != nil {
			logger.WithError(err).Error("billing: streaming invoice export")
		}
	}
}

func (c *InvoiceController) delete(w http.ResponseWriter, r *http.Request) {
	svc := application.Use[*services.InvoiceService](c.app)
	if err := svc.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		_ = httpapi.WriteServiceError(w, err)
		return
	}
	_ = httpapi.WriteData(w, http.StatusOK, svc.Store().Items())
}
