package handlers

import (
	"log/slog"
	"net/http"

	"github.com/shelfpilot/shelfpilot/internal/api/middleware"
	service "github.com/shelfpilot/shelfpilot/internal/services"
	"github.com/shelfpilot/shelfpilot/internal/utils/response"
)

type InvoiceHandler struct {
	invoiceService service.InvoiceService
}

func NewInvoiceHandler(invoiceService service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// ListInvoices godoc
//	@Summary	List invoices for approved requests
//	@Tags		Invoices
//	@Produce	json
//	@Param		search	query	string	false	"Case-insensitive search term"
//	@Success	200		{array}	models.Invoice
//	@Router		/invoices [get]
func (h *InvoiceHandler) ListInvoices() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		invoices, err := h.invoiceService.ListInvoices(r.Context(), r.URL.Query().Get("search"))
		if err != nil {
			logger.Error("Failed to list invoices", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Invoices listed", slog.Int("count", len(invoices)))
		response.Success(w, http.StatusOK, invoices)
	}
}
