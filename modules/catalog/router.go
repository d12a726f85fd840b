package catalog

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Router exposes a repository over HTTP:
//
//	GET  /products/{barcode}         product by barcode
//	GET  /products?description=...   products matching a description
//	POST /products                   register a product
//
// Raw request text is converted into value types in the handlers below and
// nowhere else; the repository only ever sees validated barcodes.
func Router(repo Repository, log *slog.Logger) chi.Router {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	r := chi.NewRouter()
	r.Get("/products/{barcode}", getByBarcode(repo, log))
	r.Get("/products", listByDescription(repo, log))
	r.Post("/products", createProduct(repo, log))
	return r
}

func getByBarcode(repo Repository, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code, err := NewBarcode(chi.URLParam(r, "barcode"))
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid_barcode", err.Error())
			return
		}

		product, err := repo.FindByBarcode(r.Context(), code)
		switch {
		case errors.Is(err, ErrProductNotFound):
			respondError(w, http.StatusNotFound, "not_found", "no product with barcode "+code.String())
		case err != nil:
			log.ErrorContext(r.Context(), "barcode lookup failed", "barcode", code.String(), "error", err)
			respondError(w, http.StatusInternalServerError, "internal_error", "lookup failed")
		default:
			respondJSON(w, http.StatusOK, product)
		}
	}
}

func listByDescription(repo Repository, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		desc := NewDescription(r.URL.Query().Get("description"))

		products, err := repo.FindByDescription(r.Context(), desc)
		if err != nil {
			log.ErrorContext(r.Context(), "description lookup failed", "error", err)
			respondError(w, http.StatusInternalServerError, "internal_error", "lookup failed")
			return
		}
		respondJSON(w, http.StatusOK, products)
	}
}

type createProductRequest struct {
	Barcode     Barcode     `json:"barcode"`
	Description Description `json:"description"`
}

func createProduct(repo Repository, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createProductRequest
		// Decoding validates the barcode through Barcode.UnmarshalText.
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			if errors.Is(err, ErrInvalidBarcode) {
				respondError(w, http.StatusBadRequest, "invalid_barcode", err.Error())
				return
			}
			respondError(w, http.StatusBadRequest, "invalid_body", "invalid request body")
			return
		}
		if req.Barcode.IsZero() {
			respondError(w, http.StatusBadRequest, "invalid_barcode", "barcode is required")
			return
		}

		product := NewProduct(req.Barcode, req.Description)
		err := repo.Save(r.Context(), product)
		switch {
		case errors.Is(err, ErrDuplicateBarcode):
			respondError(w, http.StatusConflict, "duplicate_barcode", "barcode already registered")
		case err != nil:
			log.ErrorContext(r.Context(), "product save failed", "barcode", product.Barcode.String(), "error", err)
			respondError(w, http.StatusInternalServerError, "internal_error", "save failed")
		default:
			respondJSON(w, http.StatusCreated, product)
		}
	}
}

type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, errorResponse{Error: errorDetail{Code: code, Message: message}})
}
