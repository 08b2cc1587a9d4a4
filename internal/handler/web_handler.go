package handler

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"mini-stock/internal/model"
	"mini-stock/internal/service"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

//go:embed templates/*.html
var templateFS embed.FS

// Sidebar menu entries.
const (
	SectionProducts   = "products"
	SectionCategories = "categories"
	SectionOrders     = "orders"
	SectionSuppliers  = "suppliers"
)

type menuEntry struct {
	Key   string
	Label string
}

var menu = []menuEntry{
	{Key: SectionProducts, Label: "Products"},
	{Key: SectionCategories, Label: "Categories"},
	{Key: SectionOrders, Label: "Orders"},
	{Key: SectionSuppliers, Label: "Suppliers"},
}

// Form input errors shown on the banner.
var (
	errPriceFormat    = model.NewDomainError(model.ErrCodeInvalidPrice, "Unit price must be a number")
	errQuantityFormat = model.NewDomainError(model.ErrCodeInvalidQuantity, "Stock quantity must be a whole number")
	errCategoryFormat = model.NewDomainError(model.ErrCodeInvalidRequest, "Category selection is invalid")
	errInvalidForm    = model.NewDomainError(model.ErrCodeInvalidRequest, "Invalid form submission")
)

var successMessages = map[string]string{
	"product":  "Product added successfully!",
	"category": "Category added successfully!",
}

// productForm keeps the submitted values so a rejected form is re-rendered as typed.
type productForm struct {
	Name          string
	Description   string
	UnitPrice     string
	StockQuantity string
	CategoryID    string
}

type pageData struct {
	Menu         []menuEntry
	Section      string
	Products     []model.ProductListing
	Categories   []model.Category
	Success      string
	Error        string
	ProductForm  productForm
	CategoryName string
}

// WebHandler serves the HTML inventory form.
type WebHandler struct {
	products   service.ProductService
	categories service.CategoryService
	tmpl       *template.Template
	logger     zerolog.Logger
}

// NewWebHandler creates the HTML form handler with its embedded templates.
func NewWebHandler(products service.ProductService, categories service.CategoryService, logger zerolog.Logger) *WebHandler {
	tmpl := template.Must(template.New("").Funcs(template.FuncMap{
		"price":         formatPrice,
		"categoryLabel": categoryLabel,
	}).ParseFS(templateFS, "templates/*.html"))

	return &WebHandler{
		products:   products,
		categories: categories,
		tmpl:       tmpl,
		logger:     logger.With().Str("handler", "web").Logger(),
	}
}

// Index handles GET / and renders the section chosen from the sidebar.
func (h *WebHandler) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query()
	data := pageData{
		Section: normaliseSection(query.Get("section")),
		Success: successMessages[query.Get("added")],
	}

	status := http.StatusOK
	if err := h.load(r, &data); err != nil {
		data.Error = "Failed to load inventory data"
		status = http.StatusInternalServerError
	}

	h.render(w, status, &data)
}

// AddProduct handles POST /products from the product form.
func (h *WebHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	data := pageData{Section: SectionProducts}

	if err := r.ParseForm(); err != nil {
		h.fail(w, r, http.StatusBadRequest, errInvalidForm.Message, &data)
		return
	}

	form := productForm{
		Name:          r.PostForm.Get("name"),
		Description:   r.PostForm.Get("description"),
		UnitPrice:     strings.TrimSpace(r.PostForm.Get("unit_price")),
		StockQuantity: strings.TrimSpace(r.PostForm.Get("stock_quantity")),
		CategoryID:    strings.TrimSpace(r.PostForm.Get("category_id")),
	}
	data.ProductForm = form

	req, err := parseProductForm(form)
	if err != nil {
		h.logger.Debug().Str("code", err.Code).Msg("rejected product form")
		h.fail(w, r, http.StatusBadRequest, err.Message, &data)
		return
	}

	if _, err := h.products.AddProduct(r.Context(), req); err != nil {
		var domainErr *model.DomainError
		if errors.As(err, &domainErr) {
			h.fail(w, r, http.StatusBadRequest, domainErr.Message, &data)
			return
		}
		h.logger.Error().Err(err).Msg("failed to add product")
		h.fail(w, r, http.StatusInternalServerError, "Failed to add product", &data)
		return
	}

	redirectAdded(w, r, SectionProducts, "product")
}

// AddCategory handles POST /categories from the category form.
func (h *WebHandler) AddCategory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	data := pageData{Section: SectionCategories}

	if err := r.ParseForm(); err != nil {
		h.fail(w, r, http.StatusBadRequest, errInvalidForm.Message, &data)
		return
	}

	name := r.PostForm.Get("name")
	data.CategoryName = name

	if _, err := h.categories.AddCategory(r.Context(), name); err != nil {
		h.logger.Error().Err(err).Msg("failed to add category")
		h.fail(w, r, http.StatusInternalServerError, "Failed to add category", &data)
		return
	}

	redirectAdded(w, r, SectionCategories, "category")
}

// fail re-renders the page with an error banner. Listing errors are logged only,
// the original message stays on the banner.
func (h *WebHandler) fail(w http.ResponseWriter, r *http.Request, status int, message string, data *pageData) {
	if err := h.load(r, data); err != nil {
		status = http.StatusInternalServerError
	}
	data.Error = message
	h.render(w, status, data)
}

// load fills the listings the active section displays.
func (h *WebHandler) load(r *http.Request, data *pageData) error {
	ctx := r.Context()

	switch data.Section {
	case SectionProducts:
		categories, err := h.categories.ListCategories(ctx)
		if err != nil {
			h.logger.Error().Err(err).Msg("failed to list categories")
			return err
		}
		products, err := h.products.ListProducts(ctx)
		if err != nil {
			h.logger.Error().Err(err).Msg("failed to list products")
			return err
		}
		data.Categories = categories
		data.Products = products
	case SectionCategories:
		categories, err := h.categories.ListCategories(ctx)
		if err != nil {
			h.logger.Error().Err(err).Msg("failed to list categories")
			return err
		}
		data.Categories = categories
	}

	return nil
}

func (h *WebHandler) render(w http.ResponseWriter, status int, data *pageData) {
	data.Menu = menu

	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, "index.html", data); err != nil {
		h.logger.Error().Err(err).Msg("failed to render page")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func redirectAdded(w http.ResponseWriter, r *http.Request, section, added string) {
	target := "/?" + url.Values{"section": {section}, "added": {added}}.Encode()
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func normaliseSection(s string) string {
	for _, entry := range menu {
		if entry.Key == s {
			return s
		}
	}
	return SectionProducts
}

// parseProductForm converts the submitted strings into a request.
// The price is rounded to cents. Empty numeric fields count as zero and an empty
// category selection means no category.
func parseProductForm(form productForm) (*model.ProductRequest, *model.DomainError) {
	req := &model.ProductRequest{Name: form.Name}

	if form.Description != "" {
		description := form.Description
		req.Description = &description
	}

	if form.UnitPrice != "" {
		price, err := decimal.NewFromString(form.UnitPrice)
		if err != nil {
			return nil, errPriceFormat
		}
		if price.IsNegative() {
			return nil, model.ErrInvalidPrice
		}
		req.UnitPrice = price.Round(2).InexactFloat64()
	}

	if form.StockQuantity != "" {
		quantity, err := strconv.Atoi(form.StockQuantity)
		if err != nil {
			return nil, errQuantityFormat
		}
		if quantity < 0 {
			return nil, model.ErrInvalidQuantity
		}
		req.StockQuantity = quantity
	}

	if form.CategoryID != "" {
		categoryID, err := strconv.ParseInt(form.CategoryID, 10, 64)
		if err != nil {
			return nil, errCategoryFormat
		}
		req.CategoryID = &categoryID
	}

	return req, nil
}

func formatPrice(v float64) string {
	return decimal.NewFromFloat(v).String()
}

func categoryLabel(name *string) string {
	if name == nil {
		return "None"
	}
	return *name
}
