package httpapi

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"myfooddesk/internal/domain"
	"myfooddesk/internal/service"
)

type Handler struct {
	Products  service.ProductServiceInterface
	Zones     service.ZoneServiceInterface
	Cart      service.CartServiceInterface
	Checkout  service.CheckoutServiceInterface
	Orders    service.OrderServiceInterface
	Dashboard service.DashboardServiceInterface
	Shop      service.ShopStatusServiceInterface
	Auth      service.AuthServiceInterface
	Schedule  *service.ScheduleValidator
}

func NewHandler(
	products service.ProductServiceInterface,
	zones service.ZoneServiceInterface,
	cart service.CartServiceInterface,
	checkout service.CheckoutServiceInterface,
	orders service.OrderServiceInterface,
	dashboard service.DashboardServiceInterface,
	shop service.ShopStatusServiceInterface,
	auth service.AuthServiceInterface,
	schedule *service.ScheduleValidator,
) *Handler {
	return &Handler{
		Products:  products,
		Zones:     zones,
		Cart:      cart,
		Checkout:  checkout,
		Orders:    orders,
		Dashboard: dashboard,
		Shop:      shop,
		Auth:      auth,
		Schedule:  schedule,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/products", h.createProduct).Methods("POST")
	r.HandleFunc("/api/products", h.getProducts).Methods("GET")
	r.HandleFunc("/api/products/{id}", h.updateProduct).Methods("PUT")
	r.HandleFunc("/api/products/{id}", h.deleteProduct).Methods("DELETE")

	r.HandleFunc("/api/delivery-zones", h.createZone).Methods("POST")
	r.HandleFunc("/api/delivery-zones", h.getZones).Methods("GET")
	r.HandleFunc("/api/delivery-zones/{id}", h.updateZone).Methods("PUT")
	r.HandleFunc("/api/delivery-zones/{id}", h.deleteZone).Methods("DELETE")

	r.HandleFunc("/api/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart/items", h.addCartItem).Methods("POST")
	r.HandleFunc("/api/cart/items/{productId}", h.updateCartItem).Methods("PUT")
	r.HandleFunc("/api/cart/items/{productId}", h.removeCartItem).Methods("DELETE")

	r.HandleFunc("/api/orders", h.placeOrder).Methods("POST")
	r.HandleFunc("/api/orders", h.getOrders).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.updateOrderStatus).Methods("PUT")
	r.HandleFunc("/api/orders/{id}/advance", h.advanceOrder).Methods("POST")
	r.HandleFunc("/api/orders/{id}", h.deleteOrder).Methods("DELETE")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")

	r.HandleFunc("/api/schedule/slots", h.getScheduleSlots).Methods("GET")
	r.HandleFunc("/api/dashboard", h.getDashboard).Methods("GET")

	r.HandleFunc("/api/shop-status", h.getShopStatus).Methods("GET")
	r.HandleFunc("/api/shop-status", h.setShopStatus).Methods("PUT")
	r.HandleFunc("/api/shop-status/notice", h.getClosedNotice).Methods("GET")

	r.HandleFunc("/api/staff-users", h.getStaffUsers).Methods("GET")
	r.HandleFunc("/api/staff-users", h.createStaffUser).Methods("POST")
	r.HandleFunc("/api/login", h.login).Methods("POST")
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeServiceError(w http.ResponseWriter, err error) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{
			"error": ve.Message,
			"field": ve.Field,
		})
	case errors.Is(err, service.ErrShopClosed):
		writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": err.Error()})
	case errors.Is(err, sql.ErrNoRows):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

// sessionID identifies the customer's cart. No cookie machinery; the client
// sends an opaque id it generated itself.
func sessionID(r *http.Request) string {
	return r.Header.Get("X-Session-ID")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "myfooddesk-api",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var p domain.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Products.Create(&p); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *Handler) getProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.Products.List()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if products == nil {
		products = []domain.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var p domain.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	p.ID = id
	if err := h.Products.Update(&p); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	rows, err := h.Products.Delete(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if rows == 0 {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "product not found"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createZone(w http.ResponseWriter, r *http.Request) {
	var z domain.DeliveryZone
	if err := json.NewDecoder(r.Body).Decode(&z); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Zones.Create(&z); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, z)
}

func (h *Handler) getZones(w http.ResponseWriter, r *http.Request) {
	zones, err := h.Zones.List()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if zones == nil {
		zones = []domain.DeliveryZone{}
	}
	writeJSON(w, http.StatusOK, zones)
}

func (h *Handler) updateZone(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var z domain.DeliveryZone
	if err := json.NewDecoder(r.Body).Decode(&z); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	z.ID = id
	if err := h.Zones.Update(&z); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, z)
}

func (h *Handler) deleteZone(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	rows, err := h.Zones.Delete(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if rows == 0 {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "delivery zone not found"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	session := sessionID(r)
	if session == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing X-Session-ID header"})
		return
	}
	view, err := h.Cart.View(r.Context(), session)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	session := sessionID(r)
	if session == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing X-Session-ID header"})
		return
	}
	var req struct {
		ProductID int `json:"productId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Cart.Add(r.Context(), session, req.ProductID); err != nil {
		writeServiceError(w, err)
		return
	}
	view, err := h.Cart.View(r.Context(), session)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	session := sessionID(r)
	if session == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing X-Session-ID header"})
		return
	}
	productID, _ := strconv.Atoi(mux.Vars(r)["productId"])
	var req struct {
		Qty int `json:"qty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Qty < 0 {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "qty must not be negative"})
		return
	}
	if err := h.Cart.UpdateQty(r.Context(), session, productID, req.Qty); err != nil {
		writeServiceError(w, err)
		return
	}
	view, err := h.Cart.View(r.Context(), session)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	session := sessionID(r)
	if session == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing X-Session-ID header"})
		return
	}
	productID, _ := strconv.Atoi(mux.Vars(r)["productId"])
	if err := h.Cart.Remove(r.Context(), session, productID); err != nil {
		writeServiceError(w, err)
		return
	}
	view, err := h.Cart.View(r.Context(), session)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	session := sessionID(r)
	if session == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing X-Session-ID header"})
		return
	}
	var req service.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	order, err := h.Checkout.PlaceOrder(r.Context(), session, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func orderFilterFromQuery(r *http.Request, zones service.ZoneServiceInterface) service.OrderFilter {
	q := r.URL.Query()
	f := service.OrderFilter{
		Quick:  q.Get("quick"),
		Status: q.Get("status"),
		From:   q.Get("from"),
		To:     q.Get("to"),
		Query:  q.Get("q"),
		Sort:   q.Get("sort"),
	}
	if pid := q.Get("productId"); pid != "" {
		f.ProductID, _ = strconv.Atoi(pid)
	}
	if zid := q.Get("zoneId"); zid != "" && zones != nil {
		id, _ := strconv.Atoi(zid)
		if all, err := zones.List(); err == nil {
			for i := range all {
				if all[i].ID == id {
					f.Zone = &all[i]
					break
				}
			}
		}
	}
	return f
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.List(orderFilterFromQuery(r, h.Zones))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	order, err := h.Orders.Get(id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "order not found"})
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	order, err := h.Orders.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) advanceOrder(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	order, err := h.Orders.Advance(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	rows, err := h.Orders.Delete(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if rows == 0 {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "order not found"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	qrCode, err := h.Orders.QRCode(id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "order not found"})
		return
	}
	if len(qrCode) == 0 {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "qr code not found"})
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qrCode)
}

// getScheduleSlots lists the hourly slots; with ?date= it keeps only slots
// still selectable for that date (past hours drop off on same-day dates).
func (h *Handler) getScheduleSlots(w http.ResponseWriter, r *http.Request) {
	slots := service.HourlySlots()
	if date := r.URL.Query().Get("date"); date != "" && h.Schedule != nil {
		valid := make([]string, 0, len(slots))
		for _, slot := range slots {
			if h.Schedule.IsSlotValidForDate(date, slot) {
				valid = append(valid, slot)
			}
		}
		slots = valid
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"slots": slots,
	})
}

func (h *Handler) getDashboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := service.DashboardFilter{
		GroupBy: q.Get("groupBy"),
		From:    q.Get("from"),
		To:      q.Get("to"),
	}
	if pid := q.Get("productId"); pid != "" {
		f.ProductID, _ = strconv.Atoi(pid)
	}
	if zid := q.Get("zoneId"); zid != "" {
		id, _ := strconv.Atoi(zid)
		if all, err := h.Zones.List(); err == nil {
			for i := range all {
				if all[i].ID == id {
					f.Zone = &all[i]
					break
				}
			}
		}
	}
	report, err := h.Dashboard.Report(f)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *Handler) getShopStatus(w http.ResponseWriter, r *http.Request) {
	open, msg, err := h.Shop.Status(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"isOpen":       open,
		"closeMessage": msg,
	})
}

func (h *Handler) setShopStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IsOpen       bool   `json:"isOpen"`
		CloseMessage string `json:"closeMessage"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var err error
	if req.IsOpen {
		err = h.Shop.Open(r.Context())
	} else {
		err = h.Shop.Close(r.Context(), req.CloseMessage)
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}
	h.getShopStatus(w, r)
}

func (h *Handler) getClosedNotice(w http.ResponseWriter, r *http.Request) {
	show, msg, err := h.Shop.ClosedNotice(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"show":    show,
		"message": msg,
	})
}

func (h *Handler) getStaffUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Auth.ListUsers()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if users == nil {
		users = []domain.StaffUser{}
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *Handler) createStaffUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Role     string `json:"role"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	u, err := h.Auth.CreateUser(req.Name, req.Email, req.Role, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, u)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	u, err := h.Auth.Login(req.Email, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}
