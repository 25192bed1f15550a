package httpserver

import (
	"fmt"
	"net/http"

	"woodcraft-market/internal/cart"
	ordersvc "woodcraft-market/internal/service/order"
	productsvc "woodcraft-market/internal/service/product"

	"github.com/gin-gonic/gin"
)

// cartSessionHeader carries the opaque cart session id. The server echoes it
// on every cart response; clients send it back on follow-up requests.
const cartSessionHeader = "X-Cart-Session"

// sessionStore resolves the request's cart and stamps the session id onto the
// response so freshly minted sessions reach the client.
func sessionStore(c *gin.Context, carts *cart.Manager) *cart.Store {
	id, store := carts.Session(c.GetHeader(cartSessionHeader))
	c.Header(cartSessionHeader, id)
	return store
}

type cartResponse struct {
	Lines      []cart.Line `json:"lines"`
	TotalItems int         `json:"totalItems"`
	TotalCents int64       `json:"totalCents"`
	Total      string      `json:"total"`
}

// newCartResponse renders a snapshot. The formatted total is the only place
// cents become a decimal string.
func newCartResponse(snap cart.Snapshot) cartResponse {
	lines := snap.Lines
	if lines == nil {
		lines = []cart.Line{}
	}
	return cartResponse{
		Lines:      lines,
		TotalItems: snap.TotalItems,
		TotalCents: snap.TotalCents,
		Total:      formatCents(snap.TotalCents),
	}
}

func formatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

func getCartHandler(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := sessionStore(c, carts)
		c.JSON(http.StatusOK, newCartResponse(store.Snapshot()))
	}
}

type addCartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

func addCartItemHandler(carts *cart.Manager, products *productsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid payload")
			return
		}
		if req.Quantity == 0 {
			req.Quantity = 1
		}

		p, err := products.Get(c.Request.Context(), req.ProductID)
		if err != nil {
			respondError(c, err)
			return
		}

		store := sessionStore(c, carts)
		store.Add(*p, req.Quantity)
		c.JSON(http.StatusOK, newCartResponse(store.Snapshot()))
	}
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

func updateCartItemHandler(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid payload")
			return
		}
		store := sessionStore(c, carts)
		store.UpdateQuantity(c.Param("productId"), req.Quantity)
		c.JSON(http.StatusOK, newCartResponse(store.Snapshot()))
	}
}

func removeCartItemHandler(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := sessionStore(c, carts)
		store.Remove(c.Param("productId"))
		c.JSON(http.StatusOK, newCartResponse(store.Snapshot()))
	}
}

func clearCartHandler(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := sessionStore(c, carts)
		store.Clear()
		c.JSON(http.StatusOK, newCartResponse(store.Snapshot()))
	}
}

type checkoutRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required"`
	Phone           string `json:"phone"`
	ShippingAddress string `json:"shippingAddress"`
}

// checkoutHandler submits the session cart as an order. The cart is cleared
// only after the order is fully written; on any failure, partial orders
// included, the cart stays intact so the client can retry.
func checkoutHandler(carts *cart.Manager, orders *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req checkoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid payload")
			return
		}

		store := sessionStore(c, carts)
		order, err := orders.Submit(c.Request.Context(), ordersvc.CustomerInfo{
			UserID:          currentUserID(c),
			Name:            req.Name,
			Email:           req.Email,
			Phone:           req.Phone,
			ShippingAddress: req.ShippingAddress,
		}, store.Snapshot())
		if err != nil {
			respondError(c, err)
			return
		}

		store.Clear()
		c.JSON(http.StatusCreated, gin.H{"order": order})
	}
}
