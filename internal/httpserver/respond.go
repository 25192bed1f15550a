package httpserver

import (
	"errors"
	"net/http"

	"woodcraft-market/internal/domain"
	ordersvc "woodcraft-market/internal/service/order"
	profilesvc "woodcraft-market/internal/service/profile"
	requestsvc "woodcraft-market/internal/service/workrequest"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto HTTP statuses. Unknown errors become
// an opaque 500 so internals do not leak to clients.
func respondError(c *gin.Context, err error) {
	var partial *ordersvc.PartialError
	switch {
	case errors.As(err, &partial):
		// Header written, items missing, compensation failed. The client must
		// keep its cart; operators reconcile by order id.
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "order was not fully recorded",
			"orderId": partial.OrderID,
		})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "already exists"})
	case errors.Is(err, domain.ErrInvalidReference):
		c.JSON(http.StatusBadRequest, gin.H{"error": "referenced entity does not exist"})
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, ordersvc.ErrEmptyCart), errors.Is(err, ordersvc.ErrMissingCustomer):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, ordersvc.ErrInvalidTransition), errors.Is(err, requestsvc.ErrInvalidStatus):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, profilesvc.ErrInvalidCredentials), errors.Is(err, profilesvc.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
