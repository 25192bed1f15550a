package httpserver

import (
	"net/http"

	"woodcraft-market/internal/domain"
	categorysvc "woodcraft-market/internal/service/category"
	gallerysvc "woodcraft-market/internal/service/gallery"
	productsvc "woodcraft-market/internal/service/product"
	servicesvc "woodcraft-market/internal/service/service"

	"github.com/gin-gonic/gin"
)

func listCategoriesHandler(categories *categorysvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := categories.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"categories": out})
	}
}

func createCategoryHandler(categories *categorysvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload domain.Category
		if err := c.ShouldBindJSON(&payload); err != nil {
			badRequest(c, "invalid payload")
			return
		}
		created, err := categories.Create(c.Request.Context(), payload)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"category": created})
	}
}

func deleteCategoryHandler(categories *categorysvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := categories.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func listProductsHandler(products *productsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := products.List(c.Request.Context(), productsvc.ListInput{
			CategoryID:   c.Query("category"),
			Search:       c.Query("search"),
			FeaturedOnly: c.Query("featured") == "true",
			InStockOnly:  c.Query("inStock") == "true",
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": out})
	}
}

func getProductHandler(products *productsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := products.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"product": p})
	}
}

func createProductHandler(products *productsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload domain.Product
		if err := c.ShouldBindJSON(&payload); err != nil {
			badRequest(c, "invalid payload")
			return
		}
		created, err := products.Create(c.Request.Context(), payload)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"product": created})
	}
}

func updateProductHandler(products *productsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload domain.Product
		if err := c.ShouldBindJSON(&payload); err != nil {
			badRequest(c, "invalid payload")
			return
		}
		payload.ID = c.Param("id")
		updated, err := products.Update(c.Request.Context(), payload)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"product": updated})
	}
}

func deleteProductHandler(products *productsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := products.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func listServicesHandler(services *servicesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := services.List(c.Request.Context(), servicesvc.ListInput{
			CategoryID:    c.Query("category"),
			Search:        c.Query("search"),
			AvailableOnly: c.Query("available") == "true",
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"services": out})
	}
}

func createServiceHandler(services *servicesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload domain.Service
		if err := c.ShouldBindJSON(&payload); err != nil {
			badRequest(c, "invalid payload")
			return
		}
		created, err := services.Create(c.Request.Context(), payload)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"service": created})
	}
}

func updateServiceHandler(services *servicesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload domain.Service
		if err := c.ShouldBindJSON(&payload); err != nil {
			badRequest(c, "invalid payload")
			return
		}
		payload.ID = c.Param("id")
		updated, err := services.Update(c.Request.Context(), payload)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"service": updated})
	}
}

func deleteServiceHandler(services *servicesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := services.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func listGalleryHandler(gallery *gallerysvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := gallery.List(c.Request.Context(), gallerysvc.ListInput{
			CategoryID:   c.Query("category"),
			FeaturedOnly: c.Query("featured") == "true",
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": out})
	}
}

func createGalleryItemHandler(gallery *gallerysvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload domain.GalleryItem
		if err := c.ShouldBindJSON(&payload); err != nil {
			badRequest(c, "invalid payload")
			return
		}
		created, err := gallery.Create(c.Request.Context(), payload)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"item": created})
	}
}

func deleteGalleryItemHandler(gallery *gallerysvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := gallery.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
