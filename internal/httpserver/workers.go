package httpserver

import (
	"net/http"

	"woodcraft-market/internal/domain"
	reviewsvc "woodcraft-market/internal/service/review"
	workersvc "woodcraft-market/internal/service/worker"
	requestsvc "woodcraft-market/internal/service/workrequest"

	"github.com/gin-gonic/gin"
)

func listWorkersHandler(workers *workersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := workers.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"workers": out})
	}
}

func getWorkerHandler(workers *workersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		w, err := workers.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"worker": w})
	}
}

func createWorkerHandler(workers *workersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload domain.Worker
		if err := c.ShouldBindJSON(&payload); err != nil {
			badRequest(c, "invalid payload")
			return
		}
		created, err := workers.Create(c.Request.Context(), payload)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"worker": created})
	}
}

func updateWorkerHandler(workers *workersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload domain.Worker
		if err := c.ShouldBindJSON(&payload); err != nil {
			badRequest(c, "invalid payload")
			return
		}
		payload.ID = c.Param("id")
		updated, err := workers.Update(c.Request.Context(), payload)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"worker": updated})
	}
}

func deleteWorkerHandler(workers *workersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := workers.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func listReviewsHandler(reviews *reviewsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := reviews.ListByWorker(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"reviews": out})
	}
}

type createReviewRequest struct {
	UserName string `json:"userName" binding:"required"`
	Rating   int    `json:"rating" binding:"required"`
	Comment  string `json:"comment"`
}

func createReviewHandler(reviews *reviewsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createReviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid payload")
			return
		}
		created, err := reviews.Create(c.Request.Context(), reviewsvc.CreateInput{
			WorkerID: c.Param("id"),
			UserID:   currentUserID(c),
			UserName: req.UserName,
			Rating:   req.Rating,
			Comment:  req.Comment,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"review": created})
	}
}

type createWorkRequestRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Phone       string `json:"phone"`
	ProjectType string `json:"projectType" binding:"required"`
	Description string `json:"description" binding:"required"`
	BudgetRange string `json:"budgetRange"`
	Timeline    string `json:"timeline"`
}

func createWorkRequestHandler(requests *requestsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createWorkRequestRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid payload")
			return
		}
		created, err := requests.Create(c.Request.Context(), requestsvc.CreateInput{
			WorkerID:    c.Param("id"),
			UserID:      currentUserID(c),
			Name:        req.Name,
			Email:       req.Email,
			Phone:       req.Phone,
			ProjectType: req.ProjectType,
			Description: req.Description,
			BudgetRange: req.BudgetRange,
			Timeline:    req.Timeline,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"request": created})
	}
}

func listWorkRequestsHandler(requests *requestsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := requests.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"requests": out})
	}
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func updateWorkRequestStatusHandler(requests *requestsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid payload")
			return
		}
		updated, err := requests.UpdateStatus(c.Request.Context(), c.Param("id"), domain.RequestStatus(req.Status))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"request": updated})
	}
}
