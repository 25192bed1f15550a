package httpserver

import (
	"net/http"
	"strings"

	"woodcraft-market/internal/domain"
	profilesvc "woodcraft-market/internal/service/profile"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "currentUser"

// currentUserMiddleware resolves an optional bearer token into a profile.
// Requests without a valid token continue as guests; checkout attaches no
// user id in that case.
func currentUserMiddleware(profiles *profilesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" || profiles == nil {
			c.Next()
			return
		}
		p, err := profiles.LookupByToken(c.Request.Context(), token)
		if err == nil {
			c.Set(currentUserKey, p)
		}
		c.Next()
	}
}

// requireUser gates admin routes on an authenticated profile.
func requireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if currentUser(c) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

func currentUser(c *gin.Context) *domain.Profile {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil
	}
	p, ok := v.(*domain.Profile)
	if !ok {
		return nil
	}
	return p
}

// currentUserID returns the signed-in profile id, or nil for guests.
func currentUserID(c *gin.Context) *string {
	p := currentUser(c)
	if p == nil {
		return nil
	}
	id := p.ID
	return &id
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}

type signupRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
}

func signupHandler(profiles *profilesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req signupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid payload")
			return
		}
		p, token, err := profiles.Signup(c.Request.Context(), profilesvc.SignupInput{
			Email:    req.Email,
			Password: req.Password,
			FullName: req.FullName,
			Phone:    req.Phone,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"profile": p, "token": token})
	}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func loginHandler(profiles *profilesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid payload")
			return
		}
		p, token, err := profiles.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"profile": p, "token": token})
	}
}

func logoutHandler(profiles *profilesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.Status(http.StatusNoContent)
			return
		}
		if err := profiles.Logout(c.Request.Context(), token); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func meHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		p := currentUser(c)
		if p == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"profile": p})
	}
}
