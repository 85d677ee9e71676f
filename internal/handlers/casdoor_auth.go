package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/casdoor/casdoor-go-sdk/casdoorsdk"
	"github.com/gin-gonic/gin"

	"github.com/student-tracker/tracker-service/internal/config"
	"github.com/student-tracker/tracker-service/internal/models"
	"github.com/student-tracker/tracker-service/internal/repositories"
)

// CasdoorAuthMiddleware resolves the caller identity from a bearer token.
// Every owner-scoped operation hangs off the user_id this middleware sets;
// nothing downstream trusts identity fields in the payload.
type CasdoorAuthMiddleware struct {
	client   *casdoorsdk.Client
	userRepo repositories.UserRepository
}

func NewCasdoorAuthMiddleware(cfg config.CasdoorConfig, userRepo repositories.UserRepository) *CasdoorAuthMiddleware {
	client := casdoorsdk.NewClient(
		cfg.Endpoint,
		cfg.ClientID,
		cfg.ClientSecret,
		cfg.Cert,
		cfg.Organization,
		cfg.Application,
	)

	return &CasdoorAuthMiddleware{
		client:   client,
		userRepo: userRepo,
	}
}

// AuthMiddleware returns a Gin middleware that fails the whole request with
// 401 before any store access when no valid identity is presented.
func (cam *CasdoorAuthMiddleware) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, ErrorResponse{
				Message: "Authorization header missing",
			})
			c.Abort()
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || strings.ToLower(tokenParts[0]) != "bearer" {
			c.JSON(http.StatusUnauthorized, ErrorResponse{
				Message: "Invalid authorization header format",
			})
			c.Abort()
			return
		}

		claims, err := cam.client.ParseJwtToken(tokenParts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, ErrorResponse{
				Message: fmt.Sprintf("Invalid token: %v", err),
			})
			c.Abort()
			return
		}

		user, err := cam.resolveUser(c.Request.Context(), claims)
		if err != nil {
			c.JSON(http.StatusUnauthorized, ErrorResponse{
				Message: "Failed to resolve user identity",
			})
			c.Abort()
			return
		}

		c.Set("user_id", user.ID)
		c.Set("user_email", user.Email)

		c.Next()
	}
}

// resolveUser maps token claims onto the local users table, creating the
// federated user row on first sight.
func (cam *CasdoorAuthMiddleware) resolveUser(ctx context.Context, claims *casdoorsdk.Claims) (*models.User, error) {
	if claims.User.Email == "" {
		return nil, fmt.Errorf("token carries no email claim")
	}

	user, err := cam.userRepo.GetByEmail(ctx, nil, claims.User.Email)
	if err == nil {
		return user, nil
	}

	name := claims.User.DisplayName
	if name == "" {
		name = claims.User.Name
	}
	user = &models.User{
		ID:       claims.User.Id,
		Name:     name,
		Email:    claims.User.Email,
		Provider: models.ProviderGoogle,
	}
	if err := cam.userRepo.Create(ctx, nil, user); err != nil {
		return nil, fmt.Errorf("failed to create federated user: %w", err)
	}
	return user, nil
}
