package handlers

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"campuswear/internal/models"
	"campuswear/internal/store"
)

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Username string `json:"username"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type authTokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
}

/* =========================
   TOKEN HELPERS
========================= */

func issueUserToken(userID, email, secret string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"userId": userID,
		"email":  email,
		"exp":    time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func newRefreshToken() (string, error) {
	var buf [32]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf[:]), nil
}

func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

func issueTokenPair(ctx context.Context, users store.UserStore, user *models.User, secret string, accessTTL, refreshTTL time.Duration) (*authTokens, error) {
	accessToken, err := issueUserToken(user.ID, user.Email, secret, accessTTL)
	if err != nil {
		return nil, err
	}

	refreshToken, err := newRefreshToken()
	if err != nil {
		return nil, err
	}

	err = users.SaveRefreshToken(ctx, models.RefreshToken{
		TokenHash: hashToken(refreshToken),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(refreshTTL),
		CreatedAt: time.Now(),
	})
	if err != nil {
		return nil, err
	}

	return &authTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(accessTTL.Seconds()),
	}, nil
}

func userResponse(user *models.User) gin.H {
	return gin.H{
		"id":        user.ID,
		"email":     user.Email,
		"username":  user.Username,
		"createdAt": user.CreatedAt,
	}
}

/* =========================
   REGISTER
========================= */

func Register(users store.UserStore, jwtSecret string, accessTTL, refreshTTL time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Println("[AUTH] [ERROR] password hash failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
		defer cancel()

		user, err := users.CreateUser(ctx, models.User{
			Email:        email,
			Username:     strings.TrimSpace(req.Username),
			PasswordHash: string(hash),
		})
		if errors.Is(err, store.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
			return
		}
		if err != nil {
			log.Println("[AUTH] [ERROR] create user failed:", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "store unavailable"})
			return
		}

		tokens, err := issueTokenPair(ctx, users, user, jwtSecret, accessTTL, refreshTTL)
		if err != nil {
			log.Println("[AUTH] [ERROR] register token generation failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
			return
		}

		log.Println("[AUTH] [INFO] user registered:", email)
		c.JSON(http.StatusCreated, gin.H{"user": userResponse(user), "tokens": tokens})
	}
}

/* =========================
   LOGIN
========================= */

func Login(users store.UserStore, jwtSecret string, accessTTL, refreshTTL time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))

		ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
		defer cancel()

		user, err := users.GetUserByEmail(ctx, email)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		if err != nil {
			log.Println("[AUTH] [ERROR] login lookup failed:", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "store unavailable"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
			log.Println("[AUTH] [ERROR] login invalid credentials for user")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}

		tokens, err := issueTokenPair(ctx, users, user, jwtSecret, accessTTL, refreshTTL)
		if err != nil {
			log.Println("[AUTH] [ERROR] login token generation failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": userResponse(user), "tokens": tokens})
	}
}

/* =========================
   REFRESH
========================= */

func Refresh(users store.UserStore, jwtSecret string, accessTTL, refreshTTL time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req refreshRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
		defer cancel()

		tokenHash := hashToken(strings.TrimSpace(req.RefreshToken))
		stored, err := users.GetRefreshToken(ctx, tokenHash)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid refresh token"})
			return
		}
		if err != nil {
			log.Println("[AUTH] [ERROR] refresh lookup failed:", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "store unavailable"})
			return
		}

		if stored.Revoked || time.Now().After(stored.ExpiresAt) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "refresh token expired"})
			return
		}

		user, err := users.GetUser(ctx, stored.UserID)
		if err != nil {
			log.Println("[AUTH] [ERROR] refresh user lookup failed:", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid refresh token"})
			return
		}

		// Rotation: the presented token is burned before a new pair is issued.
		if err := users.RevokeRefreshToken(ctx, tokenHash); err != nil {
			log.Println("[AUTH] [ERROR] refresh revoke failed:", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "store unavailable"})
			return
		}

		tokens, err := issueTokenPair(ctx, users, user, jwtSecret, accessTTL, refreshTTL)
		if err != nil {
			log.Println("[AUTH] [ERROR] refresh token generation failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"tokens": tokens})
	}
}

/* =========================
   LOGOUT
========================= */

func Logout(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req refreshRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
		defer cancel()

		if err := users.RevokeRefreshToken(ctx, hashToken(strings.TrimSpace(req.RefreshToken))); err != nil {
			if !errors.Is(err, store.ErrNotFound) {
				log.Println("[AUTH] [ERROR] logout revoke failed:", err)
			}
			// Logout is idempotent: an unknown token is already logged out.
		}

		c.JSON(http.StatusOK, gin.H{"message": "logged out"})
	}
}

/* =========================
   ME
========================= */

func GetMe(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userId")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
		defer cancel()

		user, err := users.GetUser(ctx, userID)
		if err != nil {
			if !errors.Is(err, store.ErrNotFound) {
				log.Println("[AUTH] [ERROR] get me failed:", err)
			}
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}

		c.JSON(http.StatusOK, userResponse(user))
	}
}
