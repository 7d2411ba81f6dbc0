package handlers

import (
	"database/sql"
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/yourorg/wayfindsg/internal/models"
)

// package-level dependencies
var (
	setupOnce sync.Once
	setupMu   sync.RWMutex
	dbConn    *sql.DB
	jwtSecret []byte
	tokenTTL  = 24 * time.Hour
)

// Setup wires shared dependencies for handlers. Call this during app bootstrap.
func Setup(db *sql.DB) {
	setupOnce.Do(func() {
		setupMu.Lock()
		defer setupMu.Unlock()

		dbConn = db
		secret := os.Getenv("JWT_SECRET")
		if secret == "" {
			if os.Getenv("ENV") == "production" || os.Getenv("ENVIRONMENT") == "production" {
				log.Fatal("JWT_SECRET must be set in production environment")
			}
			log.Println("WARNING: using default JWT secret (development only)")
			secret = "dev-secret-change-me-0123456789abcdef"
		}
		if len(secret) < 32 {
			log.Fatalf("JWT_SECRET must be at least 32 characters long (current: %d)", len(secret))
		}
		jwtSecret = []byte(secret)

		if ttl := os.Getenv("JWT_TTL"); ttl != "" {
			dur, err := time.ParseDuration(ttl)
			if err != nil || dur <= 0 {
				log.Printf("invalid JWT_TTL=%q, using default %s", ttl, tokenTTL)
			} else {
				tokenTTL = dur
			}
		}
	})
}

func getDBConn() *sql.DB {
	setupMu.RLock()
	defer setupMu.RUnlock()
	return dbConn
}

func getJWTSecret() []byte {
	setupMu.RLock()
	defer setupMu.RUnlock()
	return jwtSecret
}

type userClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

func issueToken(userID int64, username, role string) (string, time.Time, error) {
	now := time.Now()
	expires := now.Add(tokenTTL)
	claims := userClaims{
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(getJWTSecret())
	return signed, expires, err
}

// Register handles POST /api/register.
func Register(c *fiber.Ctx) error {
	db := getDBConn()
	if db == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Error: "server not ready"})
	}
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Error: "invalid json"})
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	req.Name = strings.TrimSpace(req.Name)
	req.Role = strings.TrimSpace(strings.ToLower(req.Role))

	if req.Username == "" || req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(models.ErrorResponse{Error: "username, email and password required"})
	}
	if !strings.Contains(req.Email, "@") {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(models.ErrorResponse{Error: "invalid email"})
	}
	if len(req.Password) < 8 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(models.ErrorResponse{Error: "password must be at least 8 characters"})
	}
	switch req.Role {
	case "":
		req.Role = models.RolePatient
	case models.RolePatient, models.RoleCaregiver:
	default:
		return c.Status(fiber.StatusUnprocessableEntity).JSON(models.ErrorResponse{Error: "role must be patient or caregiver"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Error: "hash error"})
	}

	res, err := db.Exec(`
		INSERT INTO users (username, email, name, role, password_hash)
		VALUES (?, ?, ?, ?, ?)
	`, req.Username, req.Email, req.Name, req.Role, string(hash))
	if err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") {
			return c.Status(fiber.StatusConflict).JSON(models.ErrorResponse{Error: "username or email already exists"})
		}
		log.Printf("register insert failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Error: "db error"})
	}

	userID, _ := res.LastInsertId()
	token, expires, err := issueToken(userID, req.Username, req.Role)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Error: "token error"})
	}

	return c.Status(fiber.StatusCreated).JSON(models.LoginResponse{
		Token: token,
		User: models.UserDTO{
			ID:       userID,
			Username: req.Username,
			Name:     req.Name,
			Role:     req.Role,
			Email:    req.Email,
		},
		ExpiresAt: expires,
	})
}

// Login handles POST /api/login.
func Login(c *fiber.Ctx) error {
	db := getDBConn()
	if db == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Error: "server not ready"})
	}
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Error: "invalid json"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(models.ErrorResponse{Error: "username and password required"})
	}

	var user models.User
	err := db.QueryRow(`
		SELECT id, username, email, name, role, password_hash
		FROM users WHERE username = ?
	`, req.Username).Scan(&user.ID, &user.Username, &user.Email, &user.Name, &user.Role, &user.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{Error: "invalid credentials"})
	}
	if err != nil {
		log.Printf("login query failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Error: "db error"})
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{Error: "invalid credentials"})
	}

	token, expires, err := issueToken(user.ID, user.Username, user.Role)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Error: "token error"})
	}

	return c.JSON(models.LoginResponse{
		Token: token,
		User: models.UserDTO{
			ID:       user.ID,
			Username: user.Username,
			Name:     user.Name,
			Role:     user.Role,
			Email:    user.Email,
		},
		ExpiresAt: expires,
	})
}

// RequireAuth validates the bearer token and stores userID and role in
// the request context.
func RequireAuth(c *fiber.Ctx) error {
	header := c.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{Error: "missing bearer token"})
	}
	raw := strings.TrimPrefix(header, "Bearer ")

	claims := &userClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return getJWTSecret(), nil
	})
	if err != nil || !token.Valid {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{Error: "invalid token"})
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{Error: "invalid token subject"})
	}
	c.Locals("userID", userID)
	c.Locals("username", claims.Username)
	c.Locals("role", claims.Role)
	return c.Next()
}

// currentUserID pulls the authenticated user's ID out of the context.
func currentUserID(c *fiber.Ctx) (int64, bool) {
	id, ok := c.Locals("userID").(int64)
	return id, ok
}

// LinkCaregiver handles POST /api/caregiver/link: the authenticated
// caregiver links themselves to a patient account by username.
func LinkCaregiver(c *fiber.Ctx) error {
	db := getDBConn()
	if db == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Error: "server not ready"})
	}
	caregiverID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{Error: "authentication required"})
	}
	if role, _ := c.Locals("role").(string); role != models.RoleCaregiver {
		return c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse{Error: "caregiver role required"})
	}

	var req models.CaregiverLinkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Error: "invalid json"})
	}
	req.PatientUsername = strings.TrimSpace(req.PatientUsername)
	if req.PatientUsername == "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(models.ErrorResponse{Error: "patient_username required"})
	}

	var patientID int64
	var patientRole string
	err := db.QueryRow(`SELECT id, role FROM users WHERE username = ?`, req.PatientUsername).Scan(&patientID, &patientRole)
	if errors.Is(err, sql.ErrNoRows) {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse{Error: "patient not found"})
	}
	if err != nil {
		log.Printf("caregiver link lookup failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Error: "db error"})
	}
	if patientRole != models.RolePatient {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(models.ErrorResponse{Error: "target account is not a patient"})
	}

	if _, err := db.Exec(`
		INSERT INTO caregiver_links (caregiver_id, patient_id) VALUES (?, ?)
	`, caregiverID, patientID); err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") {
			return c.Status(fiber.StatusConflict).JSON(models.ErrorResponse{Error: "already linked"})
		}
		log.Printf("caregiver link insert failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Error: "db error"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "caregiver linked",
	})
}

// caregiverLinked reports whether caregiverID is linked to patientID.
func caregiverLinked(db *sql.DB, caregiverID, patientID int64) (bool, error) {
	var one int
	err := db.QueryRow(`
		SELECT 1 FROM caregiver_links WHERE caregiver_id = ? AND patient_id = ?
	`, caregiverID, patientID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
