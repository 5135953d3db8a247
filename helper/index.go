package helper

import (
	"errors"
	"log"
	"net/mail"
	"os"
	"santaratrip/constants"
	"santaratrip/database"
	"santaratrip/model"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var JwtSecret = []byte(os.Getenv("JWT_SECRET"))

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func GetUserByEmail(e string) (*model.User, error) {
	db := database.DB
	var user model.User
	if err := db.Where(&model.User{Email: e}).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func Valid(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

func GenerateAccessToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["userId"] = tokenClaim.UserId
	claims["email"] = tokenClaim.Email
	claims["role"] = tokenClaim.Role
	claims["exp"] = time.Now().Add(time.Minute * 60).Unix()

	t, err := token.SignedString(JwtSecret)
	return t, err
}

func GenerateRefreshToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["userId"] = tokenClaim.UserId
	claims["email"] = tokenClaim.Email
	claims["exp"] = time.Now().Add(time.Hour * 24 * 7).Unix()

	t, err := token.SignedString(JwtSecret)
	return t, err
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return JwtSecret, nil
	})
}

// GetInfoUserFromToken resolves the JWT stored in Locals by Protected()
// into the claim plus the backing user row. Returns a zero claim for
// guests or unknown users.
func GetInfoUserFromToken(c *fiber.Ctx) (model.TokenClaim, model.User) {
	var emptyUser model.User
	guestClaim := model.TokenClaim{}

	u := c.Locals("user")
	if u == nil {
		return guestClaim, emptyUser
	}

	userToken, ok := u.(*jwt.Token)
	if !ok || userToken == nil {
		return guestClaim, emptyUser
	}

	claims, ok := userToken.Claims.(jwt.MapClaims)
	if !ok {
		return guestClaim, emptyUser
	}

	userIdFloat, _ := claims["userId"].(float64)
	if userIdFloat == 0 {
		return guestClaim, emptyUser
	}

	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)

	tokenClaim := model.TokenClaim{
		UserId: uint(userIdFloat),
		Email:  email,
		Role:   role,
	}

	var user model.User
	db := database.DB
	if err := db.First(&user, tokenClaim.UserId).Error; err != nil {
		log.Printf("User not found (id=%d): %v", tokenClaim.UserId, err)
		return guestClaim, emptyUser
	}

	return tokenClaim, user
}

// IsAdmin reports whether the request carries an admin token.
func IsAdmin(c *fiber.Ctx) bool {
	claim, _ := GetInfoUserFromToken(c)
	return claim.Role == constants.ROLE_ADMIN
}
