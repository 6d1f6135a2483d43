package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"heladeria/internal/service"
)

type staffLoginRequest struct {
	Password string `json:"password"`
}

type staffLoginResponse struct {
	Token string `json:"token"`
}

func StaffLoginHandler(auth *service.StaffAuth, secret string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req staffLoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		if err := auth.Verify(req.Password); err != nil {
			if errors.Is(err, service.ErrBadPassword) {
				http.Error(w, "invalid password", http.StatusUnauthorized)
				return
			}
			http.Error(w, "staff auth disabled", http.StatusForbidden)
			return
		}

		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"staff": true,
			"exp":   jwt.NewNumericDate(time.Now().Add(12 * time.Hour)),
		})

		tokenString, err := token.SignedString([]byte(secret))
		if err != nil {
			http.Error(w, "token generation failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Authorization", "Bearer "+tokenString)
		writeJSON(w, http.StatusOK, staffLoginResponse{Token: tokenString})
	}
}
