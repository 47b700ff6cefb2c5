package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/qrkeeper/qrkeeper/internal/common"
	"github.com/qrkeeper/qrkeeper/internal/server/models"
)

// --- DTOs ---

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type createQRRequest struct {
	Content string `json:"content"`
	Image   string `json:"image"`
	Logo    string `json:"logo"`
}

type userDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type authResponse struct {
	User  userDTO `json:"user"`
	Token string  `json:"token"`
}

type qrDTO struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Content   string    `json:"content"`
	Image     string    `json:"image"`
	Logo      string    `json:"logo,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toUserDTO(u *models.User) userDTO {
	return userDTO{ID: u.ID, Name: u.Name, Email: u.Email}
}

func toQRDTO(qr *models.QRCode) qrDTO {
	return qrDTO{
		ID:        qr.ID,
		UserID:    qr.UserID,
		Content:   qr.Content,
		Image:     qr.Image,
		Logo:      qr.Logo,
		CreatedAt: qr.CreatedAt,
		UpdatedAt: qr.UpdatedAt,
	}
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: invalid json body", common.ErrorValidation)
	}
	return nil
}

// --- Handlers ---

func (s *HTTPServer) handlePing(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}

func (s *HTTPServer) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	user, token, err := s.users.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "registered", "email", user.Email)
	s.writeJSON(w, http.StatusOK, authResponse{User: toUserDTO(user), Token: token})
}

func (s *HTTPServer) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	user, token, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, authResponse{User: toUserDTO(user), Token: token})
}

func (s *HTTPServer) handleForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := s.users.ForgotPassword(r.Context(), req.Email); err != nil {
		s.writeError(w, r, err)
		return
	}

	// Same answer whether or not the account exists.
	s.writeJSON(w, http.StatusOK, map[string]string{
		"message": "If that account exists, check your email for a reset link",
	})
}

func (s *HTTPServer) handleListQRs(w http.ResponseWriter, r *http.Request) {
	list, err := s.qrs.List(r.Context(), userIDFromContext(r.Context()))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	out := make([]qrDTO, 0, len(list))
	for _, qr := range list {
		out = append(out, toQRDTO(qr))
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *HTTPServer) handleCreateQR(w http.ResponseWriter, r *http.Request) {
	var req createQRRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	qr, err := s.qrs.Create(r.Context(), userIDFromContext(r.Context()), req.Content, req.Image, req.Logo)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, toQRDTO(qr))
}

func (s *HTTPServer) handleDeleteQR(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.qrs.Delete(r.Context(), userIDFromContext(r.Context()), id); err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]string{"id": id})
}
