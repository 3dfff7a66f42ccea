package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"github.com/atelier-interioare/site-backend/database"
	"github.com/atelier-interioare/site-backend/errs"
)

// authMiddleware verifies bearer tokens and enforces the admin allow-list.
// A missing or invalid token is 401; a valid token whose subject is not
// allow-listed is 403.
type authMiddleware struct {
	responder Responder
	secret    []byte
	admins    *database.AdminRepo
}

func newAuthMiddleware(secret string, admins *database.AdminRepo) authMiddleware {
	logger := log.With().Str("handlerName", "authMiddleware").Logger()
	return authMiddleware{
		responder: NewResponder(logger),
		secret:    []byte(secret),
		admins:    admins,
	}
}

// verifySubject extracts and validates the bearer token, returning the
// token subject.
func (m authMiddleware) verifySubject(r *http.Request) (string, *errs.ApiErr) {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", errs.NewMissingTokenError()
	}
	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenStr == "" {
		return "", errs.NewMissingTokenError()
	}
	if len(m.secret) == 0 {
		return "", errs.NewUnauthorizedError("token verification not configured")
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return "", errs.NewInvalidTokenError(err)
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", errs.NewInvalidTokenError(err)
	}
	return subject, nil
}

// authenticate requires a valid bearer token and stores its subject on the
// request context.
func (m authMiddleware) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject, apiErr := m.verifySubject(r)
		if apiErr != nil {
			m.responder.WriteError(w, apiErr)
			return
		}
		next.ServeHTTP(w, r.WithContext(ctxWithSubject(r.Context(), subject)))
	})
}

// requireAdmin gates a route group on the allow-list: the subject must have
// an AdminUser record with Allowed set.
func (m authMiddleware) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject, err := ctxGetSubject(r.Context())
		if err != nil {
			m.responder.WriteError(w, errs.NewMissingTokenError())
			return
		}

		admin, dbErr := m.admins.FindBySubject(subject)
		if dbErr != nil {
			m.responder.WriteError(w, errs.NewDatabaseError("find", "admin record", dbErr))
			return
		}
		if admin == nil || !admin.Allowed {
			m.responder.WriteError(w, errs.NewForbiddenError("not an admin"))
			return
		}
		next.ServeHTTP(w, r)
	})
}
