package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-GymService/internal/api/handlers"
)

// MemberIDHeader заголовок с ID члена клуба, выполняющего запрос
const MemberIDHeader = "X-Member-ID"

const (
	msgMissingMemberID = "отсутствует ID члена клуба"
	msgInvalidMemberID = "некорректный ID члена клуба"
)

type contextKey string

const memberIDKey contextKey = "memberID"

// Auth требует заголовок X-Member-ID и кладет ID в контекст
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(MemberIDHeader)
		if raw == "" {
			handlers.RespondUnauthorized(w, msgMissingMemberID)
			return
		}

		memberID, ok := parseMemberID(raw)
		if !ok {
			handlers.RespondUnauthorized(w, msgInvalidMemberID)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithMemberID(r.Context(), memberID)))
	})
}

// Identify читает X-Member-ID, если он передан
// Запросы без заголовка проходят дальше (действия персонала)
func Identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(MemberIDHeader)
		if raw == "" {
			next.ServeHTTP(w, r)
			return
		}

		memberID, ok := parseMemberID(raw)
		if !ok {
			handlers.RespondUnauthorized(w, msgInvalidMemberID)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithMemberID(r.Context(), memberID)))
	})
}

// WithMemberID возвращает контекст с ID члена клуба
func WithMemberID(ctx context.Context, memberID int64) context.Context {
	return context.WithValue(ctx, memberIDKey, memberID)
}

// GetMemberID возвращает ID члена клуба из контекста
func GetMemberID(ctx context.Context) (int64, bool) {
	memberID, ok := ctx.Value(memberIDKey).(int64)
	return memberID, ok
}

// MemberIDPtr возвращает ID члена клуба из контекста или nil
func MemberIDPtr(ctx context.Context) *int64 {
	if memberID, ok := GetMemberID(ctx); ok {
		return &memberID
	}
	return nil
}

func parseMemberID(raw string) (int64, bool) {
	memberID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || memberID <= 0 {
		return 0, false
	}
	return memberID, true
}
