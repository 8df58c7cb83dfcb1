package middleware

import "net/http"

// CORS attaches the cross-origin headers browser clients rely on. It wraps
// the whole router (not r.Use) so 404/405 responses carry them too.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "api,Keep-Alive,User-Agent,Content-Type")
		next.ServeHTTP(w, r)
	})
}
