package common

import (
	"encoding/json"
	"math/rand"
	"net/http"
)

// ErrorResponse is the wire envelope for every failed request.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// WriteMsg writes the error envelope `{"status":"error","message":...}`
// with the given HTTP status.
func WriteMsg(w http.ResponseWriter, msg string, status int) {
	resp := ErrorResponse{
		Status:  "error",
		Message: msg,
	}
	body, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		http.Error(w, `{"status":"error","message":"internal error"}`, http.StatusInternalServerError)
		return
	}
	w.WriteHeader(status)
	w.Write(body) //nolint:errcheck
}

// WriteRespJSON serializes v as pretty-printed JSON into w. A failed
// serialization is an internal error and its text goes into the envelope.
func WriteRespJSON(w http.ResponseWriter, v interface{}) {
	body, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		WriteMsg(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Write(body) //nolint:errcheck
}

var letterRunes = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")

// RandStringRunes makes a random alphanumeric string of length n.
func RandStringRunes(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = letterRunes[rand.Intn(len(letterRunes))]
	}
	return string(b)
}
