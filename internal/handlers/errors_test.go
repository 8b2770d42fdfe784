package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/phukrit7171/appointment-booking-api/internal/httperr"
)

func TestWriteError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation", httperr.ErrValidation("client name"), http.StatusBadRequest, "validation_error"},
		{"invalid datetime", httperr.ErrBusiness(httperr.CodeInvalidDateTime), http.StatusBadRequest, "invalid_datetime"},
		{"service not found", httperr.ErrBusiness(httperr.CodeServiceNotFound), http.StatusNotFound, "service_not_found"},
		{"appointment not found", httperr.ErrBusiness(httperr.CodeAppointmentNotFound), http.StatusNotFound, "appointment_not_found"},
		{"double booking", httperr.ErrBusiness(httperr.CodeDoubleBooking), http.StatusConflict, "double_booking"},
		{"dependent records", httperr.ErrBusiness(httperr.CodeDependentRecords), http.StatusConflict, "dependent_records"},
		{"opaque storage error", errors.New("connection reset"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/api/appointments", nil)

			WriteError(c, zap.NewNop(), tc.err)

			if w.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tc.wantStatus)
			}

			var body struct {
				Success bool   `json:"success"`
				Code    string `json:"error_code"`
				Message string `json:"message"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid JSON body: %v", err)
			}
			if body.Success {
				t.Error("success = true on an error response")
			}
			if body.Code != tc.wantCode {
				t.Errorf("error_code = %q, want %q", body.Code, tc.wantCode)
			}
			if body.Message == "" {
				t.Error("message is empty")
			}
		})
	}
}
