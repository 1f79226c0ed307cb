package http_test

import (
	"errors"
	"net/http"
	"testing"

	httpadapter "supplychain/internal/adapters/in/http"
	"supplychain/internal/core/domain/model/identity"
	"supplychain/internal/core/domain/model/workflow"
	"supplychain/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"required", errs.NewValueIsRequiredError("reason"), http.StatusBadRequest},
		{"out of range", errs.NewValueIsOutOfRangeError("quantity", -1, 0, 10), http.StatusBadRequest},
		{"joined validation", errors.Join(errs.NewValueIsInvalidError("a"), errs.NewValueIsRequiredError("b")), http.StatusBadRequest},
		{"not found", errs.NewObjectNotFoundError("order", "x"), http.StatusNotFound},
		{"invalid transition", errs.NewInvalidTransitionError(workflow.Registered, workflow.Shipped), http.StatusUnprocessableEntity},
		{"forbidden transition", errs.NewForbiddenTransitionError(workflow.Registered, workflow.Confirmed, identity.Manager), http.StatusForbidden},
		{"forbidden operation", errs.NewOperationIsForbiddenError("delete", nil), http.StatusForbidden},
		{"conflict", errs.NewConflictErrorWithCause("order", "x", errs.ErrConcurrentModified), http.StatusConflict},
		{"echo error", echo.NewHTTPError(http.StatusUnauthorized, "no"), http.StatusUnauthorized},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, httpadapter.StatusOf(tt.err))
		})
	}
}
