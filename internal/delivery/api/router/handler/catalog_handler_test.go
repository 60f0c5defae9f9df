package handler

import (
	"net/http"
	"testing"

	"washapp/internal/domain/entity"
	mockUC "washapp/internal/mocks/usecase"
	"washapp/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCatalogHandler_ListServices_Query(t *testing.T) {
	actor := &entity.Actor{UserID: uuid.New(), Role: entity.RoleAdmin}
	categoryID := uuid.New()

	tests := []struct {
		name     string
		query    string
		expected *usecase.ListServicesInput
		wantCode int
	}{
		{
			name:     "no filters",
			query:    "",
			expected: &usecase.ListServicesInput{Actor: *actor},
			wantCode: http.StatusOK,
		},
		{
			name:     "category and inactive",
			query:    "?category_id=" + categoryID.String() + "&include_inactive=true",
			expected: &usecase.ListServicesInput{Actor: *actor, CategoryID: &categoryID, IncludeInactive: true},
			wantCode: http.StatusOK,
		},
		{name: "bad category", query: "?category_id=nope", wantCode: http.StatusBadRequest},
		{name: "bad flag", query: "?include_inactive=maybe", wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalogUC := mockUC.NewMockCatalogUsecase(t)
			h := NewCatalogHandler(CatalogHandlerParams{CatalogUC: catalogUC})
			e := newTestEcho(actor)
			e.GET("/services", h.ListServices)

			if tt.expected != nil {
				catalogUC.EXPECT().ListServices(mock.Anything, tt.expected).Return([]*entity.Service{}, nil)
			}

			rec, env := doJSON(t, e, http.MethodGet, "/services"+tt.query, "")

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.expected == nil {
				assert.Equal(t, "INVALID_INPUT", env.Error.Code)
			}
		})
	}
}

func TestProviderHandler_SetVerified(t *testing.T) {
	actor := &entity.Actor{UserID: uuid.New(), Role: entity.RoleAdmin}
	providerID := uuid.New()
	providerUC := mockUC.NewMockProviderUsecase(t)
	h := NewProviderHandler(ProviderHandlerParams{ProviderUC: providerUC, ReviewUC: mockUC.NewMockReviewUsecase(t)})
	e := newTestEcho(actor)
	e.PUT("/providers/:id/verification", h.SetVerified)

	rec, env := doJSON(t, e, http.MethodPut, "/providers/"+providerID.String()+"/verification", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)

	providerUC.EXPECT().SetVerified(mock.Anything, *actor, providerID, false).
		Return(&entity.ServiceProvider{ID: providerID}, nil)

	rec, _ = doJSON(t, e, http.MethodPut, "/providers/"+providerID.String()+"/verification", `{"verified":false}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}
