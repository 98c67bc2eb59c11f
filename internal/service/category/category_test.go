package categoryservice_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"storefront/internal/models"
	serviceerrors "storefront/internal/service"
	categoryservice "storefront/internal/service/category"
	"storefront/internal/service/servicetest"
	"storefront/pkg/lib/logger/slogdiscard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(srv *servicetest.Server) *categoryservice.CategoryService {
	return categoryservice.New(slogdiscard.NewDiscardLogger(), srv.Client())
}

func TestList(t *testing.T) {
	srv := servicetest.NewServer(t, http.StatusOK, `[{"id":1,"name":"Dogs"},{"id":2,"name":"Cats"}]`)
	svc := newTestService(srv)

	categories, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, categories, 2)
	assert.Equal(t, "/api/categories", srv.Last().Path)

	srv.Respond(http.StatusOK, "null")
	categories, err = svc.List(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, categories)
}

func TestCreate(t *testing.T) {
	srv := servicetest.NewServer(t, http.StatusCreated, `{"id":3,"name":"Birds","description":"Feathered"}`)
	svc := newTestService(srv)

	category, err := svc.Create(context.Background(), models.CreateCategoryParams{Token: "admin", Name: "Birds", Description: "Feathered"})
	require.NoError(t, err)
	assert.Equal(t, 3, category.Id)

	call := srv.Last()
	assert.Equal(t, http.MethodPost, call.Method)
	assert.Equal(t, "/api/categories", call.Path)
	assert.JSONEq(t, `{"name":"Birds","description":"Feathered"}`, call.Body)
	assert.Equal(t, "Bearer admin", call.Authorization)
}

func TestUpdate(t *testing.T) {
	srv := servicetest.NewServer(t, http.StatusOK, `{"id":3,"name":"Parrots"}`)
	svc := newTestService(srv)

	name := "Parrots"
	category, err := svc.Update(context.Background(), models.UpdateCategoryParams{
		Token:      "admin",
		CategoryId: 3,
		Fields:     models.CategoryPatch{Name: &name},
	})
	require.NoError(t, err)
	assert.Equal(t, "Parrots", category.Name)

	call := srv.Last()
	assert.Equal(t, http.MethodPatch, call.Method)
	assert.Equal(t, "/api/categories/3", call.Path)
	assert.JSONEq(t, `{"name":"Parrots"}`, call.Body)
}

func TestDelete(t *testing.T) {
	assert.Equal(t, "Failed to delete category", categoryservice.MsgDeleteFailed)

	tests := []struct {
		name        string
		status      int
		body        string
		wantErr     bool
		wantMessage string
	}{
		{name: "Success", status: http.StatusOK, body: `{"id":3,"name":"Birds"}`},
		{name: "Server refuses", status: http.StatusInternalServerError, body: `{"message":"in use"}`, wantErr: true, wantMessage: categoryservice.MsgDeleteFailed},
		{name: "Not found", status: http.StatusNotFound, body: "", wantErr: true, wantMessage: categoryservice.MsgDeleteFailed},
		{name: "Empty success", status: http.StatusOK, body: "", wantErr: true, wantMessage: categoryservice.MsgDeleteFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := servicetest.NewServer(t, tt.status, tt.body)
			svc := newTestService(srv)

			category, err := svc.Delete(context.Background(), models.DeleteCategoryParams{Token: "admin", CategoryId: 3})

			call := srv.Last()
			assert.Equal(t, http.MethodDelete, call.Method)
			assert.Equal(t, "/api/categories/3", call.Path)

			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, 3, category.Id)
				return
			}

			var be *serviceerrors.BusinessError
			require.True(t, errors.As(err, &be))
			assert.Equal(t, tt.wantMessage, be.Message)
			assert.Equal(t, serviceerrors.KindBusiness, serviceerrors.KindOf(err))
		})
	}
}
