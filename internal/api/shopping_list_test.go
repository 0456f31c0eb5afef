package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/forkful/backend/internal/models"
	"github.com/forkful/backend/internal/service"
)

func setupShoppingListTestRouter(t *testing.T, listService service.IShoppingListService) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	tokenService, token := issueTestToken(t)
	router := gin.New()
	NewShoppingListHandler(listService).RegisterRoutes(router.Group("/api/v1"), tokenService)
	return router, token
}

func TestShoppingListRequiresAuth(t *testing.T) {
	listService := new(mockShoppingListService)
	router, _ := setupShoppingListTestRouter(t, listService)

	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete} {
		w := doJSON(t, router, method, "/api/v1/shoppingList", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, method)
	}
}

func TestCreateShoppingList(t *testing.T) {
	listService := new(mockShoppingListService)
	listService.On("CreateList", mock.Anything, testUserID, []models.ShoppingListItem{
		{Name: "milk", Quantity: 2},
		{Name: "eggs", Quantity: 1},
	}).Return(&models.ShoppingList{UserID: testUserID}, nil)
	router, token := setupShoppingListTestRouter(t, listService)

	w := doJSON(t, router, http.MethodPost, "/api/v1/shoppingList", token, map[string]interface{}{
		"items": []map[string]interface{}{
			{"name": " Milk ", "quantity": 2},
			{"name": "EGGS"},
		},
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	listService.AssertExpectations(t)
}

func TestCreateShoppingListConflict(t *testing.T) {
	listService := new(mockShoppingListService)
	listService.On("CreateList", mock.Anything, testUserID, mock.Anything).
		Return(nil, service.ErrAlreadyExists)
	router, token := setupShoppingListTestRouter(t, listService)

	w := doJSON(t, router, http.MethodPost, "/api/v1/shoppingList", token, map[string]interface{}{
		"items": []map[string]interface{}{{"name": "milk"}},
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Shopping list already exists")
}

func TestCreateShoppingListEmptyItems(t *testing.T) {
	listService := new(mockShoppingListService)
	router, token := setupShoppingListTestRouter(t, listService)

	w := doJSON(t, router, http.MethodPost, "/api/v1/shoppingList", token, map[string]interface{}{
		"items": []map[string]interface{}{{"name": "   "}},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	listService.AssertNotCalled(t, "CreateList")
}

func TestGetShoppingListNotFound(t *testing.T) {
	listService := new(mockShoppingListService)
	listService.On("GetList", mock.Anything, testUserID).Return(nil, service.ErrNotFound)
	router, token := setupShoppingListTestRouter(t, listService)

	w := doJSON(t, router, http.MethodGet, "/api/v1/shoppingList", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetShoppingList(t *testing.T) {
	listService := new(mockShoppingListService)
	listService.On("GetList", mock.Anything, testUserID).Return(&models.ShoppingList{
		UserID: testUserID,
		Items:  []models.ShoppingListItem{{Name: "milk", Quantity: 2}},
	}, nil)
	router, token := setupShoppingListTestRouter(t, listService)

	w := doJSON(t, router, http.MethodGet, "/api/v1/shoppingList", token, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response, "shoppingList")
}

func TestUpdateShoppingListReplaceIsDefault(t *testing.T) {
	listService := new(mockShoppingListService)
	listService.On("ReplaceItems", mock.Anything, testUserID, mock.Anything).
		Return(&models.ShoppingList{UserID: testUserID}, nil)
	router, token := setupShoppingListTestRouter(t, listService)

	w := doJSON(t, router, http.MethodPut, "/api/v1/shoppingList", token, map[string]interface{}{
		"items": []map[string]interface{}{{"name": "flour"}},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	listService.AssertNotCalled(t, "AppendItems")
}

func TestUpdateShoppingListAppendMode(t *testing.T) {
	listService := new(mockShoppingListService)
	listService.On("AppendItems", mock.Anything, testUserID, mock.Anything).
		Return(&models.ShoppingList{UserID: testUserID}, nil)
	router, token := setupShoppingListTestRouter(t, listService)

	w := doJSON(t, router, http.MethodPut, "/api/v1/shoppingList?mode=append", token, map[string]interface{}{
		"items": []map[string]interface{}{{"name": "flour"}},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	listService.AssertNotCalled(t, "ReplaceItems")
}

func TestUpdateShoppingListNotFound(t *testing.T) {
	listService := new(mockShoppingListService)
	listService.On("ReplaceItems", mock.Anything, testUserID, mock.Anything).
		Return(nil, service.ErrNotFound)
	router, token := setupShoppingListTestRouter(t, listService)

	w := doJSON(t, router, http.MethodPut, "/api/v1/shoppingList", token, map[string]interface{}{
		"items": []map[string]interface{}{{"name": "flour"}},
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteShoppingList(t *testing.T) {
	listService := new(mockShoppingListService)
	listService.On("DeleteList", mock.Anything, testUserID).Return(nil)
	router, token := setupShoppingListTestRouter(t, listService)

	w := doJSON(t, router, http.MethodDelete, "/api/v1/shoppingList", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteShoppingListNotFound(t *testing.T) {
	listService := new(mockShoppingListService)
	listService.On("DeleteList", mock.Anything, testUserID).Return(service.ErrNotFound)
	router, token := setupShoppingListTestRouter(t, listService)

	w := doJSON(t, router, http.MethodDelete, "/api/v1/shoppingList", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
