package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code   string
		status int
	}{
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeUnauthorized, http.StatusUnauthorized},
		{ErrCodeInternal, http.StatusInternalServerError},
		{"INVALID_CREDENTIALS", http.StatusUnauthorized},
		{"EMAIL_TAKEN", http.StatusConflict},
		{"SLUG_TAKEN", http.StatusConflict},
		{"STORE_INACTIVE", http.StatusForbidden},
		{"INVALID_EMAIL", http.StatusBadRequest},
		{"EMPTY_CART", http.StatusUnprocessableEntity},
		{"INSUFFICIENT_STOCK", http.StatusUnprocessableEntity},
		{"ORDER_ALREADY_PAID", http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.status, GetHTTPStatus(tt.code), tt.code)
	}
}

func TestGetHTTPStatusUnknownCodeIsBusinessRule(t *testing.T) {
	assert.Equal(t, http.StatusUnprocessableEntity, GetHTTPStatus("SOME_NEW_RULE"))
}

func TestListRequestToFilter(t *testing.T) {
	filter := ListRequest{}.ToFilter()
	assert.Equal(t, 1, filter.Page)
	assert.Equal(t, 20, filter.PageSize)

	filter = ListRequest{Page: 3, PageSize: 50, Search: "mug"}.ToFilter()
	assert.Equal(t, 3, filter.Page)
	assert.Equal(t, 50, filter.PageSize)
	assert.Equal(t, "mug", filter.Search)
}

func TestNewSuccessResponseWithMeta(t *testing.T) {
	resp := NewSuccessResponseWithMeta([]string{"a"}, 45, 2, 20)
	assert.True(t, resp.Success)
	assert.Equal(t, 3, resp.Meta.TotalPages)
}
