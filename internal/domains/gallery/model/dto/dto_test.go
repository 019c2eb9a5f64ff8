package dto_test

import (
	"net/http/httptest"
	"testing"

	"villa/internal/domains/gallery/model"
	"villa/internal/domains/gallery/model/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListQuery_FromRequest(t *testing.T) {
	var query dto.ListQuery
	require.NoError(t, query.FromRequest(httptest.NewRequest("GET", "/v1/gallery?category=All&page=2&limit=6", nil)))

	assert.Empty(t, query.Category)
	assert.Equal(t, 2, query.Page)
	assert.Equal(t, 6, query.Limit)
}

func TestLightboxQuery_FromRequest(t *testing.T) {
	var query dto.LightboxQuery
	query.FromRequest(httptest.NewRequest("GET", "/v1/gallery/lightbox?category=rooms&index=3&step=-1", nil))

	assert.Equal(t, dto.LightboxQuery{Category: "rooms", Index: 3, Step: -1}, query)

	var junk dto.LightboxQuery
	junk.FromRequest(httptest.NewRequest("GET", "/v1/gallery/lightbox?index=x", nil))

	assert.Equal(t, dto.LightboxQuery{}, junk)
}

func TestUploadRequest_ToModel(t *testing.T) {
	req := dto.UploadRequest{Title: " Pool ", Category: "Outdoor", Caption: "", Position: 4}

	item := req.ToModel("id-1", "https://cdn/gallery/id-1.png", "https://cdn/gallery/id-1_thumb.jpg")

	assert.Equal(t, "id-1", item.ID)
	assert.Equal(t, "Pool", item.Title)
	assert.Equal(t, "outdoor", item.Category)
	assert.Equal(t, 4, item.Position)
	assert.False(t, item.CreatedAt.IsZero())
	assert.NotEqual(t, dto.NewItemID(), dto.NewItemID())
}

func TestListResponse_FromModels(t *testing.T) {
	items := []model.Item{
		{ID: "1", Title: "Garden", Caption: "Morning garden"},
		{ID: "2", Title: "Pool"},
	}

	var res dto.ListResponse
	res.FromModels(items, 5, 2)

	require.Len(t, res.Items, 2)
	assert.Equal(t, 3, res.TotalPage)
	assert.Equal(t, 5, res.TotalData)
	assert.Equal(t, "Morning garden", res.Items[0].Caption)
	assert.Equal(t, "Pool", res.Items[1].Caption)
}

func TestLightboxResponse_FromModels(t *testing.T) {
	items := []model.Item{{ID: "1", Title: "Garden"}, {ID: "2", Title: "Pool"}}

	var res dto.LightboxResponse
	res.FromModels(items, 1)

	assert.Equal(t, "2 / 2", res.Counter)
	assert.Equal(t, "2", res.Item.ID)
	assert.Equal(t, 2, res.Total)
}
