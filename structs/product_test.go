package structs

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUpdateProductRequestCategoryTracking(t *testing.T) {
	catId := uuid.New()

	t.Run("absent category_id leaves category untouched", func(t *testing.T) {
		var req UpdateProductRequest
		assert.NoError(t, json.Unmarshal([]byte(`{"name": "Latte"}`), &req))

		assert.False(t, req.CategorySet)
		assert.Nil(t, req.CategoryId)
	})

	t.Run("explicit null clears the category", func(t *testing.T) {
		var req UpdateProductRequest
		assert.NoError(t, json.Unmarshal([]byte(`{"category_id": null}`), &req))

		assert.True(t, req.CategorySet)
		assert.Nil(t, req.CategoryId)
	})

	t.Run("explicit value sets the category", func(t *testing.T) {
		var req UpdateProductRequest
		raw := `{"category_id": "` + catId.String() + `"}`
		assert.NoError(t, json.Unmarshal([]byte(raw), &req))

		assert.True(t, req.CategorySet)
		assert.NotNil(t, req.CategoryId)
		assert.Equal(t, catId, *req.CategoryId)
	})
}
