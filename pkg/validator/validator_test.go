package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sortQuery struct {
	Page      string `query:"page" validate:"omitempty,positive_int"`
	SortOrder string `query:"sortOrder" validate:"oneof=asc desc"`
	SortBy    string `query:"sortBy" validate:"oneof=name netPrice SKU description published"`
	MinPrice  string `query:"minPrice" validate:"omitempty,currency"`
}

type line struct {
	ProductID uint `json:"product_id" validate:"required"`
	Quantity  int  `json:"quantity" validate:"gt=0"`
}

type body struct {
	UserID   uint   `json:"user_id" validate:"required"`
	Products []line `json:"products" validate:"required,min=1,dive"`
}

func TestParsePositiveInt(t *testing.T) {
	testCases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"1", 1, true},
		{"42", 42, true},
		{"007", 7, true},
		{"0", 0, false},
		{"000", 0, false},
		{"-3", 0, false},
		{"+3", 0, false},
		{"1.5", 0, false},
		{"abc", 0, false},
		{"", 0, false},
		{"99999999999999999999999", 0, false},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := ParsePositiveInt(tc.in)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestIsCurrency(t *testing.T) {
	assert.True(t, IsCurrency("10"))
	assert.True(t, IsCurrency("10.5"))
	assert.True(t, IsCurrency("10.55"))
	assert.True(t, IsCurrency("0"))
	assert.False(t, IsCurrency("10.555"))
	assert.False(t, IsCurrency("-1"))
	assert.False(t, IsCurrency("1e3"))
	assert.False(t, IsCurrency("abc"))
	assert.False(t, IsCurrency(""))
}

func TestValidateStruct(t *testing.T) {
	t.Run("valid query passes", func(t *testing.T) {
		err := ValidateStruct(&sortQuery{Page: "2", SortOrder: "asc", SortBy: "netPrice", MinPrice: "9.99"})
		assert.NoError(t, err)
	})

	t.Run("messages keyed by query names", func(t *testing.T) {
		err := ValidateStruct(&sortQuery{Page: "0", SortOrder: "up", SortBy: "price", MinPrice: "1.234"})
		require.Error(t, err)

		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, []string{MsgPositiveInt}, verr.Errors["page"])
		assert.Equal(t,
			[]string{"The value you selected is not a valid choice (valid choices are 'asc' and 'desc')."},
			verr.Errors["sortOrder"])
		assert.Equal(t,
			[]string{"The value you selected is not a valid choice (valid choices are 'name', 'netPrice', 'SKU', 'description' and 'published')."},
			verr.Errors["sortBy"])
		assert.Equal(t, []string{"The value '1.234' is not a valid currency format."}, verr.Errors["minPrice"])
	})

	t.Run("nested fields use json names", func(t *testing.T) {
		err := ValidateStruct(&body{Products: []line{{ProductID: 1, Quantity: 0}}})
		require.Error(t, err)

		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, []string{MsgNotBlank}, verr.Errors["user_id"])
		assert.Equal(t, []string{"This value should be greater than 0."}, verr.Errors["products[0].quantity"])
	})

	t.Run("empty collection", func(t *testing.T) {
		err := ValidateStruct(&body{UserID: 1, Products: []line{}})
		require.Error(t, err)

		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Contains(t, verr.Errors, "products")
	})
}

func TestValidationErrorErr(t *testing.T) {
	verr := NewValidationError()
	assert.NoError(t, verr.Err())

	verr.Add("page", MsgPositiveInt)
	other := NewValidationError()
	other.Add("pageSize", MsgPositiveInt)
	verr.Merge(other)
	verr.Merge(nil)

	err := verr.Err()
	require.Error(t, err)
	assert.Equal(t, "validation failed: page: "+MsgPositiveInt+"; pageSize: "+MsgPositiveInt, err.Error())
}
