package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductInputValidate(t *testing.T) {
	valid := ProductInput{Name: "Instant Noodles", PriceCents: 1000, Image: "noodles.png", Stock: 3}

	tests := []struct {
		name      string
		mutate    func(in *ProductInput)
		wantField string
	}{
		{name: "valid", mutate: func(in *ProductInput) {}},
		{name: "zero price is fine", mutate: func(in *ProductInput) { in.PriceCents = 0 }},
		{name: "zero stock is fine", mutate: func(in *ProductInput) { in.Stock = 0 }},
		{name: "missing name", mutate: func(in *ProductInput) { in.Name = "" }, wantField: "name"},
		{name: "name too long", mutate: func(in *ProductInput) { in.Name = strings.Repeat("x", 61) }, wantField: "name"},
		{name: "60 multibyte chars are fine", mutate: func(in *ProductInput) { in.Name = strings.Repeat("é", 60) }},
		{name: "61 multibyte chars are too long", mutate: func(in *ProductInput) { in.Name = strings.Repeat("é", 61) }, wantField: "name"},
		{name: "negative price", mutate: func(in *ProductInput) { in.PriceCents = -1 }, wantField: "price_cents"},
		{name: "missing image", mutate: func(in *ProductInput) { in.Image = "" }, wantField: "image"},
		{name: "negative stock", mutate: func(in *ProductInput) { in.Stock = -1 }, wantField: "stock"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := valid
			tc.mutate(&in)

			err := in.Validate()
			if tc.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.wantField, ve.Field)
		})
	}
}

func TestProductUpdateValidate(t *testing.T) {
	str := func(s string) *string { return &s }
	num := func(n int) *int { return &n }

	assert.NoError(t, ProductUpdate{}.Validate(), "all-nil update changes nothing")
	assert.NoError(t, ProductUpdate{Name: str("Iced Tea"), Stock: num(0)}.Validate())
	assert.NoError(t, ProductUpdate{Name: str(strings.Repeat("é", 60))}.Validate(), "length counts characters, not bytes")

	var ve *ValidationError
	require.ErrorAs(t, ProductUpdate{Name: str("")}.Validate(), &ve)
	require.ErrorAs(t, ProductUpdate{Name: str(strings.Repeat("x", 61))}.Validate(), &ve)
	require.ErrorAs(t, ProductUpdate{PriceCents: num(-5)}.Validate(), &ve)
	require.ErrorAs(t, ProductUpdate{Image: str("")}.Validate(), &ve)
	require.ErrorAs(t, ProductUpdate{Stock: num(-1)}.Validate(), &ve)
}
