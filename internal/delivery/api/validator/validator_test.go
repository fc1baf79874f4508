package validator

import (
	"testing"

	domainerrors "zembil/internal/domain/errors"
	"zembil/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()

	var fieldErr *domainerrors.FieldError
	require.True(t, errors.As(err, &fieldErr), "expected a field error, got %v", err)

	return fieldErr.Fields()
}

func TestValidate_UsesJSONNames(t *testing.T) {
	v := New()

	err := v.Validate(&usecase.RegisterUserInput{Username: "ab", Email: "not-an-email", Password: "123"})

	fields := fieldsOf(t, err)
	assert.Equal(t, "This field is required.", fields["name"])
	assert.Equal(t, "Ensure this field has at least 3 characters.", fields["username"])
	assert.Equal(t, "Enter a valid email address.", fields["email"])
	assert.Equal(t, "Ensure this field has at least 6 characters.", fields["password"])
	assert.NotContains(t, fields, "phone")
}

func TestValidate_Passes(t *testing.T) {
	v := New()

	err := v.Validate(&usecase.RegisterUserInput{
		Name:     "Selam",
		Username: "selam",
		Email:    "selam@example.com",
		Password: "secret1",
		Phone:    "+251911223344",
	})

	assert.NoError(t, err)
}

func TestPhoneRule(t *testing.T) {
	v := New()

	tests := []struct {
		phone string
		valid bool
	}{
		{"+251911223344", true},
		{"+1234567", true},
		{"+123456", false},
		{"0911223344", false},
		{"+25191122334455", true},
		{"+2519112233445566", false},
		{"+2519a1223344", false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			err := v.Validate(&usecase.UpdateUserInput{Phone: &tt.phone})
			if tt.valid {
				assert.NoError(t, err)

				return
			}

			assert.Contains(t, fieldsOf(t, err), "phone")
		})
	}
}

func TestImageURLRule(t *testing.T) {
	v := New()

	tests := []struct {
		url   string
		valid bool
	}{
		{"https://cdn.example.com/shops/1/front.png", true},
		{"http://localhost:8080/media/a.jpg", true},
		{"/media/products/2/a.jpg", true},
		{"/media/../etc/passwd", false},
		{"ftp://example.com/a.png", false},
		{"front.png", false},
		{"https://", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			err := v.Validate(&usecase.UpdateProductInput{ImagePath: &tt.url})
			if tt.valid {
				assert.NoError(t, err)

				return
			}

			assert.Equal(t, "Enter a valid image URL.", fieldsOf(t, err)["imageUrl"])
		})
	}
}

func TestValidate_NumericBounds(t *testing.T) {
	v := New()

	err := v.Validate(&usecase.CreateReviewInput{Rating: 9})

	assert.Equal(t, "Ensure this value is less than or equal to 5.", fieldsOf(t, err)["rating"])
}

func TestValidate_NestedStruct(t *testing.T) {
	v := New()

	err := v.Validate(&usecase.CreateShopInput{
		Location: usecase.CreateLocationInput{Latitude: 95, Longitude: 38.7, Description: "Bole road"},
		Shop: usecase.ShopInput{
			Name:         "Lights",
			CategoryID:   1,
			BuildingName: "Friendship",
			PhoneNumber:  "+251911223344",
			Description:  "Lamps",
		},
	})

	assert.Equal(t, "Ensure this value is less than 90.", fieldsOf(t, err)["latitude"])
}
