package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/horizonhomes/horizonhomes-backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListForPropertyJoinsByName(t *testing.T) {
	db := newTestDB(t)
	properties := NewPropertyService(db)
	reviews := NewReviewService(db)

	property, err := properties.Create(&dto.PropertyRequest{
		PropertyName: "Cedar Court",
		Location:     "Porto",
	})
	require.NoError(t, err)

	_, err = reviews.Create(&dto.ReviewRequest{
		PropertyName:  "Cedar Court",
		ReviewerEmail: "ben@example.com",
		Comment:       "Bright and quiet",
		Rating:        4.5,
	})
	require.NoError(t, err)

	_, err = reviews.Create(&dto.ReviewRequest{
		PropertyName:  "Somewhere Else",
		ReviewerEmail: "ben@example.com",
		Rating:        2,
	})
	require.NoError(t, err)

	matched, err := reviews.ListForProperty(property.ID)
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "Cedar Court", matched[0].PropertyName)
	assert.Equal(t, 4.5, matched[0].Rating)
}

func TestListForPropertyUnknownID(t *testing.T) {
	reviews := NewReviewService(newTestDB(t))

	_, err := reviews.ListForProperty(uuid.New())
	assert.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestPropertyVerificationStatus(t *testing.T) {
	db := newTestDB(t)
	properties := NewPropertyService(db)

	property, err := properties.Create(&dto.PropertyRequest{PropertyName: "Cedar Court"})
	require.NoError(t, err)
	require.Equal(t, "pending", string(property.VerificationStatus))

	modified, err := properties.SetVerificationStatus(property.ID, "verified")
	require.NoError(t, err)
	assert.True(t, modified)

	// Re-setting the same status is a no-op, not an error.
	modified, err = properties.SetVerificationStatus(property.ID, "verified")
	require.NoError(t, err)
	assert.False(t, modified)

	_, err = properties.SetVerificationStatus(property.ID, "approved")
	assert.ErrorIs(t, err, ErrInvalidPropStatus)

	modified, err = properties.SetVerificationStatus(uuid.New(), "verified")
	require.NoError(t, err)
	assert.False(t, modified)
}

func TestPropertyReplaceOverwritesFields(t *testing.T) {
	properties := NewPropertyService(newTestDB(t))

	property, err := properties.Create(&dto.PropertyRequest{
		PropertyName: "Cedar Court",
		Location:     "Porto",
		PriceRange:   "$100,000-$150,000",
	})
	require.NoError(t, err)

	updated, err := properties.Replace(property.ID, &dto.PropertyRequest{
		PropertyName: "Cedar Court II",
		Location:     "Braga",
	})
	require.NoError(t, err)
	assert.Equal(t, "Cedar Court II", updated.PropertyName)
	assert.Equal(t, "Braga", updated.Location)
	assert.Empty(t, updated.PriceRange)

	_, err = properties.Replace(uuid.New(), &dto.PropertyRequest{PropertyName: "Ghost"})
	assert.ErrorIs(t, err, ErrPropertyNotFound)
}
