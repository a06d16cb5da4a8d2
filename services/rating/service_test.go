package rating

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"housemate/models"
)

func TestAverageRating(t *testing.T) {
	assert.Zero(t, AverageRating(nil))
	assert.Zero(t, AverageRating([]models.Rating{}))

	assert.Equal(t, 5.0, AverageRating([]models.Rating{{Rating: 5}}))
	assert.Equal(t, 4.5, AverageRating([]models.Rating{{Rating: 4}, {Rating: 5}}))
	assert.InDelta(t, 3.6667, AverageRating([]models.Rating{{Rating: 5}, {Rating: 4}, {Rating: 2}}), 0.001)
}
