package club_test

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/ifclub/ifclub-api/internal/club"
	"github.com/ifclub/ifclub-api/internal/model"
	"github.com/ifclub/ifclub-api/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetClub(t *testing.T) {
	// Given: One club in the database
	db := testutil.SetupTestDB(t)
	imageURL := "https://cdn.example.com/if.png"
	seeded := &model.Club{Name: "IF", Description: "game club", ImageURL: &imageURL}
	require.NoError(t, db.Create(seeded).Error)

	clubHandler := club.NewClubHandler(club.NewClubService(club.NewClubRepository(db)))
	router := testutil.SetupTestRouter()
	router.GET("/api/v1/clubs/:id", clubHandler.GetByID)

	t.Run("found", func(t *testing.T) {
		recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
			Method: http.MethodGet,
			URL:    "/api/v1/clubs/" + strconv.FormatUint(seeded.ID, 10),
		})
		require.Equal(t, http.StatusOK, recorder.Code)

		var response club.ClubResponse
		testutil.ParseResponse(t, recorder, &response)
		assert.Equal(t, "IF", response.Name)
		assert.Equal(t, "game club", response.Description)
		require.NotNil(t, response.ImageURL)
		assert.Equal(t, imageURL, *response.ImageURL)
	})

	t.Run("not found", func(t *testing.T) {
		recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
			Method: http.MethodGet,
			URL:    "/api/v1/clubs/404",
		})
		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"code":"CLUB-001"`)
	})

	t.Run("malformed id", func(t *testing.T) {
		recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
			Method: http.MethodGet,
			URL:    "/api/v1/clubs/0",
		})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
