package club

import (
	"net/http"

	sharedError "github.com/ifclub/ifclub-api/internal/shared/error"
)

const clubNotFound = "CLUB_NOT_FOUND" // errInfo

var ErrClubNotFound = sharedError.NewDomainError(clubNotFound)

func init() {
	sharedError.RegisterDomainErrorResponse(clubNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "CLUB-001",
		Message: "동아리 정보를 찾을 수 없습니다.",
	})
}
