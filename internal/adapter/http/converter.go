package http

import "github.com/flight-search/flight-booking-system/internal/domain"

// APIPrefix is the path prefix of the versioned API.
const APIPrefix = "/api/v1"

func sessionPath(id string) string {
	return APIPrefix + "/sessions/" + id
}

func toSessionResponse(id string, state domain.BookingState) *SessionResponse {
	return &SessionResponse{
		SessionID: id,
		View:      state.View(),
		Step:      state.Step.String(),
		State:     state,
	}
}
