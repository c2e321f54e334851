package statistic

import (
	"CitizenVoice/pkg/response"
	"net/http"
)

var (
	ErrGetStatistics = response.NewError(http.StatusInternalServerError, "failed to get statistics")
)
