package statistic

type YearQuery struct {
	Year int `query:"year" validate:"omitempty,min=1970,max=9999"`
}

// MonthlyCounts is indexed by calendar month, January first.
type MonthlyCounts [12]int

func (m MonthlyCounts) Total() int {
	total := 0
	for _, n := range m {
		total += n
	}
	return total
}

type AdminStatistics struct {
	Year                     int           `json:"year"`
	OrganizationCountByMonth MonthlyCounts `json:"organization_count_by_month"`
	CitizenCountByMonth      MonthlyCounts `json:"citizen_count_by_month"`
	FeedbackCountByMonth     MonthlyCounts `json:"feedback_count_by_month"`
	TotalOrganizations       int           `json:"total_organizations"`
	TotalCitizens            int           `json:"total_citizens"`
	TotalFeedbacks           int           `json:"total_feedbacks"`
}

type CitizenStatistics struct {
	Year                           int           `json:"year"`
	FeedbackCountByMonth           MonthlyCounts `json:"feedback_count_by_month"`
	ResolvedFeedbackCountByMonth   MonthlyCounts `json:"resolved_feedback_count_by_month"`
	UnresolvedFeedbackCountByMonth MonthlyCounts `json:"unresolved_feedback_count_by_month"`
	TotalFeedbacks                 int           `json:"total_feedbacks"`
	TotalResolvedFeedbacks         int           `json:"total_resolved_feedbacks"`
	TotalUnresolvedFeedbacks       int           `json:"total_unresolved_feedbacks"`
}

type OrganizationStatistics struct {
	Year                         int           `json:"year"`
	OrganizationID               string        `json:"organization_id"`
	FeedbackCountByMonth         MonthlyCounts `json:"feedback_count_by_month"`
	AnsweredFeedbackCountByMonth MonthlyCounts `json:"answered_feedback_count_by_month"`
	PendingFeedbackCountByMonth  MonthlyCounts `json:"pending_feedback_count_by_month"`
	TotalFeedbacks               int           `json:"total_feedbacks"`
	TotalAnsweredFeedbacks       int           `json:"total_answered_feedbacks"`
	TotalPendingFeedbacks        int           `json:"total_pending_feedbacks"`
}
