package request

type ProgressRequest struct {
	Progress int `json:"progress" binding:"required,progress"`
	// SendEmail defaults to true when omitted.
	SendEmail *bool `json:"sendEmail"`
}

func (r ProgressRequest) ShouldSendEmail() bool {
	return r.SendEmail == nil || *r.SendEmail
}

type ScheduleDeliveryRequest struct {
	Date        string `json:"date" binding:"required,datetime=2006-01-02"`
	Time        string `json:"time" binding:"required,datetime=15:04"`
	Type        string `json:"type" binding:"omitempty,oneof=video audio"`
	MeetingLink string `json:"meetingLink" binding:"omitempty,url"`
	Notes       string `json:"notes"`
}
